package skillshot

import (
	"math"
	"testing"

	"github.com/vovakirdan/skillshot/internal/config"
	"github.com/vovakirdan/skillshot/internal/core"
)

// newTestSession builds a session from the default config after applying mutate.
func newTestSession(t *testing.T, mutate func(*config.TrainerConfig)) *Session {
	t.Helper()
	cfg := config.DefaultTrainerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	return NewSession(cfg, 42)
}

func fixedOrigin(x, y float64) func(*config.TrainerConfig) {
	return func(c *config.TrainerConfig) {
		c.Projectile.Origin = config.OriginConfig{Mode: config.OriginFixed, X: x, Y: y}
	}
}

func frame(events ...core.Event) core.InputFrame {
	in := core.NewInputFrame()
	for _, e := range events {
		in.Push(e)
	}
	return in
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t, nil)

	if s.State() != StateRunning {
		t.Errorf("State() = %v, expected Running", s.State())
	}
	snap := s.Snapshot()
	if snap.Score != 0 || snap.ShotsFired != 0 || len(snap.Projectiles) != 0 {
		t.Errorf("new session not empty: %+v", snap)
	}
	if snap.Accuracy != 0 {
		t.Errorf("Accuracy = %v, expected 0", snap.Accuracy)
	}

	tg := s.target
	if tg.Position.X < tg.Radius || tg.Position.X > 800-tg.Radius ||
		tg.Position.Y < tg.Radius || tg.Position.Y > 600-tg.Radius {
		t.Errorf("target at %v does not fit in the arena", tg.Position)
	}
	if tg.Speed < 2 || tg.Speed > 4 {
		t.Errorf("target speed = %v, expected within [2, 4]", tg.Speed)
	}
	if l := tg.Direction.Length(); math.Abs(l-1) > 1e-9 {
		t.Errorf("|direction| = %v, expected 1", l)
	}
}

func TestDeterminism(t *testing.T) {
	s1 := newTestSession(t, nil)
	s2 := newTestSession(t, nil)

	for i := 0; i < 300; i++ {
		var in core.InputFrame
		if i%7 == 0 {
			p := core.V(float64(i%800), float64((i*3)%600))
			in = frame(core.Fire(p))
		} else {
			in = frame()
		}
		a := s1.Step(in)
		b := s2.Step(in)

		if a.Target != b.Target || a.Score != b.Score || len(a.Projectiles) != len(b.Projectiles) {
			t.Fatalf("tick %d diverged: %+v vs %+v", i, a, b)
		}
	}
}

func TestStationaryHit(t *testing.T) {
	s := newTestSession(t, fixedOrigin(400, 300))
	s.target.Position = core.V(400, 300)
	s.target.Direction = core.Vec2{}

	snap := s.Step(frame(core.Fire(core.V(400, 300))))

	if snap.Score != 1 {
		t.Errorf("Score = %d, expected 1", snap.Score)
	}
	if snap.ShotsFired != 1 {
		t.Errorf("ShotsFired = %d, expected 1", snap.ShotsFired)
	}
	if snap.Hits != 1 {
		t.Errorf("Hits = %d, expected 1", snap.Hits)
	}
	if len(snap.Projectiles) != 0 {
		t.Errorf("len(Projectiles) = %d, expected 0", len(snap.Projectiles))
	}
	if snap.Target.Position == core.V(400, 300) {
		t.Error("target was not reset after the hit")
	}
	if snap.Accuracy != 100 {
		t.Errorf("Accuracy = %v, expected 100", snap.Accuracy)
	}
}

func TestMissExpires(t *testing.T) {
	s := newTestSession(t, fixedOrigin(0, 0))
	s.target.Position = core.V(700, 100)
	s.target.Direction = core.Vec2{}

	s.ApplyInputs([]core.Event{core.Fire(core.V(800, 600))})

	var snap Snapshot
	for s.tick < 99 {
		snap = s.Tick()
	}
	if len(snap.Projectiles) != 1 {
		t.Fatalf("tick %d: len(Projectiles) = %d, expected 1", snap.Tick, len(snap.Projectiles))
	}
	want := core.V(792, 594)
	if got := snap.Projectiles[0].Position; got.Distance(want) > 1e-6 {
		t.Errorf("projectile at %v, expected %v", got, want)
	}

	expired := 0
	for s.tick < 101 {
		snap = s.Tick()
		expired += snap.Expired
	}
	if len(snap.Projectiles) != 0 {
		t.Errorf("tick %d: len(Projectiles) = %d, expected 0", snap.Tick, len(snap.Projectiles))
	}
	if expired != 1 {
		t.Errorf("expired = %d, expected 1", expired)
	}
	if snap.Score != 0 || snap.ShotsFired != 1 {
		t.Errorf("Score/ShotsFired = %d/%d, expected 0/1", snap.Score, snap.ShotsFired)
	}
	if snap.Accuracy != 0 {
		t.Errorf("Accuracy = %v, expected 0", snap.Accuracy)
	}
}

func TestWallReflection(t *testing.T) {
	arena := core.Size{W: 800, H: 600}
	tests := []struct {
		name    string
		pos     core.Vec2
		dir     core.Vec2
		wantPos core.Vec2
		wantDir core.Vec2
	}{
		{"left wall", core.V(10, 300), core.V(-1, 0), core.V(7, 300), core.V(1, 0)},
		{"right wall", core.V(790, 300), core.V(1, 0), core.V(793, 300), core.V(-1, 0)},
		{"top wall", core.V(400, 10), core.V(0, -1), core.V(400, 7), core.V(0, 1)},
		{"bottom wall", core.V(400, 590), core.V(0, 1), core.V(400, 593), core.V(0, -1)},
		{"free flight", core.V(400, 300), core.V(1, 0), core.V(403, 300), core.V(1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg := Target{Position: tt.pos, Radius: 20, Direction: tt.dir, Speed: 3}
			tg.advance(arena)

			if tg.Position != tt.wantPos {
				t.Errorf("Position = %v, expected %v", tg.Position, tt.wantPos)
			}
			if tg.Direction != tt.wantDir {
				t.Errorf("Direction = %v, expected %v", tg.Direction, tt.wantDir)
			}
		})
	}
}

func TestCornerReflectsBothAxes(t *testing.T) {
	d := math.Sqrt2 / 2
	tg := Target{Position: core.V(21, 21), Radius: 20, Direction: core.V(-d, -d), Speed: 3}
	tg.advance(core.Size{W: 800, H: 600})

	if tg.Direction.X <= 0 || tg.Direction.Y <= 0 {
		t.Errorf("Direction = %v, expected both components flipped positive", tg.Direction)
	}
}

func TestSequentialHitsAgainstResetTarget(t *testing.T) {
	// In a 40x40 arena a radius-20 target always resets to the center,
	// so a second projectile there scores against the reset target.
	s := newTestSession(t, func(c *config.TrainerConfig) {
		c.Arena = config.ArenaConfig{Width: 40, Height: 40}
		c.Projectile.Origin.Mode = config.OriginClick
	})
	s.target.Direction = core.Vec2{}
	s.target.Position = core.V(20, 20)

	center := core.V(20, 20)
	snap := s.Step(frame(core.Fire(center), core.Fire(center)))

	if snap.Hits != 2 || snap.Score != 2 {
		t.Errorf("Hits/Score = %d/%d, expected 2/2", snap.Hits, snap.Score)
	}
	if len(snap.Projectiles) != 0 {
		t.Errorf("len(Projectiles) = %d, expected 0", len(snap.Projectiles))
	}
}

func TestCompactionKeepsOrder(t *testing.T) {
	s := newTestSession(t, func(c *config.TrainerConfig) {
		c.Projectile.Origin.Mode = config.OriginClick
	})
	s.target.Direction = core.Vec2{}
	s.target.Position = core.V(400, 300)

	// Click mode projectiles are stationary; the middle one sits outside the
	// arena and expires, the others survive.
	s.Step(frame(
		core.Fire(core.V(100, 100)),
		core.Fire(core.V(-5, 100)),
		core.Fire(core.V(700, 500)),
	))

	snap := s.Snapshot()
	if snap.Expired != 1 {
		t.Errorf("Expired = %d, expected 1", snap.Expired)
	}
	if len(snap.Projectiles) != 2 {
		t.Fatalf("len(Projectiles) = %d, expected 2", len(snap.Projectiles))
	}
	if snap.Projectiles[0].Position != core.V(100, 100) || snap.Projectiles[1].Position != core.V(700, 500) {
		t.Errorf("Projectiles = %v, expected insertion order kept", snap.Projectiles)
	}
}

func TestClassicShotIsStationary(t *testing.T) {
	s := newTestSession(t, func(c *config.TrainerConfig) {
		c.Projectile.Origin.Mode = config.OriginClick
	})
	s.target.Direction = core.Vec2{}
	s.target.Position = core.V(700, 500)

	s.ApplyInputs([]core.Event{core.Fire(core.V(100, 100))})
	for i := 0; i < 50; i++ {
		s.Tick()
	}

	snap := s.Snapshot()
	if len(snap.Projectiles) != 1 {
		t.Fatalf("len(Projectiles) = %d, expected 1", len(snap.Projectiles))
	}
	if snap.Projectiles[0].Position != core.V(100, 100) {
		t.Errorf("projectile moved to %v", snap.Projectiles[0].Position)
	}
	if snap.FixedOrigin {
		t.Error("FixedOrigin = true in click mode")
	}
}

func TestQuitDiscardsRemainingEvents(t *testing.T) {
	s := newTestSession(t, nil)

	snap := s.Step(frame(core.Fire(core.V(100, 100)), core.Quit(), core.Fire(core.V(200, 200))))

	if !snap.Terminated || !s.Terminated() {
		t.Error("session not terminated after quit")
	}
	if snap.ShotsFired != 1 {
		t.Errorf("ShotsFired = %d, expected 1", snap.ShotsFired)
	}
	if snap.Tick != 0 {
		t.Errorf("Tick = %d, expected 0", snap.Tick)
	}
}

func TestTerminatedSessionDoesNotAdvance(t *testing.T) {
	s := newTestSession(t, nil)
	s.ApplyInputs([]core.Event{core.Fire(core.V(100, 100))})
	s.Tick()
	s.ApplyInputs([]core.Event{core.Quit()})

	before := s.Snapshot()
	for i := 0; i < 10; i++ {
		s.Step(frame(core.Fire(core.V(300, 300))))
	}
	after := s.Snapshot()

	if after.Tick != before.Tick || after.Target != before.Target || after.ShotsFired != before.ShotsFired {
		t.Errorf("terminated session changed: %+v -> %+v", before, after)
	}
	if s.State() != StateTerminated {
		t.Errorf("State() = %v, expected Terminated", s.State())
	}
}

func TestEmptyTick(t *testing.T) {
	s := newTestSession(t, nil)
	before := s.Snapshot()
	snap := s.Tick()

	if snap.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", snap.Tick)
	}
	if snap.ShotsFired != 0 || snap.Score != 0 {
		t.Errorf("counters changed on an empty tick: %+v", snap)
	}
	if snap.Target.Position == before.Target.Position {
		t.Error("target did not move")
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := newTestSession(t, nil)
	s.ApplyInputs([]core.Event{core.Fire(core.V(100, 100))})
	snap := s.Snapshot()
	snap.Projectiles[0].Position = core.V(-1, -1)

	if s.projectiles[0].Position == core.V(-1, -1) {
		t.Error("mutating the snapshot changed the session")
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		score, shots int
		expected     float64
	}{
		{0, 0, 0},
		{0, 5, 0},
		{1, 1, 100},
		{1, 4, 25},
		{2, 3, 200.0 / 3},
	}

	for _, tt := range tests {
		if got := Accuracy(tt.score, tt.shots); got != tt.expected {
			t.Errorf("Accuracy(%d, %d) = %v, expected %v", tt.score, tt.shots, got, tt.expected)
		}
	}
}

func TestNewProjectile(t *testing.T) {
	p := newProjectile(core.V(0, 0), core.V(3, 4), 10, 5)
	if p.Velocity.Distance(core.V(6, 8)) > 1e-9 {
		t.Errorf("Velocity = %v, expected (6, 8)", p.Velocity)
	}
	if p.Radius != 5 {
		t.Errorf("Radius = %v, expected 5", p.Radius)
	}

	still := newProjectile(core.V(50, 50), core.V(50, 50), 10, 5)
	if !still.Velocity.IsZero() {
		t.Errorf("Velocity = %v, expected zero", still.Velocity)
	}
}

func TestProjectileOutOfBoundsUsesCenter(t *testing.T) {
	arena := core.Size{W: 800, H: 600}
	tests := []struct {
		pos      core.Vec2
		expected bool
	}{
		{core.V(0, 0), false},
		{core.V(800, 600), false},
		{core.V(2, 300), false},
		{core.V(-0.1, 300), true},
		{core.V(400, 600.1), true},
	}

	for _, tt := range tests {
		p := Projectile{Position: tt.pos, Radius: 5}
		if got := p.outOfBounds(arena); got != tt.expected {
			t.Errorf("outOfBounds(%v) = %v, expected %v", tt.pos, got, tt.expected)
		}
	}
}

func TestTargetContainsIsStrict(t *testing.T) {
	tg := Target{Position: core.V(100, 100), Radius: 20}
	if !tg.contains(core.V(119, 100)) {
		t.Error("contains(119,100) = false, expected true")
	}
	if tg.contains(core.V(120, 100)) {
		t.Error("contains on the rim = true, expected false")
	}
}

func TestStateString(t *testing.T) {
	if StateRunning.String() != "Running" || StateTerminated.String() != "Terminated" {
		t.Errorf("unexpected names: %v, %v", StateRunning, StateTerminated)
	}
	if State(9).String() != "Unknown" {
		t.Errorf("State(9) = %v, expected Unknown", State(9))
	}
}
