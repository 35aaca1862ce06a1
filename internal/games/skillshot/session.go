package skillshot

import (
	"math/rand"

	"github.com/vovakirdan/skillshot/internal/config"
	"github.com/vovakirdan/skillshot/internal/core"
)

// State is the lifecycle state of a session.
type State int

const (
	StateRunning    State = iota // Simulating until a quit arrives
	StateTerminated              // Quit received; no further simulation
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// Session owns all simulation state of one training run: the target, the
// live projectiles and the counters. It is not safe for concurrent use; one
// driver calls ApplyInputs and Tick (or Step) once per tick.
type Session struct {
	cfg   config.TrainerConfig
	arena core.Size
	rng   *rand.Rand

	target      Target
	projectiles []Projectile
	removed     []bool // Scratch marks, reused every tick

	score      int
	shotsFired int
	tick       uint64
	state      State

	// Results of the most recent tick
	hits    int
	expired int
}

// NewSession starts a session in the Running state. cfg must have passed
// validation; the same cfg and seed always produce the same session.
func NewSession(cfg config.TrainerConfig, seed int64) *Session {
	arena := core.Size{W: cfg.Arena.Width, H: cfg.Arena.Height}
	rng := rand.New(rand.NewSource(seed))

	return &Session{
		cfg:    cfg,
		arena:  arena,
		rng:    rng,
		target: newTarget(arena, cfg.Target, rng),
		state:  StateRunning,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Terminated reports whether a quit has been received.
func (s *Session) Terminated() bool {
	return s.state == StateTerminated
}

// Arena returns the arena size in world units.
func (s *Session) Arena() core.Size {
	return s.arena
}

// Origin returns the point a shot aimed at aim starts from.
func (s *Session) Origin(aim core.Vec2) core.Vec2 {
	if s.cfg.Projectile.Origin.Mode == config.OriginClick {
		return aim
	}
	return core.V(s.cfg.Projectile.Origin.X, s.cfg.Projectile.Origin.Y)
}

// ApplyInputs drains events in arrival order. Every fire event spawns a
// projectile and counts as a shot. A quit event terminates the session and
// discards whatever follows it. Returns true once the session is terminated.
func (s *Session) ApplyInputs(events []core.Event) bool {
	if s.state == StateTerminated {
		return true
	}

	for _, e := range events {
		switch e.Kind {
		case core.EventFire:
			p := newProjectile(s.Origin(e.Point), e.Point, s.cfg.Projectile.Speed, s.cfg.Projectile.Radius)
			s.projectiles = append(s.projectiles, p)
			s.shotsFired++
		case core.EventQuit:
			s.state = StateTerminated
			s.hits, s.expired = 0, 0
			return true
		}
	}
	return false
}

// Tick advances the simulation by one step and returns the resulting
// snapshot. A terminated session is not advanced.
//
// Projectiles are scanned in insertion order against the target as it is at
// that moment: a hit resets the target before the next projectile is tested.
// Removals are only marked during the scan and compacted once at the end.
func (s *Session) Tick() Snapshot {
	if s.state == StateTerminated {
		return s.Snapshot()
	}

	s.tick++
	s.hits, s.expired = 0, 0

	s.target.advance(s.arena)

	s.removed = s.removed[:0]
	for i := range s.projectiles {
		p := &s.projectiles[i]
		p.advance()

		dead := false
		if s.target.contains(p.Position) {
			s.score++
			s.hits++
			s.target.reset(s.arena, s.rng)
			dead = true
		} else if p.outOfBounds(s.arena) {
			s.expired++
			dead = true
		}
		s.removed = append(s.removed, dead)
	}

	s.compact()
	return s.Snapshot()
}

// Step applies one tick worth of input and, unless it contained a quit,
// advances the simulation.
func (s *Session) Step(in core.InputFrame) Snapshot {
	if s.ApplyInputs(in.Events()) {
		return s.Snapshot()
	}
	return s.Tick()
}

// compact drops every projectile marked during the last scan.
func (s *Session) compact() {
	if s.hits+s.expired == 0 {
		return
	}
	live := s.projectiles[:0]
	for i, p := range s.projectiles {
		if !s.removed[i] {
			live = append(live, p)
		}
	}
	// Zero the tail so the backing array holds no stale projectiles
	for i := len(live); i < len(s.projectiles); i++ {
		s.projectiles[i] = Projectile{}
	}
	s.projectiles = live
}

// Counters returns the current game state.
func (s *Session) Counters() core.GameState {
	return core.GameState{
		Score:      s.score,
		ShotsFired: s.shotsFired,
		Accuracy:   Accuracy(s.score, s.shotsFired),
		Terminated: s.state == StateTerminated,
	}
}

// Accuracy returns hits as a percentage of shots, treating zero shots as one.
func Accuracy(score, shotsFired int) float64 {
	return 100 * float64(score) / float64(max(1, shotsFired))
}
