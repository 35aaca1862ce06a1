package skillshot

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/skillshot/internal/core"
)

//go:generate go tool mockgen -destination=./mocks/runner_mock.go -package=mocks . EventSource,Presenter

// EventSource delivers the input events queued since the previous poll.
// Poll must not block.
type EventSource interface {
	Poll() []core.Event
}

// Presenter receives the snapshot of every simulated tick.
type Presenter interface {
	Present(snap Snapshot) error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(snap Snapshot) error

// Present calls f(snap).
func (f PresenterFunc) Present(snap Snapshot) error {
	return f(snap)
}

// Runner drives a session at a fixed cadence without a terminal or window:
// poll input, apply it, tick, present.
type Runner struct {
	session   *Session
	source    EventSource
	presenter Presenter
	tickRate  int // Ticks per second, 0 runs unpaced

	// MaxTicks stops the run after this many ticks. Zero means no limit.
	MaxTicks uint64
}

// NewRunner creates a runner for the session.
func NewRunner(s *Session, src EventSource, out Presenter, tickRate int) *Runner {
	return &Runner{
		session:   s,
		source:    src,
		presenter: out,
		tickRate:  tickRate,
	}
}

// Run ticks until the session receives a quit, MaxTicks is reached, the
// presenter fails or ctx is cancelled. It returns the last snapshot.
// The tick that receives a quit is neither simulated nor presented.
func (r *Runner) Run(ctx context.Context) (Snapshot, error) {
	var ticks <-chan time.Time
	if r.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
		defer ticker.Stop()
		ticks = ticker.C
	}

	last := r.session.Snapshot()
	for {
		if ticks != nil {
			select {
			case <-ctx.Done():
				return last, ctx.Err()
			case <-ticks:
			}
		} else if err := ctx.Err(); err != nil {
			return last, err
		}

		if r.session.ApplyInputs(r.source.Poll()) {
			return r.session.Snapshot(), nil
		}

		snap := r.session.Tick()
		if err := r.presenter.Present(snap); err != nil {
			return snap, fmt.Errorf("skillshot: present tick %d: %w", snap.Tick, err)
		}
		last = snap

		if r.MaxTicks > 0 && snap.Tick >= r.MaxTicks {
			return snap, nil
		}
	}
}

// RandomFireSource fires at a uniformly random arena point every n polls.
// It is deterministic for a given seed.
type RandomFireSource struct {
	arena core.Size
	every int
	rng   *rand.Rand
	polls int
}

// NewRandomFireSource creates a scripted source. every < 1 is treated as 1.
func NewRandomFireSource(arena core.Size, every int, seed int64) *RandomFireSource {
	return &RandomFireSource{
		arena: arena,
		every: max(1, every),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Poll implements EventSource.
func (s *RandomFireSource) Poll() []core.Event {
	s.polls++
	if s.polls%s.every != 0 {
		return nil
	}
	p := core.V(s.rng.Float64()*s.arena.W, s.rng.Float64()*s.arena.H)
	return []core.Event{core.Fire(p)}
}
