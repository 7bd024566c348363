// Package scheduler drives actor invocations off a heartbeat ticker. Each
// persona gets an independent Bernoulli trial per tick, so posting times are
// randomized while the daily rate converges on the persona's target.
package scheduler

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"northpole/internal/middleware"
)

const minutesPerDay = 24 * 60

// Invoker is one schedulable actor.
type Invoker interface {
	Handle() string
	Run(ctx context.Context) error
}

// Target pairs an invoker with its posting rate.
type Target struct {
	Invoker     Invoker
	PostsPerDay float64
}

// Scheduler fires actors probabilistically on a fixed heartbeat. Invocations
// are fire-and-forget: a slow or failing actor never delays the tick loop,
// and overlapping invocations of one persona are allowed.
type Scheduler struct {
	targets  []Target
	interval time.Duration
	timeout  time.Duration

	mu  sync.Mutex
	rng *rand.Rand

	wg sync.WaitGroup
}

// New creates a scheduler with a time-seeded RNG.
func New(targets []Target, interval, timeout time.Duration) *Scheduler {
	return NewWithRand(targets, interval, timeout,
		rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a scheduler with the given RNG so tests can fix the rolls.
func NewWithRand(targets []Target, interval, timeout time.Duration, rng *rand.Rand) *Scheduler {
	return &Scheduler{
		targets:  targets,
		interval: interval,
		timeout:  timeout,
		rng:      rng,
	}
}

// fireProbability converts a daily rate into a per-tick trial probability.
func (s *Scheduler) fireProbability(postsPerDay float64) float64 {
	p := postsPerDay * s.interval.Minutes() / minutesPerDay
	if p > 1 {
		p = 1
	}
	return p
}

// Run blocks, ticking until the context is cancelled, then waits for
// in-flight invocations to settle.
func (s *Scheduler) Run(ctx context.Context) {
	middleware.Logger.Info("scheduler started",
		"interval", s.interval.String(), "personas", len(s.targets))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			middleware.Logger.Info("scheduler stopping")
			s.wg.Wait()
			return
		case <-ticker.C:
			s.tickOnce(ctx)
		}
	}
}

// tickOnce runs one round of Bernoulli trials. At most one fire per persona
// per tick.
func (s *Scheduler) tickOnce(ctx context.Context) {
	for _, t := range s.targets {
		s.mu.Lock()
		win := s.rng.Float64() < s.fireProbability(t.PostsPerDay)
		s.mu.Unlock()
		if win {
			s.fire(ctx, t.Invoker)
		}
	}
}

// Kickstart fires one random persona immediately, used on boot so a fresh
// deployment has content without waiting for the heartbeat.
func (s *Scheduler) Kickstart(ctx context.Context) {
	if len(s.targets) == 0 {
		return
	}
	s.mu.Lock()
	t := s.targets[s.rng.Intn(len(s.targets))]
	s.mu.Unlock()
	s.fire(ctx, t.Invoker)
}

func (s *Scheduler) fire(ctx context.Context, inv Invoker) {
	middleware.SchedulerFires.WithLabelValues(inv.Handle()).Inc()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				middleware.Logger.Error("actor panic recovered",
					"persona", inv.Handle(), "panic", r)
			}
		}()

		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		if err := inv.Run(runCtx); err != nil {
			middleware.Logger.Error("actor invocation failed",
				"persona", inv.Handle(), "error", err)
		}
	}()
}

// Wait blocks until all in-flight invocations finish. Exposed for shutdown
// paths that cancel Run's context themselves.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
