// Package delivery owns the houses and the countdown that turns them into
// delivery targets.
package delivery

import "fmt"

// Source is the random source the Scheduler draws from. *math/rand.Rand
// satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Scheduler is a repeating countdown. Each expiry activates one random house
// and resamples the next interval from [0, 2*base).
type Scheduler struct {
	base     float64
	duration float64
	elapsed  float64

	// OnActivate is called after a house has been marked active.
	OnActivate func(index int, h *House)
}

// NewScheduler creates a scheduler whose first interval is base seconds.
func NewScheduler(base float64) (*Scheduler, error) {
	if base <= 0 {
		return nil, fmt.Errorf("base duration must be positive, got %v", base)
	}
	return &Scheduler{base: base, duration: base}, nil
}

// Base returns the mean interval in seconds.
func (s *Scheduler) Base() float64 { return s.base }

// Duration returns the current interval in seconds.
func (s *Scheduler) Duration() float64 { return s.duration }

// Elapsed returns the seconds accumulated toward the current interval.
func (s *Scheduler) Elapsed() float64 { return s.elapsed }

// Remaining returns the seconds left before the next expiry, never negative.
func (s *Scheduler) Remaining() float64 {
	if r := s.duration - s.elapsed; r > 0 {
		return r
	}
	return 0
}

// Tick advances the countdown by dt seconds and reports whether it expired.
//
// A resampled interval of 0 is legal: the next Tick expires again
// immediately. An empty houses slice skips the selection step. A negative
// dt counts as 0.
func (s *Scheduler) Tick(dt float64, houses []House, rng Source) bool {
	if dt > 0 {
		s.elapsed += dt
	}
	if s.elapsed < s.duration {
		return false
	}

	s.elapsed = 0
	r := rng.Float64()
	s.duration = s.base * (r * 2)

	if len(houses) == 0 {
		return true
	}

	i := rng.Intn(len(houses))
	houses[i].Active = true
	if s.OnActivate != nil {
		s.OnActivate(i, &houses[i])
	}
	return true
}
