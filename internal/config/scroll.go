package config

import (
	"math"
	"time"
)

// Speed returns the scroll speed for a score: the base speed plus a bonus
// that grows linearly with score and is capped at MaxBonus.
func (s Scroll) Speed(score int) float64 {
	perUnit := s.ScorePerUnit
	if perUnit <= 0 {
		perUnit = 1 // Prevent division by zero
	}
	bonus := math.Min(s.MaxBonus, float64(score)/perUnit)
	return s.BaseSpeed + math.Max(bonus, 0)
}

// MaxDelta returns the frame delta clamp as a duration.
func (l Loop) MaxDelta() time.Duration {
	if l.MaxDeltaMs <= 0 {
		return 0
	}
	return time.Duration(l.MaxDeltaMs * float64(time.Millisecond))
}
