package service

import (
	"math"
	"time"
)

// springBack animates the slider knob from a release offset back to rest.
// It is a pure function of time so a host can sample it at any frame rate.
type springBack struct {
	from     float64
	start    time.Time
	duration time.Duration
}

// offsetAt returns the knob offset at now and whether the animation is done.
func (s springBack) offsetAt(now time.Time) (float64, bool) {
	if s.duration <= 0 || s.from <= 0 {
		return 0, true
	}
	elapsed := now.Sub(s.start)
	if elapsed <= 0 {
		return s.from, false
	}
	if elapsed >= s.duration {
		return 0, true
	}
	p := float64(elapsed) / float64(s.duration)
	// ease-out cubic: fast at first, settling gently
	return s.from * math.Pow(1-p, 3), false
}
