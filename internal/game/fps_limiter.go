package game

import (
	"time"

	"mini-clouds/internal/config"
)

// spinWindow is how close to the deadline the limiter stops sleeping and spins
const spinWindow = 200 * time.Microsecond

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	next  time.Time
	limit func() int
}

// NewFPSLimiter creates a limiter following config.GetFPSLimit
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{limit: config.GetFPSLimit}
}

// NewFixedFPSLimiter creates a limiter with a constant cap; 0 disables it
func NewFixedFPSLimiter(fps int) *FPSLimiter {
	return &FPSLimiter{limit: func() int { return fps }}
}

// Wait blocks until the next frame is due. Sleeps for the bulk of the wait
// and spins for the last spinWindow.
func (f *FPSLimiter) Wait() {
	limit := f.limit()
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// Resync after a hitch instead of rushing frames to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
