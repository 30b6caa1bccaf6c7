package game

import (
	"testing"
	"time"
)

func TestUnlimitedDoesNotBlock(t *testing.T) {
	f := NewFixedFPSLimiter(0)
	start := time.Now()
	for i := 0; i < 1000; i++ {
		f.Wait()
	}
	if d := time.Since(start); d > 100*time.Millisecond {
		t.Fatalf("unlimited limiter blocked for %v", d)
	}
}

func TestLimiterPacesFrames(t *testing.T) {
	f := NewFixedFPSLimiter(100)
	start := time.Now()
	for i := 0; i < 10; i++ {
		f.Wait()
	}
	// 10 frames at 100 fps take at least ~100ms
	if d := time.Since(start); d < 90*time.Millisecond {
		t.Fatalf("10 frames at 100fps finished in %v", d)
	}
}

func TestLimiterResyncsAfterHitch(t *testing.T) {
	f := NewFixedFPSLimiter(100)
	f.Wait()
	time.Sleep(50 * time.Millisecond)
	f.Wait()
	if until := time.Until(f.next); until < 0 {
		t.Fatalf("deadline left in the past after hitch: %v", until)
	}
}
