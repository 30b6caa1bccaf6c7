package mouselook

import (
	"math"
	"testing"

	"mini-clouds/internal/graphics"
)

type recorder struct {
	deltas [][2]float64
}

func (r *recorder) OnMouseDelta(dx, dy float64) {
	r.deltas = append(r.deltas, [2]float64{dx, dy})
}

type capturer struct{ calls int }

func (c *capturer) CaptureCursor() { c.calls++ }

func TestFirstSampleAfterActivationIsBaseline(t *testing.T) {
	rec := &recorder{}
	m := New(rec)
	m.Activate()

	m.HandleCursor(100, 100)
	m.HandleCursor(110, 105)

	if len(rec.deltas) != 1 {
		t.Fatalf("deltas: got %v, want one", rec.deltas)
	}
	if rec.deltas[0] != [2]float64{10, 5} {
		t.Fatalf("delta: got %v, want (10,5)", rec.deltas[0])
	}
}

func TestActivationResetRotatesCamera(t *testing.T) {
	cam := graphics.NewCamera(800, 600)
	cam.SetSensitivity(0.5)
	m := New(cam)
	m.Activate()

	m.HandleCursor(100, 100)
	if s := cam.Snapshot(); s.Yaw != 0 || s.Pitch != 0 {
		t.Fatalf("baseline sample rotated camera: yaw=%v pitch=%v", s.Yaw, s.Pitch)
	}

	m.HandleCursor(110, 105)
	s := cam.Snapshot()
	if math.Abs(float64(s.Yaw-5)) > 1e-6 || math.Abs(float64(s.Pitch+2.5)) > 1e-6 {
		t.Fatalf("got yaw=%v pitch=%v, want 5 and -2.5", s.Yaw, s.Pitch)
	}
}

func TestInactiveIgnoresCursor(t *testing.T) {
	cam := graphics.NewCamera(800, 600)
	before := cam.Snapshot()
	m := New(cam)

	for i := 0; i < 5; i++ {
		m.HandleCursor(float64(i*40), float64(i*-30))
	}

	if cam.Snapshot() != before {
		t.Fatal("camera changed while mouse-look inactive")
	}
}

func TestReactivationPrimesNewBaseline(t *testing.T) {
	rec := &recorder{}
	m := New(rec)
	m.Activate()
	m.HandleCursor(0, 0)
	m.HandleCursor(1, 1)

	m.Deactivate()
	m.HandleCursor(500, 500)
	m.Activate()
	m.HandleCursor(900, 900)
	m.HandleCursor(902, 903)

	want := [][2]float64{{1, 1}, {2, 3}}
	if len(rec.deltas) != len(want) {
		t.Fatalf("deltas: got %v, want %v", rec.deltas, want)
	}
	for i := range want {
		if rec.deltas[i] != want[i] {
			t.Fatalf("deltas: got %v, want %v", rec.deltas, want)
		}
	}
}

func TestRepeatedEngageKeepsTracking(t *testing.T) {
	rec := &recorder{}
	c := &capturer{}
	m := New(rec)

	m.Engage(c)
	m.HandleCursor(10, 10)
	m.HandleCursor(12, 10)
	// Left press again while already active: cursor is re-captured, tracking continues
	m.Engage(c)
	m.HandleCursor(15, 10)

	if c.calls != 2 {
		t.Fatalf("capture requests: got %d, want 2", c.calls)
	}
	if len(rec.deltas) != 2 || rec.deltas[1] != [2]float64{3, 0} {
		t.Fatalf("deltas: got %v", rec.deltas)
	}
	if !m.Active() {
		t.Fatal("mouse-look not active")
	}
}
