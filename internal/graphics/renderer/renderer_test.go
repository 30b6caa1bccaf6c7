package renderer_test

import (
	"errors"
	"testing"

	"mini-clouds/internal/graphics"
	"mini-clouds/internal/graphics/graphicstest"
	renderer "mini-clouds/internal/graphics/renderer"
)

type stubRenderable struct {
	name     string
	initErr  error
	log      *[]string
	contexts []renderer.RenderContext
	viewport [2]int
}

func (s *stubRenderable) Init() error {
	*s.log = append(*s.log, "init "+s.name)
	return s.initErr
}

func (s *stubRenderable) Render(ctx renderer.RenderContext) {
	s.contexts = append(s.contexts, ctx)
}

func (s *stubRenderable) Dispose() {
	*s.log = append(*s.log, "dispose "+s.name)
}

func (s *stubRenderable) SetViewport(width, height int) {
	s.viewport = [2]int{width, height}
}

func TestNewRendererConfiguresState(t *testing.T) {
	dev := graphicstest.NewDevice()
	if _, err := renderer.NewRenderer(dev, graphics.NewCamera(800, 600)); err != nil {
		t.Fatal(err)
	}

	for _, c := range []uint32{graphics.CapDepthTest, graphics.CapBlend, graphics.CapCullFace} {
		if !dev.IsEnabled(c) {
			t.Fatalf("capability 0x%X not enabled", c)
		}
	}
	if dev.DepthFuncValue() != graphics.FuncLess {
		t.Fatal("depth func not LESS")
	}
	if src, dst := dev.BlendFuncValue(); src != graphics.FactorSrcAlpha || dst != graphics.FactorOneMinusSrcAlpha {
		t.Fatal("blend func not alpha blending")
	}
	if dev.CullFaceValue() != graphics.FaceBack || dev.FrontFaceValue() != graphics.WindingClockwise {
		t.Fatal("cull face/winding not BACK/CW")
	}
}

func TestInitFailureDisposesEarlierRenderables(t *testing.T) {
	var log []string
	a := &stubRenderable{name: "a", log: &log}
	b := &stubRenderable{name: "b", log: &log, initErr: errors.New("boom")}
	c := &stubRenderable{name: "c", log: &log}

	_, err := renderer.NewRenderer(graphicstest.NewDevice(), graphics.NewCamera(800, 600), a, b, c)
	if err == nil {
		t.Fatal("expected init error")
	}
	want := []string{"init a", "init b", "dispose a"}
	if len(log) != len(want) {
		t.Fatalf("lifecycle: got %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("lifecycle: got %v, want %v", log, want)
		}
	}
}

func TestRenderFrameContext(t *testing.T) {
	var log []string
	s := &stubRenderable{name: "s", log: &log}
	cam := graphics.NewCamera(800, 600)
	dev := graphicstest.NewDevice()
	r, err := renderer.NewRenderer(dev, cam, s)
	if err != nil {
		t.Fatal(err)
	}

	r.RenderFrame(1.0)
	cam.SetRotation(45, 10)
	r.RenderFrame(1.25)

	if len(s.contexts) != 2 || r.Frames() != 2 {
		t.Fatalf("frames: got %d contexts, %d counted", len(s.contexts), r.Frames())
	}
	if s.contexts[0].DT != 0 || s.contexts[1].DT != 0.25 {
		t.Fatalf("dt: got %v and %v", s.contexts[0].DT, s.contexts[1].DT)
	}
	if s.contexts[1].Elapsed != 1.25 {
		t.Fatalf("elapsed: got %v", s.contexts[1].Elapsed)
	}
	if s.contexts[1].Camera != cam.Snapshot() {
		t.Fatal("context camera is not the current snapshot")
	}
	if dev.ClearCount != 2 || dev.ClearColorValue() != [4]float32{0, 0, 0, 1} {
		t.Fatalf("clear: count=%d color=%v", dev.ClearCount, dev.ClearColorValue())
	}
}

func TestUpdateViewport(t *testing.T) {
	var log []string
	s := &stubRenderable{name: "s", log: &log}
	cam := graphics.NewCamera(800, 600)
	dev := graphicstest.NewDevice()
	r, err := renderer.NewRenderer(dev, cam, s)
	if err != nil {
		t.Fatal(err)
	}

	r.UpdateViewport(1920, 1080)

	if dev.ViewportW != 1920 || dev.ViewportH != 1080 {
		t.Fatalf("device viewport: %dx%d", dev.ViewportW, dev.ViewportH)
	}
	if s.viewport != [2]int{1920, 1080} {
		t.Fatalf("renderable viewport: %v", s.viewport)
	}
	if r.GetCamera() != cam {
		t.Fatal("renderer does not expose its camera")
	}
	if got := cam.Snapshot().Aspect; got != float32(1920)/float32(1080) {
		t.Fatalf("camera aspect: %v", got)
	}
}

func TestDisposeReverseOrder(t *testing.T) {
	var log []string
	a := &stubRenderable{name: "a", log: &log}
	b := &stubRenderable{name: "b", log: &log}
	r, err := renderer.NewRenderer(graphicstest.NewDevice(), graphics.NewCamera(800, 600), a, b)
	if err != nil {
		t.Fatal(err)
	}
	log = log[:0]
	r.Dispose()
	if len(log) != 2 || log[0] != "dispose b" || log[1] != "dispose a" {
		t.Fatalf("dispose order: %v", log)
	}
}
