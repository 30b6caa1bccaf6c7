package graphics_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mini-clouds/internal/graphics"
	"mini-clouds/internal/graphics/graphicstest"

	"github.com/go-gl/mathgl/mgl32"
)

func writeShaders(t *testing.T) (vert, frag string) {
	t.Helper()
	dir := t.TempDir()
	vert = filepath.Join(dir, "a.vert")
	frag = filepath.Join(dir, "a.frag")
	if err := os.WriteFile(vert, []byte("void main(){}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(frag, []byte("void main(){}"), 0o644); err != nil {
		t.Fatal(err)
	}
	return vert, frag
}

func TestNewShaderMissingFile(t *testing.T) {
	dev := graphicstest.NewDevice()
	_, err := graphics.NewShader(dev, "does/not/exist.vert", "does/not/exist.frag")
	if err == nil {
		t.Fatal("expected error for missing shader file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error should wrap os.ErrNotExist, got %v", err)
	}
	if dev.ProgramsCompiled() != 0 {
		t.Fatal("compile attempted after read failure")
	}
}

func TestNewShaderCompileError(t *testing.T) {
	vert, frag := writeShaders(t)
	dev := graphicstest.NewDevice()
	dev.CompileErr = errors.New("0:1: syntax error")

	if _, err := graphics.NewShader(dev, vert, frag); err == nil {
		t.Fatal("expected compile error to surface")
	}
}

func TestSettersSkipMissingUniforms(t *testing.T) {
	vert, frag := writeShaders(t)
	dev := graphicstest.NewDevice("present")
	s, err := graphics.NewShader(dev, vert, frag)
	if err != nil {
		t.Fatal(err)
	}

	if !s.SetFloat("present", 2) {
		t.Fatal("write to present uniform reported skipped")
	}
	if s.SetFloat("absent", 1) || s.SetVector3("absent", mgl32.Vec3{}) ||
		s.SetVector4("absent", mgl32.Vec4{}) || s.SetMatrix4("absent", mgl32.Ident4()) {
		t.Fatal("write to absent uniform reported written")
	}
	if dev.Writes["present"] != 1 || len(dev.Writes) != 1 {
		t.Fatalf("unexpected writes: %v", dev.Writes)
	}
	if !s.HasUniform("present") || s.HasUniform("absent") {
		t.Fatal("HasUniform mismatch")
	}
}

func TestSetMatrix4WritesAllColumns(t *testing.T) {
	dev := graphicstest.NewDevice("m")
	s, err := graphics.NewShaderFromSource(dev, "", "")
	if err != nil {
		t.Fatal(err)
	}
	m := mgl32.Translate3D(1, 2, 3)
	s.SetMatrix4("m", m)
	got := dev.Values["m"]
	if len(got) != 16 {
		t.Fatalf("matrix floats: got %d, want 16", len(got))
	}
	for i := range got {
		if got[i] != m[i] {
			t.Fatalf("element %d: got %v, want %v", i, got[i], m[i])
		}
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	dev := graphicstest.NewDevice()
	s, err := graphics.NewShaderFromSource(dev, "", "")
	if err != nil {
		t.Fatal(err)
	}
	s.Delete()
	s.Delete()
	if len(dev.Deleted) != 1 {
		t.Fatalf("deletes: got %v, want one", dev.Deleted)
	}
}
