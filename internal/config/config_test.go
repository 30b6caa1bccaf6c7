package config

import "testing"

func TestSetFOVClamps(t *testing.T) {
	orig := GetFOV()
	defer SetFOV(orig)

	SetFOV(5)
	if got := GetFOV(); got != 30 {
		t.Fatalf("low fov: got %v, want 30", got)
	}
	SetFOV(500)
	if got := GetFOV(); got != 110 {
		t.Fatalf("high fov: got %v, want 110", got)
	}
}

func TestSetClipPlanesRejectsInvalid(t *testing.T) {
	near, far := GetClipPlanes()
	defer SetClipPlanes(near, far)

	SetClipPlanes(10, 1)
	if n, f := GetClipPlanes(); n != near || f != far {
		t.Fatalf("inverted planes applied: got %v/%v", n, f)
	}
	SetClipPlanes(0.5, 200)
	if n, f := GetClipPlanes(); n != 0.5 || f != 200 {
		t.Fatalf("valid planes not applied: got %v/%v", n, f)
	}
}

func TestMouseSensitivityStaysPositive(t *testing.T) {
	orig := GetMouseSensitivity()
	defer SetMouseSensitivity(orig)

	SetMouseSensitivity(-3)
	if got := GetMouseSensitivity(); got <= 0 {
		t.Fatalf("sensitivity must stay positive, got %v", got)
	}
}

func TestCloudParamsOpacityClamped(t *testing.T) {
	orig := GetCloudParams()
	defer SetCloudParams(orig)

	p := DefaultCloudParams()
	p.Opacity = 2
	SetCloudParams(p)
	if got := GetCloudParams().Opacity; got != 1 {
		t.Fatalf("opacity: got %v, want 1", got)
	}
}

func TestDefaultCloudParams(t *testing.T) {
	p := DefaultCloudParams()
	if p.ViewDistance != 8 || p.Opacity != 1 || p.Sunset != 0 || p.Sunrise != 0 {
		t.Fatalf("unexpected defaults: %+v", p)
	}
	if p.FogColor[3] != 1 {
		t.Fatalf("fog alpha: got %v, want 1", p.FogColor[3])
	}
}

func TestWindowTitle(t *testing.T) {
	orig := GetWindowTitle()
	defer SetWindowTitle(orig)

	SetWindowTitle("clouds test")
	if got := GetWindowTitle(); got != "clouds test" {
		t.Fatalf("title: got %q", got)
	}
}
