package clouds

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// assetsDir points at the shaders shipped with the binary
var assetsDir = filepath.Join("..", "..", "..", "..", "assets", "shaders", "clouds")

func readAsset(t *testing.T, name string) string {
	t.Helper()
	src, err := os.ReadFile(filepath.Join(assetsDir, name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(src)
}

func TestShippedShadersDeclareContract(t *testing.T) {
	src := readAsset(t, VertShaderName) + readAsset(t, FragShaderName)
	for _, b := range shaderContract {
		decl := "uniform " + b.kind.String() + " " + b.name + ";"
		if !strings.Contains(src, decl) {
			t.Errorf("shipped shaders lack %q", decl)
		}
	}
}

func TestShippedVertexShaderAttributes(t *testing.T) {
	src := readAsset(t, VertShaderName)
	for _, decl := range []string{
		"layout(location = 0) in vec3 " + PositionAttrib + ";",
		"layout(location = 1) in vec2 " + UVAttrib + ";",
	} {
		if !strings.Contains(src, decl) {
			t.Errorf("vertex shader lacks %q", decl)
		}
	}
}
