package clouds

import (
	"mini-clouds/internal/config"
	"mini-clouds/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

type uniformKind int

const (
	kindFloat uniformKind = iota
	kindVec3
	kindVec4
	kindMat4
)

func (k uniformKind) String() string {
	switch k {
	case kindFloat:
		return "float"
	case kindVec3:
		return "vec3"
	case kindVec4:
		return "vec4"
	case kindMat4:
		return "mat4"
	}
	return "unknown"
}

// frameInputs is everything a uniform value may depend on. Nothing else feeds
// the shader, so two frames with equal inputs write equal uniforms.
type frameInputs struct {
	camera  graphics.CameraSnapshot
	elapsed float64
	params  config.CloudParams
}

// uniformBinding ties a shader uniform name to the frame value it carries.
// Exactly one of the value funcs matching kind is set.
type uniformBinding struct {
	name  string
	kind  uniformKind
	float func(f *frameInputs) float32
	vec3  func(f *frameInputs) mgl32.Vec3
	vec4  func(f *frameInputs) mgl32.Vec4
	mat4  func(f *frameInputs) mgl32.Mat4
}

func floatUniform(name string, fn func(f *frameInputs) float32) uniformBinding {
	return uniformBinding{name: name, kind: kindFloat, float: fn}
}

func vec3Uniform(name string, fn func(f *frameInputs) mgl32.Vec3) uniformBinding {
	return uniformBinding{name: name, kind: kindVec3, vec3: fn}
}

func vec4Uniform(name string, fn func(f *frameInputs) mgl32.Vec4) uniformBinding {
	return uniformBinding{name: name, kind: kindVec4, vec4: fn}
}

func mat4Uniform(name string, fn func(f *frameInputs) mgl32.Mat4) uniformBinding {
	return uniformBinding{name: name, kind: kindMat4, mat4: fn}
}

// shaderContract is the full set of uniforms the cloud shader may read
var shaderContract = []uniformBinding{
	mat4Uniform("mvp", func(f *frameInputs) mgl32.Mat4 { return f.camera.MVP }),
	vec3Uniform("camDir", func(f *frameInputs) mgl32.Vec3 { return f.camera.Direction }),
	vec3Uniform("camPos", func(f *frameInputs) mgl32.Vec3 { return f.camera.Position }),
	floatUniform("time", func(f *frameInputs) float32 { return float32(f.elapsed) }),
	floatUniform("opacity", func(f *frameInputs) float32 { return f.params.Opacity }),
	floatUniform("scale", func(f *frameInputs) float32 { return f.params.Scale }),
	floatUniform("ambientBrightMult", func(f *frameInputs) float32 { return f.params.AmbientBrightMult }),
	floatUniform("viewDistance", func(f *frameInputs) float32 { return f.params.ViewDistance }),
	floatUniform("sunset", func(f *frameInputs) float32 { return f.params.Sunset }),
	floatUniform("sunrise", func(f *frameInputs) float32 { return f.params.Sunrise }),
	vec4Uniform("fogCol", func(f *frameInputs) mgl32.Vec4 { return f.params.FogColor }),
}

// bindUniforms writes every contract uniform the program exposes and returns
// how many were written. Absent uniforms are skipped.
func bindUniforms(s *graphics.Shader, f *frameInputs) int {
	written := 0
	for i := range shaderContract {
		b := &shaderContract[i]
		var ok bool
		switch b.kind {
		case kindFloat:
			ok = s.SetFloat(b.name, b.float(f))
		case kindVec3:
			ok = s.SetVector3(b.name, b.vec3(f))
		case kindVec4:
			ok = s.SetVector4(b.name, b.vec4(f))
		case kindMat4:
			ok = s.SetMatrix4(b.name, b.mat4(f))
		}
		if ok {
			written++
		}
	}
	return written
}

// missingUniforms lists contract names the program does not expose
func missingUniforms(s *graphics.Shader) []string {
	var missing []string
	for _, b := range shaderContract {
		if !s.HasUniform(b.name) {
			missing = append(missing, b.name+" ("+b.kind.String()+")")
		}
	}
	return missing
}
