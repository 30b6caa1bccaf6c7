package graphics

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// Shader represents a linked shader program. Uniform setters silently skip
// names the program does not expose (location -1): a renamed or optimized-out
// uniform degrades the image, it does not stop the frame.
type Shader struct {
	ID  uint32
	dev Device
}

// NewShader creates a new shader program from vertex and fragment shader source files
func NewShader(dev Device, vertexPath, fragmentPath string) (*Shader, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("could not read vertex shader file: %w", err)
	}

	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("could not read fragment shader file: %w", err)
	}

	return NewShaderFromSource(dev, string(vertexSource), string(fragmentSource))
}

// NewShaderFromSource compiles and links a program from in-memory sources
func NewShaderFromSource(dev Device, vertexSrc, fragmentSrc string) (*Shader, error) {
	program, err := dev.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Shader{ID: program, dev: dev}, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	s.dev.UseProgram(s.ID)
}

// Delete releases the program
func (s *Shader) Delete() {
	if s.ID != 0 {
		s.dev.DeleteProgram(s.ID)
		s.ID = 0
	}
}

// HasUniform reports whether name is an active uniform of the program
func (s *Shader) HasUniform(name string) bool {
	return s.dev.UniformLocation(s.ID, name) >= 0
}

// AttribLocation returns the attribute index for name, or -1
func (s *Shader) AttribLocation(name string) int32 {
	return s.dev.AttribLocation(s.ID, name)
}

// SetFloat sets a float uniform. The setters report whether the write happened.
func (s *Shader) SetFloat(name string, value float32) bool {
	loc := s.dev.UniformLocation(s.ID, name)
	if loc < 0 {
		return false
	}
	s.dev.Uniform1f(loc, value)
	return true
}

// SetVector3 sets a vec3 uniform
func (s *Shader) SetVector3(name string, v mgl32.Vec3) bool {
	loc := s.dev.UniformLocation(s.ID, name)
	if loc < 0 {
		return false
	}
	s.dev.Uniform3f(loc, v[0], v[1], v[2])
	return true
}

// SetVector4 sets a vec4 uniform
func (s *Shader) SetVector4(name string, v mgl32.Vec4) bool {
	loc := s.dev.UniformLocation(s.ID, name)
	if loc < 0 {
		return false
	}
	s.dev.Uniform4f(loc, v[0], v[1], v[2], v[3])
	return true
}

// SetMatrix4 sets a 4x4 matrix uniform (column-major, as mgl32 stores it)
func (s *Shader) SetMatrix4(name string, m mgl32.Mat4) bool {
	loc := s.dev.UniformLocation(s.ID, name)
	if loc < 0 {
		return false
	}
	s.dev.UniformMatrix4fv(loc, &m[0])
	return true
}
