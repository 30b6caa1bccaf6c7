// Package graphicstest provides an in-memory graphics.Device for tests that
// exercise rendering code without a GPU context.
package graphicstest

import (
	"fmt"
	"unsafe"

	"mini-clouds/internal/graphics"
)

// DrawCall records one DrawArrays invocation together with the state it ran under
type DrawCall struct {
	Mode        uint32
	First       int32
	Count       int32
	Program     uint32
	VAO         uint32
	CullEnabled bool
}

// AttribDecl records one VertexAttrib invocation
type AttribDecl struct {
	VAO, Buffer, Index uint32
	Size, Stride       int32
	Offset             int
}

// Device records every call it receives. Only names listed in Uniforms and
// Attribs resolve to a location; everything else reports -1 like a real driver.
type Device struct {
	Uniforms map[string]int32
	Attribs  map[string]int32

	// CompileErr, when set, is returned by CompileProgram
	CompileErr error

	Calls        []string
	Values       map[string][]float32 // last value written per uniform name (matrices column-major)
	Writes       map[string]int       // write count per uniform name
	Buffers      [][]float32          // data of every created buffer, in order
	VertexArrays int
	AttribDecls  []AttribDecl
	Draws        []DrawCall
	Deleted      []string

	ViewportW, ViewportH int32
	ClearCount           int

	enabled     map[uint32]bool
	nextID      uint32
	program     uint32
	vao         uint32
	byLocation  map[int32]string
	programs    int
	depthFunc   uint32
	blendSrc    uint32
	blendDst    uint32
	cullFace    uint32
	frontFace   uint32
	clearColor  [4]float32
	versionName string
}

var _ graphics.Device = (*Device)(nil)

// NewDevice returns a device whose programs expose the given uniforms and the
// default "aPos"/"uv" attributes at locations 0 and 1.
func NewDevice(uniforms ...string) *Device {
	d := &Device{
		Uniforms:    make(map[string]int32, len(uniforms)),
		Attribs:     map[string]int32{"aPos": 0, "uv": 1},
		Values:      make(map[string][]float32),
		Writes:      make(map[string]int),
		enabled:     make(map[uint32]bool),
		byLocation:  make(map[int32]string),
		versionName: "graphicstest 4.1",
	}
	for i, name := range uniforms {
		d.Uniforms[name] = int32(i)
	}
	return d
}

// Without removes uniform names from the device's programs
func (d *Device) Without(names ...string) *Device {
	for _, n := range names {
		delete(d.Uniforms, n)
	}
	return d
}

func (d *Device) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func (d *Device) id() uint32 {
	d.nextID++
	return d.nextID
}

// ProgramsCompiled returns how many programs were linked
func (d *Device) ProgramsCompiled() int { return d.programs }

// DepthFuncValue returns the last depth function set
func (d *Device) DepthFuncValue() uint32 { return d.depthFunc }

// BlendFuncValue returns the last blend factors set
func (d *Device) BlendFuncValue() (src, dst uint32) { return d.blendSrc, d.blendDst }

// CullFaceValue returns the last cull face set
func (d *Device) CullFaceValue() uint32 { return d.cullFace }

// FrontFaceValue returns the last winding set
func (d *Device) FrontFaceValue() uint32 { return d.frontFace }

// ClearColorValue returns the last clear color set
func (d *Device) ClearColorValue() [4]float32 { return d.clearColor }

func (d *Device) Version() string { return d.versionName }

func (d *Device) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	d.record("CompileProgram")
	if d.CompileErr != nil {
		return 0, d.CompileErr
	}
	d.programs++
	return d.id(), nil
}

func (d *Device) UseProgram(program uint32) {
	d.record("UseProgram %d", program)
	d.program = program
}

func (d *Device) DeleteProgram(program uint32) {
	d.Deleted = append(d.Deleted, fmt.Sprintf("program %d", program))
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	loc, ok := d.Uniforms[name]
	if !ok {
		return -1
	}
	d.byLocation[loc] = name
	return loc
}

func (d *Device) AttribLocation(program uint32, name string) int32 {
	loc, ok := d.Attribs[name]
	if !ok {
		return -1
	}
	return loc
}

func (d *Device) write(location int32, v ...float32) {
	name, ok := d.byLocation[location]
	if !ok {
		name = fmt.Sprintf("#%d", location)
	}
	d.record("Uniform %s", name)
	d.Values[name] = append([]float32(nil), v...)
	d.Writes[name]++
}

func (d *Device) Uniform1f(location int32, v float32) { d.write(location, v) }

func (d *Device) Uniform3f(location int32, x, y, z float32) { d.write(location, x, y, z) }

func (d *Device) Uniform4f(location int32, x, y, z, w float32) { d.write(location, x, y, z, w) }

func (d *Device) UniformMatrix4fv(location int32, m *float32) {
	d.write(location, unsafe.Slice(m, 16)...)
}

func (d *Device) CreateBuffer(data []float32) uint32 {
	d.record("CreateBuffer %d", len(data))
	d.Buffers = append(d.Buffers, append([]float32(nil), data...))
	return d.id()
}

func (d *Device) DeleteBuffer(buffer uint32) {
	d.Deleted = append(d.Deleted, fmt.Sprintf("buffer %d", buffer))
}

func (d *Device) CreateVertexArray() uint32 {
	d.record("CreateVertexArray")
	d.VertexArrays++
	return d.id()
}

func (d *Device) DeleteVertexArray(vao uint32) {
	d.Deleted = append(d.Deleted, fmt.Sprintf("vao %d", vao))
}

func (d *Device) BindVertexArray(vao uint32) {
	d.record("BindVertexArray %d", vao)
	d.vao = vao
}

func (d *Device) VertexAttrib(vao, buffer, index uint32, size, stride int32, offset int) {
	d.record("VertexAttrib %d", index)
	d.AttribDecls = append(d.AttribDecls, AttribDecl{
		VAO: vao, Buffer: buffer, Index: index, Size: size, Stride: stride, Offset: offset,
	})
}

func (d *Device) Enable(capability uint32) {
	d.record("Enable 0x%X", capability)
	d.enabled[capability] = true
}

func (d *Device) Disable(capability uint32) {
	d.record("Disable 0x%X", capability)
	d.enabled[capability] = false
}

func (d *Device) IsEnabled(capability uint32) bool { return d.enabled[capability] }

func (d *Device) DepthFunc(fn uint32) { d.depthFunc = fn }

func (d *Device) BlendFunc(src, dst uint32) { d.blendSrc, d.blendDst = src, dst }

func (d *Device) CullFace(face uint32) { d.cullFace = face }

func (d *Device) FrontFace(winding uint32) { d.frontFace = winding }

func (d *Device) ClearColor(r, g, b, a float32) { d.clearColor = [4]float32{r, g, b, a} }

func (d *Device) Clear() {
	d.record("Clear")
	d.ClearCount++
}

func (d *Device) Viewport(x, y, width, height int32) {
	d.ViewportW, d.ViewportH = width, height
}

func (d *Device) DrawArrays(mode uint32, first, count int32) {
	d.record("DrawArrays %d", count)
	d.Draws = append(d.Draws, DrawCall{
		Mode:        mode,
		First:       first,
		Count:       count,
		Program:     d.program,
		VAO:         d.vao,
		CullEnabled: d.enabled[graphics.CapCullFace],
	})
}
