package graphics

// Capability and mode values mirror the OpenGL enums so opengl.Device can
// pass them straight through.
const (
	CapCullFace  uint32 = 0x0B44 // GL_CULL_FACE
	CapDepthTest uint32 = 0x0B71 // GL_DEPTH_TEST
	CapBlend     uint32 = 0x0BE2 // GL_BLEND

	ModeTriangles uint32 = 0x0004 // GL_TRIANGLES

	FuncLess               uint32 = 0x0201 // GL_LESS
	FactorSrcAlpha         uint32 = 0x0302 // GL_SRC_ALPHA
	FactorOneMinusSrcAlpha uint32 = 0x0303 // GL_ONE_MINUS_SRC_ALPHA
	FaceBack               uint32 = 0x0405 // GL_BACK
	WindingClockwise       uint32 = 0x0900 // GL_CW
	WindingCounterClock    uint32 = 0x0901 // GL_CCW
)

// Device is the subset of the GPU API the renderer issues. opengl.Device backs
// it with a real OpenGL context; tests substitute an in-memory recorder.
//
// Every method must be called on the thread that owns the context.
type Device interface {
	Version() string

	CompileProgram(vertexSrc, fragmentSrc string) (uint32, error)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// UniformLocation and AttribLocation return -1 when the name is not an
	// active uniform/attribute of the linked program.
	UniformLocation(program uint32, name string) int32
	AttribLocation(program uint32, name string) int32

	Uniform1f(location int32, v float32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4fv(location int32, m *float32)

	CreateBuffer(data []float32) uint32
	DeleteBuffer(buffer uint32)
	CreateVertexArray() uint32
	DeleteVertexArray(vao uint32)
	BindVertexArray(vao uint32)
	// VertexAttrib declares a float attribute sourced from buffer and enables it.
	// stride and offset are in bytes.
	VertexAttrib(vao, buffer, index uint32, size, stride int32, offset int)

	Enable(capability uint32)
	Disable(capability uint32)
	IsEnabled(capability uint32) bool
	DepthFunc(fn uint32)
	BlendFunc(src, dst uint32)
	CullFace(face uint32)
	FrontFace(winding uint32)

	ClearColor(r, g, b, a float32)
	Clear()
	Viewport(x, y, width, height int32)
	DrawArrays(mode uint32, first, count int32)
}
