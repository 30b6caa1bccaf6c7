package clouds

import (
	"log"
	"path/filepath"
	"strings"

	"mini-clouds/internal/config"
	"mini-clouds/internal/graphics"
	renderer "mini-clouds/internal/graphics/renderer"
	"mini-clouds/internal/profiling"
)

const (
	VertShaderName = "clouds.vert"
	FragShaderName = "clouds.frag"

	// Vertex attribute names the shader is expected to declare
	PositionAttrib = "aPos"
	UVAttrib       = "uv"
)

// Quad layout: two triangles, position (3 floats) + uv (2 floats) interleaved.
const (
	FloatsPerVertex = 5
	QuadVertexCount = 6
	VertexStride    = FloatsPerVertex * 4 // bytes
	PositionOffset  = 0                   // bytes
	UVOffset        = 3 * 4               // bytes

	// The cloud plane is placed independently of the camera eye.
	QuadHeight     = 100.5
	QuadHalfExtent = 100.0
)

// QuadVertices is the constant cloud plane mesh
var QuadVertices = quadVertices(QuadHeight, QuadHalfExtent)

func quadVertices(y, h float32) []float32 {
	return []float32{
		-h, y, -h, 0.0, 1.0,
		-h, y, h, 0.0, 0.0,
		h, y, h, 1.0, 0.0,

		h, y, h, 1.0, 0.0,
		h, y, -h, 1.0, 1.0,
		-h, y, -h, 0.0, 1.0,
	}
}

type uploadState int

const (
	// uninitialized: no buffer or vertex array exists yet
	uninitialized uploadState = iota
	// ready: mesh uploaded and attributes declared; every frame takes the fast path
	ready
)

// Clouds implements the double-sided cloud plane. The program is compiled in
// Init; the mesh is uploaded on the first Render and reused until Dispose.
type Clouds struct {
	dev      graphics.Device
	vertPath string
	fragPath string

	shader *graphics.Shader
	state  uploadState
	vao    uint32
	vbo    uint32
}

// NewClouds creates a cloud renderable loading clouds.vert/clouds.frag from shaderDir
func NewClouds(dev graphics.Device, shaderDir string) *Clouds {
	return &Clouds{
		dev:      dev,
		vertPath: filepath.Join(shaderDir, VertShaderName),
		fragPath: filepath.Join(shaderDir, FragShaderName),
		state:    uninitialized,
	}
}

// Init compiles the cloud program. A failure here is fatal for startup.
func (c *Clouds) Init() error {
	var err error
	c.shader, err = graphics.NewShader(c.dev, c.vertPath, c.fragPath)
	if err != nil {
		return err
	}

	if missing := missingUniforms(c.shader); len(missing) > 0 {
		log.Printf("clouds: shader does not use %s; those writes are skipped", strings.Join(missing, ", "))
	}
	return nil
}

// Render draws the cloud plane with uniforms taken from the frame context
func (c *Clouds) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderClouds")()

	c.shader.Use()
	if c.state == uninitialized {
		c.upload()
	}
	c.dev.BindVertexArray(c.vao)

	bindUniforms(c.shader, &frameInputs{
		camera:  ctx.Camera,
		elapsed: ctx.Elapsed,
		params:  config.GetCloudParams(),
	})

	// The plane is seen from both sides; restore culling for whatever draws next
	culling := c.dev.IsEnabled(graphics.CapCullFace)
	if culling {
		c.dev.Disable(graphics.CapCullFace)
	}
	c.dev.DrawArrays(graphics.ModeTriangles, 0, QuadVertexCount)
	if culling {
		c.dev.Enable(graphics.CapCullFace)
	}
}

// upload creates the vertex array and buffer and declares both attributes.
// Runs once, on the render thread.
func (c *Clouds) upload() {
	c.vao = c.dev.CreateVertexArray()
	c.vbo = c.dev.CreateBuffer(QuadVertices)

	pos := attribIndex(c.shader, PositionAttrib, 0)
	uv := attribIndex(c.shader, UVAttrib, 1)
	c.dev.VertexAttrib(c.vao, c.vbo, pos, 3, VertexStride, PositionOffset)
	c.dev.VertexAttrib(c.vao, c.vbo, uv, 2, VertexStride, UVOffset)

	c.state = ready
}

// attribIndex resolves an attribute by name, falling back to a fixed layout
// location when the linker did not keep it
func attribIndex(s *graphics.Shader, name string, fallback uint32) uint32 {
	loc := s.AttribLocation(name)
	if loc < 0 {
		return fallback
	}
	return uint32(loc)
}

// Uploaded reports whether the mesh has been sent to the GPU
func (c *Clouds) Uploaded() bool {
	return c.state == ready
}

// Dispose cleans up GPU resources. The renderable must not be used afterwards.
func (c *Clouds) Dispose() {
	if c.vbo != 0 {
		c.dev.DeleteBuffer(c.vbo)
		c.vbo = 0
	}
	if c.vao != 0 {
		c.dev.DeleteVertexArray(c.vao)
		c.vao = 0
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}

// SetViewport is a no-op: the projection lives in the camera
func (c *Clouds) SetViewport(width, height int) {}
