// Package renderer draws the picking scene with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/boxpick/internal/engine/debug"
	"github.com/Faultbox/boxpick/internal/engine/lighting"
	"github.com/Faultbox/boxpick/internal/engine/picking"
	"github.com/Faultbox/boxpick/internal/engine/shader"
	"github.com/Faultbox/boxpick/internal/interaction"
	"github.com/Faultbox/boxpick/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width    int
	Height   int
	GridSize int
	Sun      lighting.Sun
}

// mesh is one uploaded vertex buffer with two vec3 attributes.
type mesh struct {
	vao, vbo uint32
	count    int32
}

// Renderer draws the ground grid, one cube per scene object and an outline
// around the selected object.
type Renderer struct {
	config Config
	log    *zap.Logger

	solid *shader.Program
	lines *shader.Program

	cubes      mesh
	wireframes mesh
	grid       mesh
	objects    int
}

// New creates a renderer for a fixed set of scene objects.
// Must be called after the OpenGL context is created.
func New(cfg Config, objects []picking.SceneObject) (*Renderer, error) {
	r := &Renderer{
		config:  cfg,
		log:     logger.Named("renderer"),
		objects: len(objects),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.solid, err = shader.Compile(solidVertexShader, solidFragmentShader,
		"uViewProj", "uColor", "uLightDir", "uAmbient", "uDiffuse")
	if err != nil {
		return nil, fmt.Errorf("solid shader: %w", err)
	}

	r.lines, err = shader.Compile(lineVertexShader, lineFragmentShader, "uViewProj")
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	geo := buildSceneGeometry(objects, cfg.GridSize)
	r.cubes = upload(geo.cubes)
	r.wireframes = upload(geo.wireframes)
	r.grid = upload(geo.grid)

	r.log.Debug("scene uploaded",
		zap.Int("objects", len(objects)),
		zap.Int32("grid_vertices", r.grid.count),
	)
	return r, nil
}

// upload creates a VAO over interleaved [vec3, vec3] vertices.
func upload(vertices []float32) mesh {
	var m mesh
	if len(vertices) == 0 {
		return m
	}
	m.count = int32(len(vertices) / 6)

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

func (m *mesh) release() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	*m = mesh{}
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.cubes.release()
	r.wireframes.release()
	r.grid.release()
	r.solid.Delete()
	r.lines.Delete()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Render draws one frame from the session's read-only view.
func (r *Renderer) Render(view interaction.View) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	proj := view.ProjectionMatrix()
	viewProj := proj.Mul(view.ViewMatrix())
	selected, hasSelection := view.SelectedIndex()

	// Grid
	r.lines.Use()
	gl.UniformMatrix4fv(r.lines.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	if r.grid.count > 0 {
		gl.BindVertexArray(r.grid.vao)
		gl.DrawArrays(gl.LINES, 0, r.grid.count)
	}

	// Cubes
	if r.cubes.count > 0 {
		sun := r.config.Sun
		dir := sun.Direction()

		locColor := r.solid.Uniform("uColor")

		r.solid.Use()
		gl.UniformMatrix4fv(r.solid.Uniform("uViewProj"), 1, false, viewProj.Ptr())
		gl.Uniform3f(r.solid.Uniform("uLightDir"), dir.X, dir.Y, dir.Z)
		gl.Uniform3fv(r.solid.Uniform("uAmbient"), 1, &sun.Ambient[0])
		gl.Uniform3fv(r.solid.Uniform("uDiffuse"), 1, &sun.Diffuse[0])

		gl.BindVertexArray(r.cubes.vao)
		for i := 0; i < r.objects; i++ {
			c := BoxColor(i, hasSelection && i == selected)
			gl.Uniform3f(locColor, c[0], c[1], c[2])
			gl.DrawArrays(gl.TRIANGLES, int32(i*CubeVertexCount), CubeVertexCount)
		}
	}

	// Selection outline
	if hasSelection && selected >= 0 && selected < r.objects {
		r.lines.Use()
		gl.BindVertexArray(r.wireframes.vao)
		gl.DrawArrays(gl.LINES, int32(selected*debug.BBoxWireframeVertexCount), debug.BBoxWireframeVertexCount)
	}

	gl.BindVertexArray(0)
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
