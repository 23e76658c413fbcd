package render

import (
	"github.com/braheezy/arqr/model"
	"github.com/go-gl/mathgl/mgl32"
)

// Names the shader pair must expose.
const (
	PositionAttrib = "position"
	MatrixUniform  = "matrix"
)

// Combine returns projection × view. mgl32 matrices are column-major, the
// layout UniformMatrix4fv expects with transpose=false.
func Combine(projection, view mgl32.Mat4) mgl32.Mat4 {
	return projection.Mul4(view)
}

// Renderer owns the program and GPU buffers for one model and draws it
// once per Render call. It is not safe for concurrent use.
type Renderer struct {
	gl      GL
	program *Program

	vbo, ebo   uint32
	indexCount int32

	position uint32
	matrix   int32
}

// NewRenderer compiles the shaders and uploads geometry. The geometry is
// validated first; nothing is created on the GPU for invalid input.
func NewRenderer(gl GL, geometry *model.Geometry, vertexSource, fragmentSource string) (*Renderer, error) {
	if err := geometry.Validate(); err != nil {
		return nil, err
	}

	program, err := NewProgram(gl, vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	position, err := program.Attrib(PositionAttrib)
	if err != nil {
		program.Delete()
		return nil, err
	}
	matrix, err := program.Uniform(MatrixUniform)
	if err != nil {
		program.Delete()
		return nil, err
	}

	r := &Renderer{
		gl:         gl,
		program:    program,
		indexCount: int32(len(geometry.Indices)),
		position:   position,
		matrix:     matrix,
	}
	r.upload(geometry)
	return r, nil
}

func (r *Renderer) upload(geometry *model.Geometry) {
	var prevArray, prevElement int32
	r.gl.GetIntegerv(ArrayBufferBinding, &prevArray)
	r.gl.GetIntegerv(ElementArrayBufferBinding, &prevElement)

	r.gl.GenBuffers(1, &r.vbo)
	r.gl.GenBuffers(1, &r.ebo)

	r.gl.BindBuffer(ArrayBuffer, r.vbo)
	r.gl.BufferData(ArrayBuffer, geometry.Vertices, StaticDraw)
	r.gl.BindBuffer(ElementArrayBuffer, r.ebo)
	r.gl.BufferData(ElementArrayBuffer, geometry.Indices, StaticDraw)

	r.gl.BindBuffer(ArrayBuffer, uint32(prevArray))
	r.gl.BindBuffer(ElementArrayBuffer, uint32(prevElement))
}

// Render draws the model with projection × view. viewport is the size of
// the surface being drawn to; the caller owns the GL viewport, so it is not
// used here.
//
// The current program and the array and element array buffer bindings are
// restored, and the position attribute array is disabled again afterwards.
// The attribute pointer for the position index is left aimed at this
// renderer's vertex buffer; callers enabling that index must set their own
// pointer first.
func (r *Renderer) Render(projection, view mgl32.Mat4, viewport mgl32.Vec2) {
	if r.program == nil {
		return
	}
	combined := Combine(projection, view)

	// Querying state each frame costs a driver round trip; accepted so that
	// several renderers can share a context.
	var prevProgram, prevArray, prevElement int32
	r.gl.GetIntegerv(CurrentProgram, &prevProgram)
	r.gl.GetIntegerv(ArrayBufferBinding, &prevArray)
	r.gl.GetIntegerv(ElementArrayBufferBinding, &prevElement)

	r.gl.UseProgram(r.program.ID())

	r.gl.BindBuffer(ArrayBuffer, r.vbo)
	r.gl.EnableVertexAttribArray(r.position)
	r.gl.VertexAttribPointer(r.position, 3, Float, false, 3*4, 0)

	r.gl.UniformMatrix4fv(r.matrix, 1, false, &combined[0])

	r.gl.BindBuffer(ElementArrayBuffer, r.ebo)
	r.gl.DrawElements(Triangles, r.indexCount, UnsignedShort, 0)

	r.gl.DisableVertexAttribArray(r.position)
	r.gl.BindBuffer(ElementArrayBuffer, uint32(prevElement))
	r.gl.BindBuffer(ArrayBuffer, uint32(prevArray))
	r.gl.UseProgram(uint32(prevProgram))
}

// IndexCount is the number of indices drawn per Render call.
func (r *Renderer) IndexCount() int {
	return int(r.indexCount)
}

// Delete releases the program and buffers. Render is a no-op afterwards.
func (r *Renderer) Delete() {
	if r.program == nil {
		return
	}
	buffers := []uint32{r.vbo, r.ebo}
	r.gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	r.program.Delete()
	r.program = nil
	r.vbo, r.ebo = 0, 0
}
