// Package render draws a loaded model with a single shader program.
//
// All drawing goes through the GL interface so the package does not depend
// on a particular binding; render/gles provides the OpenGL ES 2.0 one.
package render

// GL is the subset of OpenGL ES 2.0 used by the renderer. Strings are plain
// Go strings; implementations handle NUL termination.
type GL interface {
	CreateShader(kind uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32, params *int32)
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32, params *int32)
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32

	GetIntegerv(pname uint32, data *int32)

	GenBuffers(n int32, buffers *uint32)
	DeleteBuffers(n int32, buffers *uint32)
	BindBuffer(target, buffer uint32)
	// BufferData copies data, which must be a []float32 or []uint16.
	BufferData(target uint32, data any, usage uint32)

	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)
	UniformMatrix4fv(location int32, count int32, transpose bool, value *float32)
	DrawElements(mode uint32, count int32, xtype uint32, offset int)
}

// OpenGL ES 2.0 enum values.
const (
	False = 0
	True  = 1

	Triangles     = 0x0004
	UnsignedShort = 0x1403
	Float         = 0x1406

	ArrayBuffer               = 0x8892
	ElementArrayBuffer        = 0x8893
	ArrayBufferBinding        = 0x8894
	ElementArrayBufferBinding = 0x8895
	StaticDraw                = 0x88E4

	FragmentShader = 0x8B30
	VertexShader   = 0x8B31
	CompileStatus  = 0x8B81
	LinkStatus     = 0x8B82
	CurrentProgram = 0x8B8D
)
