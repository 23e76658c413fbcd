// Package gles implements render.GL on top of the go-gl OpenGL ES 2.0
// bindings. A context must be current on the calling thread.
package gles

import (
	"fmt"
	"strings"

	"github.com/braheezy/arqr/render"
	"github.com/go-gl/gl/v3.1/gles2"
)

// Context forwards render.GL calls to the current GLES context.
type Context struct{}

var _ render.GL = Context{}

// Init loads the GLES function pointers. Call it after making a context
// current.
func Init() error {
	if err := gles2.Init(); err != nil {
		return fmt.Errorf("loading GLES functions: %w", err)
	}
	return nil
}

// Version returns the GL_VERSION string of the current context.
func Version() string {
	return gles2.GoStr(gles2.GetString(gles2.VERSION))
}

func (Context) CreateShader(kind uint32) uint32 {
	return gles2.CreateShader(kind)
}

func (Context) ShaderSource(shader uint32, src string) {
	// Source must be a null-terminated string in C flavor.
	csource, free := gles2.Strs(src + "\x00")
	defer free()
	gles2.ShaderSource(shader, 1, csource, nil)
}

func (Context) CompileShader(shader uint32) {
	gles2.CompileShader(shader)
}

func (Context) GetShaderiv(shader uint32, pname uint32, params *int32) {
	gles2.GetShaderiv(shader, pname, params)
}

func (Context) GetShaderInfoLog(shader uint32) string {
	var length int32
	gles2.GetShaderiv(shader, gles2.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	gles2.GetShaderInfoLog(shader, length, nil, gles2.Str(log))
	return gles2.GoStr(gles2.Str(log))
}

func (Context) DeleteShader(shader uint32) {
	gles2.DeleteShader(shader)
}

func (Context) CreateProgram() uint32 {
	return gles2.CreateProgram()
}

func (Context) AttachShader(program, shader uint32) {
	gles2.AttachShader(program, shader)
}

func (Context) LinkProgram(program uint32) {
	gles2.LinkProgram(program)
}

func (Context) GetProgramiv(program uint32, pname uint32, params *int32) {
	gles2.GetProgramiv(program, pname, params)
}

func (Context) GetProgramInfoLog(program uint32) string {
	var length int32
	gles2.GetProgramiv(program, gles2.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	gles2.GetProgramInfoLog(program, length, nil, gles2.Str(log))
	return gles2.GoStr(gles2.Str(log))
}

func (Context) DeleteProgram(program uint32) {
	gles2.DeleteProgram(program)
}

func (Context) UseProgram(program uint32) {
	gles2.UseProgram(program)
}

func (Context) GetAttribLocation(program uint32, name string) int32 {
	return gles2.GetAttribLocation(program, gles2.Str(name+"\x00"))
}

func (Context) GetUniformLocation(program uint32, name string) int32 {
	return gles2.GetUniformLocation(program, gles2.Str(name+"\x00"))
}

func (Context) GetIntegerv(pname uint32, data *int32) {
	gles2.GetIntegerv(pname, data)
}

func (Context) GenBuffers(n int32, buffers *uint32) {
	gles2.GenBuffers(n, buffers)
}

func (Context) DeleteBuffers(n int32, buffers *uint32) {
	gles2.DeleteBuffers(n, buffers)
}

func (Context) BindBuffer(target, buffer uint32) {
	gles2.BindBuffer(target, buffer)
}

func (Context) BufferData(target uint32, data any, usage uint32) {
	switch d := data.(type) {
	case []float32:
		gles2.BufferData(target, len(d)*4, gles2.Ptr(d), usage)
	case []uint16:
		gles2.BufferData(target, len(d)*2, gles2.Ptr(d), usage)
	default:
		panic(fmt.Sprintf("gles: unsupported buffer data %T", data))
	}
}

func (Context) EnableVertexAttribArray(index uint32) {
	gles2.EnableVertexAttribArray(index)
}

func (Context) DisableVertexAttribArray(index uint32) {
	gles2.DisableVertexAttribArray(index)
}

func (Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gles2.VertexAttribPointer(index, size, xtype, normalized, stride, gles2.PtrOffset(offset))
}

func (Context) UniformMatrix4fv(location int32, count int32, transpose bool, value *float32) {
	gles2.UniformMatrix4fv(location, count, transpose, value)
}

func (Context) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	gles2.DrawElements(mode, count, xtype, gles2.PtrOffset(offset))
}
