package render

import (
	"fmt"
	"unsafe"
)

type drawCall struct {
	mode    uint32
	count   int32
	xtype   uint32
	program uint32
	matrix  [16]float32
	array   uint32
	element uint32
	enabled []uint32
}

// fakeGL is an in-memory GL that tracks object lifetimes and the bits of
// global state the renderer touches.
type fakeGL struct {
	// Non-empty logs make the matching stage fail.
	vertexLog, fragmentLog, linkLog string

	attribs  map[string]int32
	uniforms map[string]int32

	nextID   uint32
	shaders  map[uint32]uint32 // id -> kind
	programs map[uint32]bool
	buffers  map[uint32]any

	currentProgram uint32
	boundArray     uint32
	boundElement   uint32
	enabled        map[uint32]bool
	attribPointers map[uint32]int32 // index -> components
	uniformValues  map[int32][16]float32

	draws []drawCall
	calls []string
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		attribs:        map[string]int32{"position": 0},
		uniforms:       map[string]int32{"matrix": 0},
		nextID:         1,
		shaders:        map[uint32]uint32{},
		programs:       map[uint32]bool{},
		buffers:        map[uint32]any{},
		enabled:        map[uint32]bool{},
		attribPointers: map[uint32]int32{},
		uniformValues:  map[int32][16]float32{},
	}
}

func (f *fakeGL) id() uint32 {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeGL) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGL) CreateShader(kind uint32) uint32 {
	id := f.id()
	f.shaders[id] = kind
	return id
}

func (f *fakeGL) ShaderSource(shader uint32, src string) {}
func (f *fakeGL) CompileShader(shader uint32)            { f.record("CompileShader") }

func (f *fakeGL) shaderLog(shader uint32) string {
	if f.shaders[shader] == VertexShader {
		return f.vertexLog
	}
	return f.fragmentLog
}

func (f *fakeGL) GetShaderiv(shader uint32, pname uint32, params *int32) {
	*params = True
	if pname == CompileStatus && f.shaderLog(shader) != "" {
		*params = False
	}
}

func (f *fakeGL) GetShaderInfoLog(shader uint32) string { return f.shaderLog(shader) + "\n" }
func (f *fakeGL) DeleteShader(shader uint32)            { delete(f.shaders, shader) }

func (f *fakeGL) CreateProgram() uint32 {
	id := f.id()
	f.programs[id] = true
	return id
}

func (f *fakeGL) AttachShader(program, shader uint32) {}
func (f *fakeGL) LinkProgram(program uint32)          { f.record("LinkProgram") }

func (f *fakeGL) GetProgramiv(program uint32, pname uint32, params *int32) {
	*params = True
	if pname == LinkStatus && f.linkLog != "" {
		*params = False
	}
}

func (f *fakeGL) GetProgramInfoLog(program uint32) string { return f.linkLog }
func (f *fakeGL) DeleteProgram(program uint32)            { delete(f.programs, program) }

func (f *fakeGL) UseProgram(program uint32) {
	f.record("UseProgram %d", program)
	f.currentProgram = program
}

func (f *fakeGL) GetAttribLocation(program uint32, name string) int32 {
	if loc, ok := f.attribs[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeGL) GetUniformLocation(program uint32, name string) int32 {
	if loc, ok := f.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeGL) GetIntegerv(pname uint32, data *int32) {
	switch pname {
	case CurrentProgram:
		*data = int32(f.currentProgram)
	case ArrayBufferBinding:
		*data = int32(f.boundArray)
	case ElementArrayBufferBinding:
		*data = int32(f.boundElement)
	}
}

func (f *fakeGL) GenBuffers(n int32, buffers *uint32) {
	id := f.id()
	f.buffers[id] = nil
	*buffers = id
}

func (f *fakeGL) DeleteBuffers(n int32, buffers *uint32) {
	ids := unsafe.Slice(buffers, int(n))
	for _, id := range ids {
		delete(f.buffers, id)
	}
}

func (f *fakeGL) BindBuffer(target, buffer uint32) {
	switch target {
	case ArrayBuffer:
		f.boundArray = buffer
	case ElementArrayBuffer:
		f.boundElement = buffer
	}
}

func (f *fakeGL) BufferData(target uint32, data any, usage uint32) {
	switch target {
	case ArrayBuffer:
		f.buffers[f.boundArray] = data
	case ElementArrayBuffer:
		f.buffers[f.boundElement] = data
	}
}

func (f *fakeGL) EnableVertexAttribArray(index uint32)  { f.enabled[index] = true }
func (f *fakeGL) DisableVertexAttribArray(index uint32) { delete(f.enabled, index) }

func (f *fakeGL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	f.attribPointers[index] = size
}

func (f *fakeGL) UniformMatrix4fv(location int32, count int32, transpose bool, value *float32) {
	f.uniformValues[location] = [16]float32(unsafe.Slice(value, 16))
}

func (f *fakeGL) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	var enabled []uint32
	for index := range f.enabled {
		enabled = append(enabled, index)
	}
	f.draws = append(f.draws, drawCall{
		mode:    mode,
		count:   count,
		xtype:   xtype,
		program: f.currentProgram,
		matrix:  f.uniformValues[f.uniforms["matrix"]],
		array:   f.boundArray,
		element: f.boundElement,
		enabled: enabled,
	})
}
