package render

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingAttribute = errors.New("attribute not active in program")
	ErrMissingUniform   = errors.New("uniform not active in program")
)

// ShaderError carries the compiler or linker log of a failed stage.
type ShaderError struct {
	// Stage is "vertex", "fragment" or "link".
	Stage string
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("failed to link shader program: %s", e.Log)
	}
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// Program is a linked vertex + fragment shader pair.
type Program struct {
	gl GL
	id uint32
}

// NewProgram compiles both stages and links them. Any compile or link
// failure is returned as a *ShaderError and leaves no GL objects behind.
func NewProgram(gl GL, vertexSource, fragmentSource string) (*Program, error) {
	vertexShader, err := compileShader(gl, VertexShader, "vertex", vertexSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(gl, FragmentShader, "fragment", fragmentSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)

	id := gl.CreateProgram()
	gl.AttachShader(id, vertexShader)
	gl.AttachShader(id, fragmentShader)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, LinkStatus, &status)
	if status == False {
		log := gl.GetProgramInfoLog(id)
		gl.DeleteProgram(id)
		return nil, &ShaderError{Stage: "link", Log: strings.TrimSpace(log)}
	}

	return &Program{gl: gl, id: id}, nil
}

func compileShader(gl GL, kind uint32, stage, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	gl.ShaderSource(shader, source)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, CompileStatus, &status)
	if status == False {
		log := gl.GetShaderInfoLog(shader)
		gl.DeleteShader(shader)
		return 0, &ShaderError{Stage: stage, Log: strings.TrimSpace(log)}
	}
	return shader, nil
}

func (p *Program) ID() uint32 {
	return p.id
}

// Attrib returns the location of a vertex attribute, failing when the
// linker dropped or never saw it.
func (p *Program) Attrib(name string) (uint32, error) {
	loc := p.gl.GetAttribLocation(p.id, name)
	if loc < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMissingAttribute, name)
	}
	return uint32(loc), nil
}

func (p *Program) Uniform(name string) (int32, error) {
	loc := p.gl.GetUniformLocation(p.id, name)
	if loc < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMissingUniform, name)
	}
	return loc, nil
}

func (p *Program) Delete() {
	if p.id != 0 {
		p.gl.DeleteProgram(p.id)
		p.id = 0
	}
}
