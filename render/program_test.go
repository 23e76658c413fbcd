package render

import (
	"errors"
	"strings"
	"testing"
)

func TestNewProgram(t *testing.T) {
	gl := newFakeGL()
	p, err := NewProgram(gl, "vs", "fs")
	if err != nil {
		t.Fatalf("NewProgram failed: %v", err)
	}
	if !gl.programs[p.ID()] {
		t.Fatalf("program %d not alive", p.ID())
	}
	if len(gl.shaders) != 0 {
		t.Errorf("expected shader objects to be deleted, %d left", len(gl.shaders))
	}

	p.Delete()
	if len(gl.programs) != 0 {
		t.Errorf("expected program to be deleted")
	}
	// A second Delete must not touch GL again.
	p.Delete()
}

func TestNewProgramFailures(t *testing.T) {
	tests := []struct {
		name      string
		configure func(*fakeGL)
		stage     string
		log       string
	}{
		{"vertex", func(gl *fakeGL) { gl.vertexLog = "0:3: 'positon' : undeclared identifier" }, "vertex", "undeclared identifier"},
		{"fragment", func(gl *fakeGL) { gl.fragmentLog = "0:1: syntax error" }, "fragment", "syntax error"},
		{"link", func(gl *fakeGL) { gl.linkLog = "varying v_color not written" }, "link", "not written"},
	}

	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			gl := newFakeGL()
			c.configure(gl)

			_, err := NewProgram(gl, "vs", "fs")
			var serr *ShaderError
			if !errors.As(err, &serr) {
				t.Fatalf("expected *ShaderError, got %v", err)
			}
			if serr.Stage != c.stage {
				t.Errorf("expected stage %q, got %q", c.stage, serr.Stage)
			}
			if !strings.Contains(err.Error(), c.log) {
				t.Errorf("error %q does not carry log %q", err, c.log)
			}
			if strings.HasSuffix(serr.Log, "\n") {
				t.Errorf("log not trimmed: %q", serr.Log)
			}
			if len(gl.shaders) != 0 || len(gl.programs) != 0 {
				t.Errorf("leaked objects: %d shaders, %d programs", len(gl.shaders), len(gl.programs))
			}
		})
	}
}

func TestProgramLocations(t *testing.T) {
	gl := newFakeGL()
	gl.attribs["normal"] = 3
	gl.uniforms["tint"] = 7

	p, err := NewProgram(gl, "vs", "fs")
	if err != nil {
		t.Fatalf("NewProgram failed: %v", err)
	}

	if loc, err := p.Attrib("normal"); err != nil || loc != 3 {
		t.Errorf("Attrib(normal) = %d, %v", loc, err)
	}
	if loc, err := p.Uniform("tint"); err != nil || loc != 7 {
		t.Errorf("Uniform(tint) = %d, %v", loc, err)
	}
	if _, err := p.Attrib("uv"); !errors.Is(err, ErrMissingAttribute) {
		t.Errorf("expected ErrMissingAttribute, got %v", err)
	}
	if _, err := p.Uniform("model"); !errors.Is(err, ErrMissingUniform) {
		t.Errorf("expected ErrMissingUniform, got %v", err)
	}
}
