package main

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/braheezy/arqr/config"
	"github.com/braheezy/arqr/model"
)

// Embed the sample model and the default shader pair.
//
//go:embed assets
var assetFiles embed.FS

const (
	defaultModel          = "model.obj"
	defaultVertexShader   = "shaders/vertex_shader.glsl"
	defaultFragmentShader = "shaders/fragment_shader.glsl"
)

func embeddedAssets() fs.FS {
	sub, err := fs.Sub(assetFiles, "assets")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}

// loadModel loads the configured model, or the embedded sample when no path
// is set.
func loadModel(cfg config.Model) (*model.Geometry, error) {
	fsys, name := embeddedAssets(), defaultModel
	if cfg.Path != "" {
		fsys, name = os.DirFS(filepath.Dir(cfg.Path)), filepath.Base(cfg.Path)
	}

	if cfg.Format == config.FormatOBJ {
		return model.LoadOBJFile(fsys, name)
	}
	return model.LoadFile(fsys, name)
}

// loadShaders returns the vertex and fragment sources.
func loadShaders(cfg config.Shaders) (string, string, error) {
	vertexSource, err := readSource(cfg.Vertex, defaultVertexShader)
	if err != nil {
		return "", "", err
	}
	fragmentSource, err := readSource(cfg.Fragment, defaultFragmentShader)
	if err != nil {
		return "", "", err
	}
	return vertexSource, fragmentSource, nil
}

func readSource(path, embedded string) (string, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = fs.ReadFile(embeddedAssets(), embedded)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
