package model

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/udhos/gwob"
)

// LoadOBJ reads a full Wavefront OBJ file (normals, texture coordinates,
// groups, polygon faces) and keeps only what the renderer draws: positions
// and the triangle list.
func LoadOBJ(name string, r io.Reader) (*Geometry, error) {
	obj, err := gwob.NewObjFromReader(name, r, &gwob.ObjParserOptions{IgnoreNormals: true})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	// Coord is interleaved; StrideSize and the offsets are in bytes.
	stride := obj.StrideSize / 4
	offset := obj.StrideOffsetPosition / 4
	if stride < offset+3 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyModel)
	}
	count := len(obj.Coord) / stride
	if count > MaxVertices {
		return nil, fmt.Errorf("%s: %w: %d", name, ErrTooManyVertices, count)
	}

	g := &Geometry{
		Vertices: make([]float32, 0, 3*count),
		Indices:  make([]uint16, 0, len(obj.Indices)),
	}
	for i := 0; i < count; i++ {
		base := i*stride + offset
		g.Vertices = append(g.Vertices, obj.Coord[base], obj.Coord[base+1], obj.Coord[base+2])
	}
	for _, idx := range obj.Indices {
		if idx < 0 || idx >= count {
			return nil, fmt.Errorf("%s: %w: %d", name, ErrIndexOutOfRange, idx)
		}
		g.Indices = append(g.Indices, uint16(idx))
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return g, nil
}

// LoadOBJFile opens name in fsys and loads it with LoadOBJ.
func LoadOBJFile(fsys fs.FS, name string) (*Geometry, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadOBJ(name, f)
}
