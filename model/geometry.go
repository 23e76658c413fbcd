// Package model loads the triangle geometry drawn on top of a tracked marker.
package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxVertices is the largest vertex count addressable by 16-bit indices.
const MaxVertices = math.MaxUint16 + 1

var (
	ErrEmptyModel      = errors.New("model has no vertices or faces")
	ErrIndexOutOfRange = errors.New("face index out of range")
	ErrTooManyVertices = errors.New("too many vertices for 16-bit indices")
)

// Geometry is a flat vertex buffer and a flat triangle index buffer, laid out
// the way the GPU consumes them.
type Geometry struct {
	// Vertices holds x, y, z for each vertex; vertex i is Vertices[3i:3i+3].
	Vertices []float32
	// Indices holds three 0-based vertex indices per triangle.
	Indices []uint16
}

func (g *Geometry) VertexCount() int {
	return len(g.Vertices) / 3
}

func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// Vertex returns the position of vertex i.
func (g *Geometry) Vertex(i int) mgl32.Vec3 {
	return mgl32.Vec3{g.Vertices[3*i], g.Vertices[3*i+1], g.Vertices[3*i+2]}
}

// Validate checks that the geometry can be drawn: it must be non-empty,
// addressable with uint16 indices and every index must name a vertex.
func (g *Geometry) Validate() error {
	if len(g.Vertices)%3 != 0 || len(g.Indices)%3 != 0 {
		return fmt.Errorf("malformed buffers: %d floats, %d indices", len(g.Vertices), len(g.Indices))
	}
	n := g.VertexCount()
	if n == 0 || len(g.Indices) == 0 {
		return ErrEmptyModel
	}
	if n > MaxVertices {
		return fmt.Errorf("%w: %d", ErrTooManyVertices, n)
	}
	for i, idx := range g.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: face %d references vertex %d, model has %d", ErrIndexOutOfRange, i/3+1, int(idx)+1, n)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of all vertices.
func (g *Geometry) Bounds() (lo, hi mgl32.Vec3) {
	if g.VertexCount() == 0 {
		return
	}
	lo = g.Vertex(0)
	hi = lo
	for i := 1; i < g.VertexCount(); i++ {
		v := g.Vertex(i)
		for axis := 0; axis < 3; axis++ {
			lo[axis] = min(lo[axis], v[axis])
			hi[axis] = max(hi[axis], v[axis])
		}
	}
	return lo, hi
}
