package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strconv"
	"strings"
)

// ParseError reports a malformed vertex or face line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	errFieldCount = errors.New("expected exactly 3 fields")
	errNonFinite  = errors.New("coordinate is not finite")
)

// Load reads the line-oriented model format:
//
//	v x y z      vertex, three floats
//	f i1 i2 i3   triangle, three 1-based vertex indices
//
// Every other line is ignored. The returned geometry has already been
// validated.
func Load(r io.Reader) (*Geometry, error) {
	g := &Geometry{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		var err error
		switch {
		case strings.HasPrefix(line, "v "):
			err = g.parseVertex(line[2:])
		case strings.HasPrefix(line, "f "):
			err = g.parseFace(line[2:])
		default:
			continue
		}
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading model: %w", err)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// LoadFile loads the model stored under name in fsys.
func LoadFile(fsys fs.FS, name string) (*Geometry, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return g, nil
}

func (g *Geometry) parseVertex(rest string) error {
	fields := strings.Fields(rest)
	if len(fields) != 3 {
		return fmt.Errorf("vertex: %w, got %d", errFieldCount, len(fields))
	}
	var v [3]float32
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return fmt.Errorf("vertex coordinate %d: %w", i+1, err)
		}
		// ParseFloat accepts "NaN" and "Inf" spellings.
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("vertex coordinate %d: %w", i+1, errNonFinite)
		}
		v[i] = float32(f)
	}
	g.Vertices = append(g.Vertices, v[:]...)
	return nil
}

func (g *Geometry) parseFace(rest string) error {
	fields := strings.Fields(rest)
	if len(fields) != 3 {
		return fmt.Errorf("face: %w, got %d", errFieldCount, len(fields))
	}
	var face [3]uint16
	for i, field := range fields {
		idx, err := strconv.Atoi(field)
		if err != nil {
			return fmt.Errorf("face index %d: %w", i+1, err)
		}
		// Indices in the file start at 1.
		if idx < 1 || idx > MaxVertices {
			return fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
		}
		face[i] = uint16(idx - 1)
	}
	g.Indices = append(g.Indices, face[:]...)
	return nil
}
