package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/reentry/geometry"
)

// ErrOBJSyntax is returned for malformed OBJ records.
var ErrOBJSyntax = errors.New("mesh: malformed OBJ record")

const (
	objVertex = "v"
	objNormal = "vn"
	objFace   = "f"
)

// OBJ is the result of reading a Wavefront OBJ file.
type OBJ struct {
	Mesh    *Mesh
	Normals []geometry.Point
	// Faces keeps every face as written (0-based, before triangulation).
	Faces [][]int
}

// ReadOBJFile opens path and reads it with ReadOBJ.
func ReadOBJFile(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	obj, err := ReadOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return obj, nil
}

// ReadOBJ parses v, vn and f records. Face corners may be written as
// "i", "i/t", "i//n" or "i/t/n"; only the position index is used, and
// negative indices count back from the last vertex read so far. Faces with
// more than three corners are fan-triangulated around their first corner.
// Other record types (vt, o, g, s, usemtl, comments) are ignored.
//
// Complexity: O(file size + N²) (the adjacency is dense).
func ReadOBJ(r io.Reader) (*OBJ, error) {
	var (
		points    []geometry.Point
		normals   []geometry.Point
		faces     [][]int
		triangles []Triangle
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case objVertex, objNormal:
			p, err := parseVec(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if fields[0] == objVertex {
				points = append(points, p)
			} else {
				normals = append(normals, p)
			}

		case objFace:
			face, err := parseFace(fields[1:], len(points))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			faces = append(faces, face)
			for k := 1; k+1 < len(face); k++ {
				triangles = append(triangles, Triangle{face[0], face[k], face[k+1]})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	m, err := FromTriangles(points, triangles)
	if err != nil {
		return nil, err
	}

	return &OBJ{Mesh: m, Normals: normals, Faces: faces}, nil
}

// parseVec reads the first three fields as coordinates (a w component is ignored).
func parseVec(fields []string) (geometry.Point, error) {
	if len(fields) < 3 {
		return geometry.Point{}, fmt.Errorf("want 3 coordinates, got %d: %w", len(fields), ErrOBJSyntax)
	}

	var xyz [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return geometry.Point{}, fmt.Errorf("coordinate %q: %w", fields[i], ErrOBJSyntax)
		}
		xyz[i] = v
	}

	return geometry.NewPoint(xyz[0], xyz[1], xyz[2]), nil
}

// parseFace converts face corners into 0-based point indices.
func parseFace(fields []string, nPoints int) ([]int, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face needs 3 corners, got %d: %w", len(fields), ErrOBJSyntax)
	}

	face := make([]int, len(fields))
	for i, corner := range fields {
		head, _, _ := strings.Cut(corner, "/")
		idx, err := strconv.Atoi(head)
		if err != nil || idx == 0 {
			return nil, fmt.Errorf("face corner %q: %w", corner, ErrOBJSyntax)
		}
		if idx < 0 {
			idx = nPoints + idx // -1 is the last vertex
		} else {
			idx-- // OBJ is 1-based
		}
		if idx < 0 || idx >= nPoints {
			return nil, fmt.Errorf("face corner %q refers to vertex %d of %d: %w",
				corner, idx+1, nPoints, ErrTriangleIndex)
		}
		face[i] = idx
	}

	return face, nil
}
