// Package anatomical finds anatomical reentries: closed walks along the
// holes of a triangulated surface.
//
// An edge u–v lies on a hole when fewer than two triangles contain both u
// and v. Find runs one depth-first walk per start vertex that follows only
// such boundary edges of mesh provenance (adjacency entry exactly 1) and
// never steps straight back to the predecessor. Reaching a vertex already
// on the walk closes it: the walk plus that vertex is recorded and the
// branch that closed it stops exploring further neighbours.
//
// Geometry and conduction velocity play no part. A closed surface (every
// edge shared by two triangles) yields no paths.
//
// Complexity:
//
//   - Time:   O(N · B) in practice, B = boundary edges reachable from a start
//   - Memory: O(N) for the walk stack plus the recorded paths
package anatomical

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/reentry/cycle"
	"github.com/katalvlaran/reentry/mesh"
)

// ErrNilMesh is returned when Find or Detect receive a nil mesh.
var ErrNilMesh = errors.New("anatomical: mesh is nil")

// Option configures Find and Detect.
type Option func(*Options)

// Options holds the finder settings.
type Options struct {
	// Logger receives per-start progress at Debug level. Defaults to a
	// logger that discards everything.
	Logger logrus.FieldLogger
}

// DefaultOptions returns silent settings.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l}
}

// WithLogger routes progress messages to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// walker holds the state of one Find call.
type walker struct {
	ctx   context.Context
	mesh  *mesh.Mesh
	inc   *mesh.Incidence
	onWay []bool // membership of the current walk
	walk  []int
	found [][]int
}

// Find returns every raw boundary cycle, start vertex by start vertex,
// in discovery order. The same hole is usually found from several starts;
// Detect removes those repeats.
//
// Errors: ErrNilMesh, ctx.Err() on cancellation.
func Find(ctx context.Context, m *mesh.Mesh, opts ...Option) ([][]int, error) {
	// 1) Validate input and resolve options
	if m == nil || m.Adjacency == nil {
		return nil, ErrNilMesh
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := m.Len()
	inc := m.Incidence()
	if inc == nil {
		var err error
		if inc, err = mesh.NewIncidence(n, m.Triangles); err != nil {
			return nil, fmt.Errorf("anatomical: %w", err)
		}
	}
	w := &walker{
		ctx:   ctx,
		mesh:  m,
		inc:   inc,
		onWay: make([]bool, n),
		walk:  make([]int, 0, n),
	}

	// 2) One walk per start vertex; the recorded list grows across starts
	for start := 0; start < n; start++ {
		before := len(w.found)
		if err := w.visit(start, -1); err != nil {
			return nil, fmt.Errorf("anatomical: start %d: %w", start, err)
		}
		o.Logger.WithFields(logrus.Fields{
			"start": start,
			"of":    n,
			"found": len(w.found) - before,
		}).Debug("anatomical start done")
	}

	return w.found, nil
}

// Detect is Find followed by cycle.Dedup: one path per hole, first
// discovery kept.
func Detect(ctx context.Context, m *mesh.Mesh, opts ...Option) ([][]int, error) {
	raw, err := Find(ctx, m, opts...)
	if err != nil {
		return nil, err
	}

	return cycle.Dedup(raw), nil
}

// visit pushes u and follows its boundary edges. Closing a cycle ends this
// call only; the caller keeps exploring its own remaining neighbours.
func (w *walker) visit(u, prev int) error {
	// 1) Cancellation check
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}

	// 2) Push
	w.walk = append(w.walk, u)
	w.onWay[u] = true
	defer func() {
		w.walk = w.walk[:len(w.walk)-1]
		w.onWay[u] = false
	}()

	nbrs, err := w.mesh.Adjacency.MeshNeighbors(u)
	if err != nil {
		return err
	}

	// 3) Follow boundary edges only
	for _, v := range nbrs {
		if v == prev || !w.inc.IsBoundaryEdge(u, v) {
			continue
		}
		if w.onWay[v] {
			// closed: record walk+v and stop this branch
			closed := make([]int, len(w.walk)+1)
			copy(closed, w.walk)
			closed[len(w.walk)] = v
			w.found = append(w.found, closed)

			return nil
		}
		if err = w.visit(v, u); err != nil {
			return err
		}
	}

	return nil
}
