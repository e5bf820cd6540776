package functional

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/reentry/cost"
	"github.com/katalvlaran/reentry/cycle"
	"github.com/katalvlaran/reentry/geometry"
	"github.com/katalvlaran/reentry/matrix"
	"github.com/katalvlaran/reentry/mesh"
	"github.com/katalvlaran/reentry/velocity"
)

// searcher holds the read-only inputs shared by every worker.
type searcher struct {
	points []geometry.Point
	field  velocity.Field
	nbrs   [][]int
	opts   Options
	timed  bool
}

// walkState is the per-worker scratch space, reused across starts.
type walkState struct {
	onPath []bool
	path   []int
	stack  []frame
	steps  int
}

// frame is one vertex of the current walk.
type frame struct {
	v, prev int
	next    int     // index of the next neighbour to examine
	length  float64 // mm from the start to v
	seconds float64 // conduction time from the start to v
}

// Search returns the rotors of the graph adj over points.
// An empty field disables every time check.
//
// Stage 1 (Validate): adjacency present and sized like points, field and
// bounds usable, starts in range. N == 0 yields an empty result.
// Stage 2 (Explore): one walk per start, sequentially or on Workers goroutines.
// Stage 3 (Merge): per-start candidates in start order through one registry.
//
// Errors: ErrNilAdjacency, matrix.ErrMalformedAdjacency,
// velocity.ErrInvalidVelocityField, cycle.ErrInvalidBounds, ErrInvalidStart,
// ctx.Err() on cancellation.
func Search(
	ctx context.Context,
	adj *matrix.AdjacencyMatrix,
	points []geometry.Point,
	field velocity.Field,
	opts ...Option,
) ([][]int, error) {
	// 1) Options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2) Validate
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	n := len(points)
	if adj.VertexCount() != n {
		return nil, fmt.Errorf("functional: %d points, %d×%d adjacency: %w",
			n, adj.VertexCount(), adj.VertexCount(), matrix.ErrMalformedAdjacency)
	}
	if err := field.Validate(n); err != nil {
		return nil, fmt.Errorf("functional: %w", err)
	}
	if err := o.Bounds.Validate(); err != nil {
		return nil, fmt.Errorf("functional: %w", err)
	}
	if n == 0 {
		return [][]int{}, nil
	}

	starts := o.Starts
	if starts == nil {
		starts = make([]int, n)
		for i := range starts {
			starts[i] = i
		}
	}
	for _, s := range starts {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("functional: start %d of %d: %w", s, n, ErrInvalidStart)
		}
	}

	s := &searcher{
		points: points,
		field:  field,
		nbrs:   make([][]int, n),
		opts:   o,
		timed:  field.Enabled(),
	}
	for v := 0; v < n; v++ {
		nb, err := adj.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("functional: %w", err)
		}
		s.nbrs[v] = nb
	}

	// 3) Explore
	perStart := make([][][]int, len(starts))
	var err error
	if o.Workers <= 1 {
		err = s.runSequential(ctx, starts, perStart)
	} else {
		err = s.runParallel(ctx, starts, perStart)
	}
	if err != nil {
		return nil, err
	}

	// 4) Merge in start order
	reg := cycle.NewRegistry()
	rotors := make([][]int, 0)
	for _, cands := range perStart {
		for _, c := range cands {
			if reg.Add(c) {
				rotors = append(rotors, c)
			}
		}
	}

	return rotors, nil
}

// SearchMesh runs Search over a mesh's adjacency and points.
func SearchMesh(ctx context.Context, m *mesh.Mesh, field velocity.Field, opts ...Option) ([][]int, error) {
	if m == nil {
		return nil, ErrNilAdjacency
	}

	return Search(ctx, m.Adjacency, m.Points, field, opts...)
}

func newWalkState(n int) *walkState {
	return &walkState{
		onPath: make([]bool, n),
		path:   make([]int, 0, 64),
		stack:  make([]frame, 0, 64),
	}
}

func (s *searcher) runSequential(ctx context.Context, starts []int, out [][][]int) error {
	st := newWalkState(len(s.points))
	for i, start := range starts {
		if err := ctx.Err(); err != nil {
			return err
		}
		cands, err := s.fromStart(ctx, st, start)
		if err != nil {
			return fmt.Errorf("functional: start %d: %w", start, err)
		}
		out[i] = cands
		s.progress(i, start, len(starts), len(cands))
	}

	return nil
}

// runParallel spreads starts over Workers goroutines; each worker owns its
// walk state and writes only its own out slots.
func (s *searcher) runParallel(ctx context.Context, starts []int, out [][][]int) error {
	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	g.Go(func() error {
		defer close(jobs)
		for i := range starts {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < s.opts.Workers; w++ {
		g.Go(func() error {
			st := newWalkState(len(s.points))
			for i := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				cands, err := s.fromStart(gctx, st, starts[i])
				if err != nil {
					return fmt.Errorf("functional: start %d: %w", starts[i], err)
				}
				out[i] = cands
				s.progress(i, starts[i], len(starts), len(cands))
			}
			return nil
		})
	}

	return g.Wait()
}

func (s *searcher) progress(i, start, of, found int) {
	s.opts.Logger.WithFields(logrus.Fields{
		"start": start,
		"of":    of,
		"found": found,
	}).Debugf("functional start %d/%d done", i+1, of)
}

// fromStart explores every walk from start and returns its accepted
// closures, first occurrence of each vertex set only.
func (s *searcher) fromStart(ctx context.Context, st *walkState, start int) ([][]int, error) {
	var (
		found [][]int
		local = cycle.NewRegistry()
		b     = s.opts.Bounds
	)

	st.stack = st.stack[:0]
	st.path = st.path[:0]
	if err := s.enter(st, start, -1, start, 0, 0); err != nil {
		return nil, err
	}

	for len(st.stack) > 0 {
		// 1) Periodic cancellation check
		st.steps++
		if st.steps%s.opts.CheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				s.unwind(st)
				return nil, err
			}
		}

		top := &st.stack[len(st.stack)-1]
		nbrs := s.nbrs[top.v]

		// 2) Exhausted: pop
		if top.next >= len(nbrs) {
			st.onPath[top.v] = false
			st.path = st.path[:len(st.path)-1]
			st.stack = st.stack[:len(st.stack)-1]
			continue
		}

		w := nbrs[top.next]
		top.next++
		if w == top.prev {
			continue
		}

		// 3) Candidate closure: only onto the start
		if st.onPath[w] {
			if w != start {
				continue
			}
			closed, ok, err := s.close(st, top, start, b)
			if err != nil {
				s.unwind(st)
				return nil, err
			}
			if ok && local.Add(closed) {
				found = append(found, closed)
			}
			continue
		}

		// 4) Extend; values are read before enter may grow the stack
		v, length, seconds := top.v, top.length, top.seconds
		if err := s.enter(st, w, v, start, length, seconds); err != nil {
			s.unwind(st)
			return nil, err
		}
	}

	return found, nil
}

// enter pushes w (reached from prev) unless one of the three prunes fires.
func (s *searcher) enter(st *walkState, w, prev, start int, length, seconds float64) error {
	b := s.opts.Bounds
	if prev >= 0 {
		length += geometry.Distance(s.points[prev], s.points[w])
		if s.timed {
			t, err := cost.SegmentTime(prev, w, s.points, s.field)
			if err != nil {
				return err
			}
			seconds += t
		}
	}

	switch {
	case length > b.MaxDist:
		return nil
	case length+geometry.Distance(s.points[w], s.points[start]) > b.MaxDist:
		return nil
	case s.timed && cost.Millis(seconds) > b.MaxTime:
		return nil
	}

	st.stack = append(st.stack, frame{v: w, prev: prev, length: length, seconds: seconds})
	st.path = append(st.path, w)
	st.onPath[w] = true

	return nil
}

// close evaluates the walk closed from top back onto start.
func (s *searcher) close(st *walkState, top *frame, start int, b cycle.Bounds) ([]int, bool, error) {
	length := top.length + geometry.Distance(s.points[top.v], s.points[start])
	if !b.DistanceOK(length) {
		return nil, false, nil
	}

	if s.timed {
		seconds := top.seconds
		if !s.opts.OpenClosingTime {
			t, err := cost.SegmentTime(top.v, start, s.points, s.field)
			if err != nil {
				return nil, false, err
			}
			seconds += t
		}
		if !b.TimeOK(cost.Millis(seconds)) {
			return nil, false, nil
		}
	}

	closed := make([]int, len(st.path)+1)
	copy(closed, st.path)
	closed[len(st.path)] = start

	return closed, true, nil
}

// unwind clears the membership marks of an aborted walk so the state can
// be reused.
func (s *searcher) unwind(st *walkState) {
	for _, v := range st.path {
		st.onPath[v] = false
	}
	st.path = st.path[:0]
	st.stack = st.stack[:0]
}
