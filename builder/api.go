// SPDX-License-Identifier: MIT
// Package: reentry/builder
//
// api.go - public entry point and the mesh draft shared by constructors.
//
// Design contract:
//   - One orchestrator: BuildMesh(bopts, cons...). Resolves cfg, runs cons in order.
//   - Constructors append to a Draft; indices are offset by what earlier
//     constructors already added, so fixtures compose (two disjoint holes, ...).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical meshes.
//   - Safety: never panic at build time; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/reentry/geometry"
	"github.com/katalvlaran/reentry/matrix"
	"github.com/katalvlaran/reentry/mesh"
)

// Constructor appends one fixture to the draft using the resolved config.
// Constructors MUST validate parameters early and return sentinel errors.
type Constructor func(d *Draft, cfg builderConfig) error

// Draft accumulates points, triangles and triangle-less edges.
type Draft struct {
	points    []geometry.Point
	triangles []mesh.Triangle
	edges     [][2]int
}

// Len returns the number of points added so far.
func (d *Draft) Len() int { return len(d.points) }

// addPoint places (x, y, z) relative to cfg.origin, perturbed by the
// configured jitter, and returns its index.
func (d *Draft) addPoint(cfg builderConfig, x, y, z float64) int {
	p := geometry.NewPoint(x+cfg.origin.X, y+cfg.origin.Y, z+cfg.origin.Z)
	if cfg.jitter > 0 && cfg.rng != nil {
		p.X += (2*cfg.rng.Float64() - 1) * cfg.jitter
		p.Y += (2*cfg.rng.Float64() - 1) * cfg.jitter
		p.Z += (2*cfg.rng.Float64() - 1) * cfg.jitter
	}
	d.points = append(d.points, p)

	return len(d.points) - 1
}

func (d *Draft) addTriangle(a, b, c int) {
	d.triangles = append(d.triangles, mesh.Triangle{a, b, c})
}

// addEdge joins u and v without a supporting triangle.
func (d *Draft) addEdge(u, v int) {
	d.edges = append(d.edges, [2]int{u, v})
}

// BuildMesh resolves the builder configuration from bopts, applies all
// constructors in order and assembles the mesh. Triangle edges and extra
// edges are both written with the mesh-edge value 1.
//
// Errors: constructor sentinels wrapped with "BuildMesh: %w", ErrNeedRandSource
// when jitter is requested without an RNG.
// Complexity: O(K + N² + T) for K constructors, N points, T triangles.
func BuildMesh(bopts []BuilderOption, cons ...Constructor) (*mesh.Mesh, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.jitter > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("BuildMesh: jitter %g: %w", cfg.jitter, ErrNeedRandSource)
	}

	d := &Draft{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMesh: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildMesh: %w", err)
		}
	}

	return d.assemble()
}

// assemble writes the draft into a dense adjacency and validates it as a mesh.
func (d *Draft) assemble() (*mesh.Mesh, error) {
	n := len(d.points)
	dense, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("BuildMesh: %w", err)
	}

	link := func(u, v int) error {
		if u == v {
			return nil
		}
		if err := dense.Set(u, v, meshEdgeValue); err != nil {
			return err
		}
		return dense.Set(v, u, meshEdgeValue)
	}
	for _, t := range d.triangles {
		for k := 0; k < 3; k++ {
			if err = link(t[k], t[(k+1)%3]); err != nil {
				return nil, fmt.Errorf("BuildMesh: triangle %v: %w", t, ErrConstructFailed)
			}
		}
	}
	for _, e := range d.edges {
		if err = link(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("BuildMesh: edge %v: %w", e, ErrConstructFailed)
		}
	}

	adj, err := matrix.NewAdjacencyMatrix(dense)
	if err != nil {
		return nil, fmt.Errorf("BuildMesh: %w", err)
	}

	return mesh.New(d.points, adj, d.triangles)
}
