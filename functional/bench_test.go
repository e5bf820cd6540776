package functional_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/reentry/builder"
	"github.com/katalvlaran/reentry/functional"
	"github.com/katalvlaran/reentry/geometry"
	"github.com/katalvlaran/reentry/velocity"
)

// BenchmarkSearch_Grid10 measures a full search over a jittered 10×10 grid
// with 4 mm spacing and an anisotropic field, sequentially and on 4 workers.
func BenchmarkSearch_Grid10(b *testing.B) {
	m := build(b,
		[]builder.BuilderOption{builder.WithSpacing(4), builder.WithSeed(1), builder.WithJitter(0.3)},
		builder.Grid(10, 10))
	field := velocity.Uniform(m.Len(), geometry.NewPoint(1, 0, 0), 600, 2)
	ctx := context.Background()

	for _, workers := range []int{1, 4} {
		b.Run(map[int]string{1: "sequential", 4: "workers4"}[workers], func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := functional.SearchMesh(ctx, m, field, functional.WithWorkers(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
