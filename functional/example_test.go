package functional_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/reentry/builder"
	"github.com/katalvlaran/reentry/cost"
	"github.com/katalvlaran/reentry/cycle"
	"github.com/katalvlaran/reentry/functional"
	"github.com/katalvlaran/reentry/geometry"
	"github.com/katalvlaran/reentry/velocity"
)

// ExampleSearchMesh looks for rotors on a 5 mm square split by its 0–2
// diagonal:
//
//	3 ---- 2
//	|    / |
//	|  /   |
//	0 ---- 1
//
// With a uniform 100 mm/s field the two triangles take 171 ms and the
// perimeter 200 ms; a 100–180 ms window keeps the triangles only.
func ExampleSearchMesh() {
	m, err := builder.BuildMesh([]builder.BuilderOption{builder.WithSpacing(5)}, builder.Square())
	if err != nil {
		fmt.Println(err)
		return
	}
	field := velocity.Uniform(m.Len(), geometry.NewPoint(1, 0, 0), 100, 1)

	rotors, err := functional.SearchMesh(context.Background(), m, field,
		functional.WithBounds(cycle.Bounds{MinDist: 8, MaxDist: 20, MinTime: 100, MaxTime: 180}))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range rotors {
		ms, _ := cost.PathMillis(r, m.Points, field)
		fmt.Printf("%v %.2f mm %d ms\n", r, cost.PathLength(r, m.Points), ms)
	}
	// Output:
	// [0 1 2 0] 17.07 mm 171 ms
	// [0 2 3 0] 17.07 mm 171 ms
}
