package aggregate

import (
	"fmt"
	"math"
)

// Heatmap colour stops.
var (
	coldRGB = [3]float64{0x00, 0x00, 0xFF} // #0000FF
	midRGB  = [3]float64{0xFC, 0xFF, 0x0E} // #FCFF0E
)

// hotColor is returned for values at or above the red threshold.
const hotColor = "#FF0000"

// Color maps a time to a heatmap colour: blue at 0, yellow at med, red
// from max upwards, interpolating linearly in RGB in between. Interpolated
// colours are lowercase "#rrggbb"; the saturated red is "#FF0000".
// Negative values are treated as 0.
func Color(value, max, med float64) string {
	if value >= max {
		return hotColor
	}
	if value < 0 {
		value = 0
	}

	hot := [3]float64{0xFF, 0x00, 0x00}
	from, to, lo, hi := coldRGB, midRGB, 0.0, med
	if value >= med {
		from, to, lo, hi = midRGB, hot, med, max
	}

	frac := 0.0
	if hi > lo {
		frac = (value - lo) / (hi - lo)
	}

	var c [3]int
	for i := range c {
		v := (1-frac)*from[i]/0xFF + frac*to[i]/0xFF
		c[i] = int(math.RoundToEven(v * 0xFF))
	}

	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// VertexHeat is one row of a per-vertex heatmap.
type VertexHeat struct {
	Vertex    int
	MaxMillis float64
	Intensity float64
	Color     string
	InRotor   bool
}

// Heatmap combines MaxTimePerVertex, Intensity, Color and InRotor for n
// vertices with the given thresholds (ms).
func Heatmap(n int, rotors [][]int, times []int, max, med float64) ([]VertexHeat, error) {
	peak, err := MaxTimePerVertex(n, times, rotors)
	if err != nil {
		return nil, err
	}
	in := InRotor(n, rotors)

	out := make([]VertexHeat, n)
	for v := 0; v < n; v++ {
		out[v] = VertexHeat{
			Vertex:    v,
			MaxMillis: peak[v],
			Intensity: Intensity(peak[v], max),
			Color:     Color(peak[v], max, med),
			InRotor:   in[v],
		}
	}

	return out, nil
}
