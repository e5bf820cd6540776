package velocity_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reentry/geometry"
	"github.com/katalvlaran/reentry/velocity"
)

var xAxis = geometry.NewPoint(1, 0, 0)

func TestFieldValidate(t *testing.T) {
	require.NoError(t, velocity.Field(nil).Validate(10)) // empty disables time checks
	require.False(t, velocity.Field(nil).Enabled())

	ok := velocity.Uniform(3, xAxis, 500, 2)
	require.NoError(t, ok.Validate(3))
	require.True(t, ok.Enabled())

	cases := map[string]func(f velocity.Field){
		"zero speed":     func(f velocity.Field) { f[1].Speed = 0 },
		"negative speed": func(f velocity.Field) { f[1].Speed = -3 },
		"NaN speed":      func(f velocity.Field) { f[1].Speed = math.NaN() },
		"inf speed":      func(f velocity.Field) { f[1].Speed = math.Inf(1) },
		"zero fibre":     func(f velocity.Field) { f[1].Fiber = geometry.Point{} },
		"NaN fibre":      func(f velocity.Field) { f[1].Fiber.Y = math.NaN() },
		"NaN penalty":    func(f velocity.Field) { f[1].Penalty = math.NaN() },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := velocity.Uniform(3, xAxis, 500, 2)
			mutate(f)
			err := f.Validate(3)
			require.ErrorIs(t, err, velocity.ErrInvalidVelocityField)
			assert.Contains(t, err.Error(), "point 1")
		})
	}

	require.ErrorIs(t, ok.Validate(4), velocity.ErrInvalidVelocityField)
}

func TestTissueNames(t *testing.T) {
	name, ok := velocity.MaterialName(9)
	require.True(t, ok)
	assert.Equal(t, "MV/LAA", name)

	name, ok = velocity.ModelName(195)
	require.True(t, ok)
	assert.Equal(t, "LA", name)

	_, ok = velocity.ModelName(1)
	assert.False(t, ok)
}

func TestNearest(t *testing.T) {
	samples := []velocity.Sample{
		{Position: geometry.NewPoint(0, 0, 0)},
		{Position: geometry.NewPoint(10, 0, 0)},
		{Position: geometry.NewPoint(10, 0, 0)}, // duplicate: lowest index wins
	}
	assert.Equal(t, 1, velocity.Nearest(geometry.NewPoint(9, 1, 0), samples))
	assert.Equal(t, 0, velocity.Nearest(geometry.NewPoint(1, 0, 0), samples))
	assert.Equal(t, -1, velocity.Nearest(xAxis, nil))

	_, err := velocity.AssignNearest([]geometry.Point{xAxis}, nil)
	require.ErrorIs(t, err, velocity.ErrNoSamples)
}

const samplesCSV = `"Points:0","Points:1","Points:2",material,model,fibers:0,fibers:1,fibers:2,extra
0,0,0,1,191,1,0,0,x
10,0,0,5,195,0,1,0,y
`

const tableCSV = `material,model,velocidades,anisotropia
1,191,60,2
5,195,120,3
`

func TestBuildFieldFromCSV(t *testing.T) {
	samples, err := velocity.ReadSamplesCSV(strings.NewReader(samplesCSV))
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, velocity.Tissue{Material: 5, Model: 195}, samples[1].Tissue)

	table, err := velocity.ReadConductionTable(strings.NewReader(tableCSV))
	require.NoError(t, err)
	require.Len(t, table, 2)

	points := []geometry.Point{
		geometry.NewPoint(1, 0, 0), // nearest sample 0
		geometry.NewPoint(9, 0, 0), // nearest sample 1
		geometry.NewPoint(8, 2, 0), // nearest sample 1
	}
	assigned, err := velocity.AssignNearest(points, samples)
	require.NoError(t, err)
	assert.Equal(t, points[2], assigned[2].Position)

	field, err := velocity.BuildField(assigned, table, 0.5)
	require.NoError(t, err)
	require.Len(t, field, 3)
	assert.InDelta(t, 300.0, field[0].Speed, 1e-9) // 60 cm/s × 10 × 0.5
	assert.InDelta(t, 600.0, field[1].Speed, 1e-9)
	assert.Equal(t, 3.0, field[2].Penalty)
	assert.Equal(t, geometry.NewPoint(0, 1, 0), field[2].Fiber)
}

func TestBuildField_UnknownTissue(t *testing.T) {
	assigned := []velocity.Sample{{Tissue: velocity.Tissue{Material: 2, Model: 192}, Fiber: xAxis}}
	_, err := velocity.BuildField(assigned, velocity.ConductionTable{}, 1)
	require.ErrorIs(t, err, velocity.ErrUnknownTissue)
}

func TestReadConductionTable_EnglishHeaders(t *testing.T) {
	table, err := velocity.ReadConductionTable(strings.NewReader("model,material,speed,anisotropy\n192,4,150,1.5\n"))
	require.NoError(t, err)
	assert.Equal(t, velocity.Conduction{SpeedCM: 150, Anisotropy: 1.5}, table[velocity.Tissue{Material: 4, Model: 192}])
}

func TestReadCSV_MissingColumn(t *testing.T) {
	_, err := velocity.ReadConductionTable(strings.NewReader("material,model,speed\n1,191,60\n"))
	require.ErrorIs(t, err, velocity.ErrMissingColumn)

	_, err = velocity.ReadSamplesCSV(strings.NewReader("Points:0,Points:1\n0,0\n"))
	require.ErrorIs(t, err, velocity.ErrMissingColumn)

	_, err = velocity.ReadSamplesCSV(strings.NewReader(""))
	require.ErrorIs(t, err, velocity.ErrMissingColumn)
}
