package velocity

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/reentry/geometry"
)

var (
	// ErrMissingColumn is returned when a CSV header lacks a required column.
	ErrMissingColumn = errors.New("velocity: missing CSV column")

	// ErrUnknownTissue is returned when a (material, model) pair has no
	// entry in the conduction table.
	ErrUnknownTissue = errors.New("velocity: no conduction data for tissue")

	// ErrNoSamples is returned by AssignNearest when the sample set is empty.
	ErrNoSamples = errors.New("velocity: no samples")
)

// cmToMM converts conduction table speeds (cm/s) to mm/s.
const cmToMM = 10.0

// Material and model codes of the atrial simulation meshes.
var (
	materialNames = map[int]string{
		1: "RA", 2: "CT", 3: "PVS", 4: "BB", 5: "IST",
		6: "SAN", 7: "LFO", 8: "CS", 9: "MV/LAA", 10: "FO",
	}
	modelNames = map[int]string{
		191: "RA", 192: "BB", 193: "RAA", 194: "TV",
		195: "LA", 196: "PVS", 197: "LAA", 198: "MV",
	}
)

// MaterialName returns the anatomical label of a material code.
func MaterialName(code int) (string, bool) {
	name, ok := materialNames[code]
	return name, ok
}

// ModelName returns the anatomical label of a model code.
func ModelName(code int) (string, bool) {
	name, ok := modelNames[code]
	return name, ok
}

// Tissue identifies a conduction region by its material and model codes.
type Tissue struct {
	Material int
	Model    int
}

func (t Tissue) String() string {
	mat, _ := MaterialName(t.Material)
	mod, _ := ModelName(t.Model)

	return fmt.Sprintf("%d/%d (%s/%s)", t.Material, t.Model, mat, mod)
}

// Sample is one point of a simulation export: position, tissue and fibre.
type Sample struct {
	Position geometry.Point
	Tissue   Tissue
	Fiber    geometry.Point
}

// Conduction is one row of a conduction table.
type Conduction struct {
	SpeedCM    float64 // cm/s, as tabulated
	Anisotropy float64 // penalty factor used across the fibre
}

// ConductionTable maps tissue to its conduction properties.
type ConductionTable map[Tissue]Conduction

// Nearest returns the index of the sample closest to p; ties resolve to the
// lowest index. It returns -1 for an empty sample set.
// Complexity: O(len(samples)).
func Nearest(p geometry.Point, samples []Sample) int {
	best, bestDist := -1, math.Inf(1)
	for i := range samples {
		if d := geometry.Distance(p, samples[i].Position); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

// AssignNearest pairs every mesh point with its nearest sample.
// Complexity: O(N·M); persist the result for large meshes.
func AssignNearest(points []geometry.Point, samples []Sample) ([]Sample, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	out := make([]Sample, len(points))
	for i, p := range points {
		out[i] = samples[Nearest(p, samples)]
		out[i].Position = p
	}

	return out, nil
}

// BuildField converts assigned samples into a velocity Field. Speeds are
// converted from cm/s to mm/s and scaled by penalizer (values below 1 model
// slower, less healthy tissue); the anisotropy becomes the penalty factor.
//
// Errors: ErrUnknownTissue, or ErrInvalidVelocityField if the result is unusable.
func BuildField(assigned []Sample, table ConductionTable, penalizer float64) (Field, error) {
	field := make(Field, len(assigned))
	for i, s := range assigned {
		c, ok := table[s.Tissue]
		if !ok {
			return nil, fmt.Errorf("point %d, tissue %s: %w", i, s.Tissue, ErrUnknownTissue)
		}
		field[i] = Entry{
			Fiber:   s.Fiber,
			Speed:   c.SpeedCM * cmToMM * penalizer,
			Penalty: c.Anisotropy,
		}
	}
	if err := field.Validate(len(assigned)); err != nil {
		return nil, err
	}

	return field, nil
}

// Column names of a ParaView point export.
var sampleColumns = []string{
	"Points:0", "Points:1", "Points:2",
	"material", "model",
	"fibers:0", "fibers:1", "fibers:2",
}

// ReadSamplesCSV reads a point export with the columns
// Points:0..2, material, model, fibers:0..2 (any order, extra columns ignored).
func ReadSamplesCSV(r io.Reader) ([]Sample, error) {
	rows, col, err := readTable(r, sampleColumns)
	if err != nil {
		return nil, err
	}

	out := make([]Sample, 0, len(rows))
	for n, row := range rows {
		var v [8]float64
		for k, name := range sampleColumns {
			if v[k], err = parseCell(row, col[name]); err != nil {
				return nil, fmt.Errorf("row %d, column %s: %w", n+2, name, err)
			}
		}
		out = append(out, Sample{
			Position: geometry.NewPoint(v[0], v[1], v[2]),
			Tissue:   Tissue{Material: int(v[3]), Model: int(v[4])},
			Fiber:    geometry.NewPoint(v[5], v[6], v[7]),
		})
	}

	return out, nil
}

// Accepted header spellings of the conduction table columns.
var (
	speedColumns      = []string{"velocidades", "speed"}
	anisotropyColumns = []string{"anisotropia", "anisotropy"}
)

// ReadConductionTable reads material, model, speed (cm/s) and anisotropy
// columns. Speed may be headed "velocidades" or "speed", anisotropy
// "anisotropia" or "anisotropy".
func ReadConductionTable(r io.Reader) (ConductionTable, error) {
	rows, col, err := readTable(r, []string{"material", "model"})
	if err != nil {
		return nil, err
	}
	speedName, err := firstPresent(col, speedColumns)
	if err != nil {
		return nil, err
	}
	anisoName, err := firstPresent(col, anisotropyColumns)
	if err != nil {
		return nil, err
	}

	table := make(ConductionTable, len(rows))
	for n, row := range rows {
		var v [4]float64
		for k, name := range []string{"material", "model", speedName, anisoName} {
			if v[k], err = parseCell(row, col[name]); err != nil {
				return nil, fmt.Errorf("row %d, column %s: %w", n+2, name, err)
			}
		}
		table[Tissue{Material: int(v[0]), Model: int(v[1])}] = Conduction{SpeedCM: v[2], Anisotropy: v[3]}
	}

	return table, nil
}

// ReadSamplesFile and ReadConductionFile are file-path conveniences.
func ReadSamplesFile(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadSamplesCSV(f)
}

// ReadConductionFile opens path and reads it with ReadConductionTable.
func ReadConductionFile(path string) (ConductionTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadConductionTable(f)
}

// readTable reads a headed CSV and resolves required column positions.
func readTable(r io.Reader, required []string) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("empty CSV: %w", ErrMissingColumn)
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, nil, fmt.Errorf("%q: %w", name, ErrMissingColumn)
		}
	}

	return records[1:], col, nil
}

func firstPresent(col map[string]int, names []string) (string, error) {
	for _, name := range names {
		if _, ok := col[name]; ok {
			return name, nil
		}
	}

	return "", fmt.Errorf("%q: %w", names, ErrMissingColumn)
}

func parseCell(row []string, idx int) (float64, error) {
	if idx >= len(row) {
		return 0, io.ErrUnexpectedEOF
	}

	return strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
}
