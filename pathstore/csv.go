package pathstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
)

// ErrNoHeader is returned by Read for input without a header row.
var ErrNoHeader = errors.New("pathstore: missing header row")

// column is the header of the single path column.
const column = "0"

// Write emits paths as a one-column CSV headed "0".
func Write(w io.Writer, paths [][]int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{column}); err != nil {
		return err
	}
	for _, p := range paths {
		if err := cw.Write([]string{FormatLiteral(p)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// Read parses the output of Write. The path column is the one headed "0",
// or the first column when no header reads "0". Blank lines are skipped.
func Read(r io.Reader) ([][]int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	idx := 0
	for i, name := range header {
		if name == column {
			idx = i
			break
		}
	}

	paths := make([][]int, 0)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if idx >= len(rec) {
			return nil, fmt.Errorf("line %d: %w", line, ErrBadLiteral)
		}
		p, err := ParseLiteral(rec[idx])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		paths = append(paths, p)
	}

	return paths, nil
}

// Save writes paths to file, replacing it.
func Save(file string, paths [][]int) error {
	f, err := os.Create(file)
	if err != nil {
		return pkgerrors.Wrap(err, "pathstore: create")
	}
	if err := Write(f, paths); err != nil {
		f.Close()
		return pkgerrors.Wrapf(err, "pathstore: write %s", file)
	}

	return pkgerrors.Wrap(f.Close(), "pathstore: close")
}

// Load reads a file written by Save.
func Load(file string) ([][]int, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "pathstore: open")
	}
	defer f.Close()

	paths, err := Read(f)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "pathstore: read %s", file)
	}

	return paths, nil
}
