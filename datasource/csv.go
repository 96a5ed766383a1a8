package datasource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kkrpk/lock-free-pc-MDF/linalg"
)

// Orientation selects how a CSV's rows/columns map onto the engine's fixed
// variables-by-samples convention (spec.md §6: "the convention is fixed by
// the caller and documented").
type Orientation int

const (
	// VariablesBySamples treats each CSV row as one variable's samples
	// (p rows, n columns) — the engine's native orientation, no transpose.
	VariablesBySamples Orientation = iota

	// SamplesByVariables treats each CSV row as one sample across all
	// variables (n rows, p columns) — transposed on load.
	SamplesByVariables
)

// Options configures LoadCSV.
type Options struct {
	// Orientation declares how rows/columns map to variables/samples.
	Orientation Orientation
	// HasHeader skips the first row if true.
	HasHeader bool
}

// LoadCSV reads path and returns a *linalg.Dense in the engine's
// variables-by-samples orientation, transposing first if opts.Orientation
// is SamplesByVariables.
func LoadCSV(path string, opts Options) (*linalg.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("datasource: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, opts)
}

// Load reads r as CSV and returns a *linalg.Dense in the engine's
// variables-by-samples orientation. Exposed separately from LoadCSV so
// callers can load from any io.Reader (tests, embedded assets, stdin).
func Load(r io.Reader, opts Options) (*linalg.Dense, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := readAllNumericRows(reader, opts.HasHeader)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	switch opts.Orientation {
	case VariablesBySamples:
		return denseFromRows(rows)
	case SamplesByVariables:
		return denseFromRows(transpose(rows))
	default:
		return nil, fmt.Errorf("datasource: orientation %d: %w", opts.Orientation, ErrUnknownOrientation)
	}
}

func readAllNumericRows(reader *csv.Reader, hasHeader bool) ([][]float64, error) {
	var out [][]float64
	width := -1
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("datasource: read: %w", err)
		}
		if first && hasHeader {
			first = false
			continue
		}
		first = false

		if width == -1 {
			width = len(record)
		} else if len(record) != width {
			return nil, fmt.Errorf("datasource: row has %d columns, want %d: %w", len(record), width, ErrRaggedRow)
		}

		row := make([]float64, width)
		for i, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("datasource: cell %q: %w", cell, ErrNotNumeric)
			}
			row[i] = v
		}
		out = append(out, row)
	}
	return out, nil
}

func transpose(rows [][]float64) [][]float64 {
	if len(rows) == 0 {
		return rows
	}
	r, c := len(rows), len(rows[0])
	out := make([][]float64, c)
	for j := 0; j < c; j++ {
		out[j] = make([]float64, r)
		for i := 0; i < r; i++ {
			out[j][i] = rows[i][j]
		}
	}
	return out
}

func denseFromRows(rows [][]float64) (*linalg.Dense, error) {
	p := len(rows)
	n := len(rows[0])
	m, err := linalg.NewDense(p, n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, v := range row {
			if err := m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
