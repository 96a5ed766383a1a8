package datasource

import "errors"

// Sentinel errors for the datasource package.
var (
	// ErrEmptyFile indicates the CSV had no data rows.
	ErrEmptyFile = errors.New("datasource: file contains no data rows")

	// ErrRaggedRow indicates a CSV row had a different column count than
	// the first data row (a skipped header row is not compared).
	ErrRaggedRow = errors.New("datasource: ragged row")

	// ErrNotNumeric indicates a CSV cell could not be parsed as a float64.
	ErrNotNumeric = errors.New("datasource: non-numeric cell")

	// ErrUnknownOrientation indicates an Orientation value outside the
	// defined enum.
	ErrUnknownOrientation = errors.New("datasource: unknown orientation")
)
