package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyDataset is returned when KPIs are requested over zero records.
var ErrEmptyDataset = errors.New("empty dataset: no campaign records")

var errEmptyDate = errors.New("empty date")

// ParseError reports a date cell that could not be parsed. Row is the 1-based
// data row, or 0 when unknown.
type ParseError struct {
	Field string
	Value string
	Row   int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: cannot parse %s %q: %v", e.Row, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("cannot parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports required columns absent from the input table.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "missing required columns: " + strings.Join(e.Missing, ", ")
}

// CheckSchema returns a *SchemaError naming every required column absent
// from columns.
func CheckSchema(columns []string) error {
	have := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		have[c] = struct{}{}
	}
	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := have[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

func withRow(err error, row int) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Row = row
	}
	return err
}
