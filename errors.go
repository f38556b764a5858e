package main

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResult signals that nothing is left to chart: either every input
// row was dropped during cleaning, or the active filters matched no
// segments.
var ErrEmptyResult = errors.New("no rows left to chart")

// SchemaError reports required input columns that could not be found in
// the header row. It aborts the batch before any row is processed.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input is missing required column(s): %s", strings.Join(e.Missing, ", "))
}
