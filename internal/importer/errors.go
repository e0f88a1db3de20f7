// Package importer implements the CSV import pipeline: parsing raw delimited
// text into records, validating them against per-dataset schemas, and
// normalizing raw fields into canonical typed values.
package importer

import "fmt"

// ParseError reports a malformed input row. Row is 1-based over data rows
// (the header row is not counted). A parse error aborts the whole batch.
type ParseError struct {
	Row     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("csv parse error at row %d: %s", e.Row, e.Message)
}

// ValidationError reports the first record that violates a dataset schema.
// Row is 1-based over data rows. A validation error aborts the whole batch.
type ValidationError struct {
	Row   int
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error at row %d: field %q is missing or empty", e.Row, e.Field)
}
