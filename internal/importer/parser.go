package importer

import (
	"encoding/csv"
	"io"
	"strings"

	"salespulse/internal/errors"
)

// RawRecord maps a column header to the raw cell value of one input row.
// Records are request-scoped and discarded after normalization.
type RawRecord map[string]string

// ParseCSV reads one dataset: the first row is treated as column headers,
// every following row becomes a RawRecord keyed by those headers. Empty
// lines are skipped. The first malformed row aborts the batch with a
// row-indexed *ParseError.
func ParseCSV(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Row: 1, Message: "missing header row"}
	}
	if err != nil {
		return nil, &ParseError{Row: 1, Message: err.Error()}
	}
	// Excel exports UTF-8 CSVs with a BOM glued to the first header cell.
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	var records []RawRecord
	row := 0
	for {
		fields, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		row++
		if readErr != nil {
			var csvErr *csv.ParseError
			if errors.As(readErr, &csvErr) {
				return nil, &ParseError{Row: row, Message: csvErr.Err.Error()}
			}

			return nil, &ParseError{Row: row, Message: readErr.Error()}
		}

		record := make(RawRecord, len(header))
		for i, label := range header {
			record[label] = fields[i]
		}
		records = append(records, record)
	}

	return records, nil
}
