// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"salespulse/internal/domain/entity"
)

// ImportUsecase defines the interface for the CSV import pipeline.
type ImportUsecase interface {
	// ImportCSV runs the full pipeline over the three uploaded datasets:
	// parse, validate, normalize, cross-reference and persist in one
	// transaction, then invalidate cached analytics. The returned result
	// reports per-dataset counts of rows actually written.
	ImportCSV(ctx context.Context, input *ImportInput) (*entity.ImportResult, error)
}

// --- Input DTOs ---

// ImportInput carries the three raw CSV streams of one import batch.
type ImportInput struct {
	Sales    io.Reader
	Managers io.Reader
	Prices   io.Reader
}
