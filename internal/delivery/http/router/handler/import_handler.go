package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"salespulse/internal/domain/entity"
	domainerrors "salespulse/internal/domain/errors"
	"salespulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Multipart field names of the three CSV uploads.
const (
	fieldSales    = "sales"
	fieldManagers = "managers"
	fieldPrices   = "prices"
)

// ImportHandler holds dependencies for the CSV import endpoint.
type ImportHandler struct {
	uc     usecase.ImportUsecase
	logger *slog.Logger
}

// NewImportHandler is the constructor for ImportHandler, injected by Fx.
func NewImportHandler(uc usecase.ImportUsecase, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{
		uc:     uc,
		logger: logger,
	}
}

// Import handles the CSV import request. The response body is the import
// result itself: 200 when the batch was written, 400 when any of the three
// files is absent or the batch was rejected.
func (h *ImportHandler) Import(c echo.Context) error {
	files, err := openUploads(c, fieldSales, fieldManagers, fieldPrices)
	if err != nil {
		return c.JSON(http.StatusBadRequest, &entity.ImportResult{
			Success: false,
			Errors:  []string{domainerrors.ErrCSVFilesRequired.Message()},
		})
	}
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	input := &usecase.ImportInput{
		Sales:    files[0],
		Managers: files[1],
		Prices:   files[2],
	}

	result, err := h.uc.ImportCSV(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	if !result.Success {
		h.logger.Warn("CSV import rejected", slog.Any("errors", result.Errors))

		return c.JSON(http.StatusBadRequest, result)
	}

	return c.JSON(http.StatusOK, result)
}

// openUploads opens the named multipart files in order, closing any already
// opened file when one is missing.
func openUploads(c echo.Context, fields ...string) ([]multipart.File, error) {
	files := make([]multipart.File, 0, len(fields))
	for _, field := range fields {
		header, err := c.FormFile(field)
		if err != nil {
			closeAll(files)

			return nil, errors.Wrapf(err, "missing %s file", field)
		}

		file, err := header.Open()
		if err != nil {
			closeAll(files)

			return nil, errors.Wrapf(err, "failed to open %s file", field)
		}
		files = append(files, file)
	}

	return files, nil
}

func closeAll(files []multipart.File) {
	for _, f := range files {
		f.Close()
	}
}
