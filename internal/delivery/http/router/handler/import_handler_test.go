package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"salespulse/internal/domain/entity"
	"salespulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubImportUsecase returns a canned result and records whether it ran.
type stubImportUsecase struct {
	result *entity.ImportResult
	err    error
	called bool
}

func (s *stubImportUsecase) ImportCSV(_ context.Context, _ *usecase.ImportInput) (*entity.ImportResult, error) {
	s.called = true
	if s.err != nil {
		return nil, s.err
	}

	return s.result, nil
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for field, content := range fields {
		part, err := writer.CreateFormFile(field, field+".csv")
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func newImportContext(t *testing.T, fields map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	body, contentType := multipartBody(t, fields)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/import", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func allThreeFiles() map[string]string {
	return map[string]string{
		"sales":    "ID заказа,Дата,Продукт,Количество,Тип покупки,Способ оплаты\n1001,01.01.2024,Widget,1,,\n",
		"managers": "ID заказа,Менеджер,Город\n1001,Иван Петров,Москва\n",
		"prices":   "Продукт,Цена\nWidget,100\n",
	}
}

func TestImportHandler_Import_Success(t *testing.T) {
	stub := &stubImportUsecase{result: &entity.ImportResult{
		Success:          true,
		ImportedSales:    1,
		ImportedManagers: 1,
		ImportedPrices:   1,
	}}
	h := NewImportHandler(stub, testLogger())

	c, rec := newImportContext(t, allThreeFiles())

	require.NoError(t, h.Import(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, stub.called)
	assert.Contains(t, rec.Body.String(), `"imported_sales":1`)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestImportHandler_Import_MissingFile(t *testing.T) {
	stub := &stubImportUsecase{}
	h := NewImportHandler(stub, testLogger())

	fields := allThreeFiles()
	delete(fields, "prices")
	c, rec := newImportContext(t, fields)

	require.NoError(t, h.Import(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, stub.called)
	assert.Contains(t, rec.Body.String(), "All three CSV files are required")
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestImportHandler_Import_RejectedBatch(t *testing.T) {
	stub := &stubImportUsecase{result: &entity.ImportResult{
		Success: false,
		Errors:  []string{"sales: validation error at row 2"},
	}}
	h := NewImportHandler(stub, testLogger())

	c, rec := newImportContext(t, allThreeFiles())

	require.NoError(t, h.Import(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation error at row 2")
}

func TestImportHandler_Import_StoreFailurePropagates(t *testing.T) {
	stub := &stubImportUsecase{err: assert.AnError}
	h := NewImportHandler(stub, testLogger())

	c, _ := newImportContext(t, allThreeFiles())

	err := h.Import(c)
	require.Error(t, err)
}
