package importer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate_AcceptedSeparators(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
	}{
		{name: "dash", raw: "15-01-2024"},
		{name: "dot", raw: "15.01.2024"},
		{name: "slash", raw: "15/01/2024"},
		{name: "padded", raw: "  15.01.2024  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizeDate(tt.raw)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "NormalizeDate(%q) = %v", tt.raw, got)
			assert.Equal(t, "15.01.2024", got.Format(DateLayout))
		})
	}
}

func TestNormalizeDate_UnrecognizedSeparator(t *testing.T) {
	_, err := NormalizeDate("15 01 2024")
	assert.Error(t, err)

	_, err = NormalizeDate("15012024")
	assert.Error(t, err)
}

func TestNormalizeDate_InvalidCalendarValue(t *testing.T) {
	_, err := NormalizeDate("32-01-2024")
	assert.Error(t, err)
}

func TestCleanNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain integer", raw: "42", want: "42"},
		{name: "comma decimal", raw: "1,5", want: "1.5"},
		{name: "currency noise", raw: "1 250,75 руб.", want: "1250.75"},
		{name: "unparseable", raw: "abc", want: "0"},
		{name: "empty", raw: "", want: "0"},
		{name: "negative sign stripped", raw: "-10", want: "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CleanNumber(tt.raw)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"CleanNumber(%q) = %s, want %s", tt.raw, got, tt.want)
		})
	}
}

func TestNormalizeManagerName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "two tokens", raw: "John Smith", want: "John S."},
		{name: "lowercase surname", raw: "John smith", want: "John S."},
		{name: "extra tokens ignored", raw: "John Smith Jr", want: "John S."},
		{name: "single token passes through", raw: "Madonna", want: "Madonna"},
		{name: "cyrillic", raw: "Иван Петров", want: "Иван П."},
		{name: "surrounding whitespace", raw: "  John   Smith  ", want: "John S."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, NormalizeManagerName(tt.raw))
		})
	}
}

func TestNormalizeSales_TruncatesQuantityTowardZero(t *testing.T) {
	records := []RawRecord{saleRecord(map[string]string{ColQuantity: "5,9"})}

	sales, err := NormalizeSales(records)
	require.NoError(t, err)

	require.Len(t, sales, 1)
	assert.Equal(t, 5, sales[0].Quantity)
}

func TestNormalizeSales_BadDateCarriesRowIndex(t *testing.T) {
	records := []RawRecord{
		saleRecord(nil),
		saleRecord(map[string]string{ColDate: "15012024"}),
	}

	_, err := NormalizeSales(records)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Row)
}

func TestNormalizeManagers_CanonicalNameAndTrimmedCity(t *testing.T) {
	records := []RawRecord{{
		ColOrderID: " 1001 ",
		ColManager: "John Smith",
		ColCity:    " NY ",
	}}

	managers := NormalizeManagers(records)

	require.Len(t, managers, 1)
	assert.Equal(t, "1001", managers[0].OrderID)
	assert.Equal(t, "John S.", managers[0].Name)
	assert.Equal(t, "NY", managers[0].City)
}

func TestNormalizePrices_LenientNumbers(t *testing.T) {
	records := []RawRecord{
		{ColProduct: "Widget", ColPrice: "10"},
		{ColProduct: "Gadget", ColPrice: "n/a"},
	}

	prices := NormalizePrices(records)

	require.Len(t, prices, 2)
	assert.True(t, prices[0].Price.Equal(decimal.NewFromInt(10)))
	assert.True(t, prices[1].Price.IsZero())
}
