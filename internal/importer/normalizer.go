package importer

import (
	"strings"
	"time"
	"unicode"

	"salespulse/internal/errors"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical calendar date representation emitted by the
// normalizer: dd.mm.yyyy.
const DateLayout = "02.01.2006"

// NormalizedSale is a validated, typed sale line awaiting persistence.
// OrderID is the join key into the manager roster, not a unique key.
type NormalizedSale struct {
	OrderID       string
	Date          time.Time
	Product       string
	Quantity      int
	PurchaseType  string
	PaymentMethod string
}

// NormalizedManager is a typed roster record. OrderID only drives the join
// with sales and is never persisted on the Manager entity.
type NormalizedManager struct {
	OrderID string
	Name    string
	City    string
}

// NormalizedPrice is a typed price-list record.
type NormalizedPrice struct {
	Product string
	Price   decimal.Decimal
}

// NormalizeSales converts validated sale records into their typed form.
// Quantity is truncated toward zero from any fractional parse; a date with
// an unrecognized separator is a row-indexed failure, never a silent default.
func NormalizeSales(records []RawRecord) ([]NormalizedSale, error) {
	sales := make([]NormalizedSale, 0, len(records))
	for i, record := range records {
		date, err := NormalizeDate(record[ColDate])
		if err != nil {
			return nil, &ParseError{Row: i + 1, Message: err.Error()}
		}

		sales = append(sales, NormalizedSale{
			OrderID:       strings.TrimSpace(record[ColOrderID]),
			Date:          date,
			Product:       strings.TrimSpace(record[ColProduct]),
			Quantity:      int(CleanNumber(record[ColQuantity]).IntPart()),
			PurchaseType:  strings.TrimSpace(record[ColPurchaseType]),
			PaymentMethod: strings.TrimSpace(record[ColPaymentMethod]),
		})
	}

	return sales, nil
}

// NormalizeManagers converts validated roster records into their typed form.
func NormalizeManagers(records []RawRecord) []NormalizedManager {
	managers := make([]NormalizedManager, 0, len(records))
	for _, record := range records {
		managers = append(managers, NormalizedManager{
			OrderID: strings.TrimSpace(record[ColOrderID]),
			Name:    NormalizeManagerName(record[ColManager]),
			City:    strings.TrimSpace(record[ColCity]),
		})
	}

	return managers
}

// NormalizePrices converts validated price-list records into their typed form.
func NormalizePrices(records []RawRecord) []NormalizedPrice {
	prices := make([]NormalizedPrice, 0, len(records))
	for _, record := range records {
		prices = append(prices, NormalizedPrice{
			Product: strings.TrimSpace(record[ColProduct]),
			Price:   CleanNumber(record[ColPrice]),
		})
	}

	return prices
}

// NormalizeDate parses a day-month-year date written with "-", "." or "/"
// separators and returns the calendar date. Any other separator, or a value
// that does not fit the detected layout, is an error.
func NormalizeDate(raw string) (time.Time, error) {
	cleaned := strings.TrimSpace(raw)

	var layout string
	switch {
	case strings.Contains(cleaned, "-"):
		layout = "02-01-2006"
	case strings.Contains(cleaned, "."):
		layout = "02.01.2006"
	case strings.Contains(cleaned, "/"):
		layout = "02/01/2006"
	default:
		return time.Time{}, errors.Errorf("unrecognized date format %q", raw)
	}

	date, err := time.Parse(layout, cleaned)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid date %q", raw)
	}

	return date, nil
}

// CleanNumber strips every rune that is not a digit or separator, treats ","
// as a decimal point and parses the remainder. Anything unparseable yields
// zero: the lenient counterpart of the validator's strict policy upstream.
func CleanNumber(raw string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			return r
		}

		return -1
	}, strings.TrimSpace(raw))
	cleaned = strings.TrimRight(cleaned, ".,")
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	number, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}

	return number
}

// NormalizeManagerName collapses a two-token name to the canonical
// "First L." form. Names with fewer than two tokens pass through unchanged.
func NormalizeManagerName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parts := strings.Fields(trimmed)
	if len(parts) < 2 {
		return trimmed
	}

	initial := []rune(parts[1])[0]

	return parts[0] + " " + string(unicode.ToUpper(initial)) + "."
}
