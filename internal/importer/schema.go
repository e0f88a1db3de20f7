package importer

// Column labels of the three datasets. The labels are contractual: they must
// match the source files exactly, including case and diacritics.
const (
	ColOrderID       = "ID заказа"
	ColDate          = "Дата"
	ColProduct       = "Продукт"
	ColQuantity      = "Количество"
	ColPurchaseType  = "Тип покупки"
	ColPaymentMethod = "Способ оплаты"
	ColManager       = "Менеджер"
	ColCity          = "Город"
	ColPrice         = "Цена"
)

type fieldRule struct {
	label string
	// required fields must be present and non-empty; optional fields only
	// need the column to exist.
	required bool
}

// Schema is the fixed required-field contract of one dataset.
type Schema struct {
	Name  string
	rules []fieldRule
}

var (
	// SalesSchema covers one product line of an order.
	SalesSchema = Schema{
		Name: "sales",
		rules: []fieldRule{
			{label: ColOrderID, required: true},
			{label: ColDate, required: true},
			{label: ColProduct, required: true},
			{label: ColQuantity, required: true},
			{label: ColPurchaseType},
			{label: ColPaymentMethod},
		},
	}

	// ManagersSchema covers the manager roster, one record per order.
	ManagersSchema = Schema{
		Name: "managers",
		rules: []fieldRule{
			{label: ColOrderID, required: true},
			{label: ColManager, required: true},
			{label: ColCity},
		},
	}

	// PricesSchema covers the product price list.
	PricesSchema = Schema{
		Name: "prices",
		rules: []fieldRule{
			{label: ColProduct, required: true},
			{label: ColPrice, required: true},
		},
	}
)

// Validate checks every record against the schema and returns a row-indexed
// *ValidationError for the first violation. The whole batch is rejected on
// the first failing record; there is no partial success.
func (s Schema) Validate(records []RawRecord) error {
	for i, record := range records {
		for _, rule := range s.rules {
			value, ok := record[rule.label]
			if !ok || (rule.required && value == "") {
				return &ValidationError{Row: i + 1, Field: rule.label}
			}
		}
	}

	return nil
}
