package model

// Settings holds the contractor profile applied to every estimate: the
// default hourly rate used by derivation, the pricing knobs applied to the
// aggregated subtotal, and the identity block printed on exports.
type Settings struct {
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`

	HourlyRate      float64 `json:"hourly_rate"`
	MarkupPercent   float64 `json:"markup_percent"`
	DiscountPercent float64 `json:"discount_percent"`
	TaxRate         float64 `json:"tax_rate"` // decimal, e.g. 0.13
	Currency        string  `json:"currency"`
}

// DefaultSettings returns the profile used until the contractor saves one.
func DefaultSettings() Settings {
	return Settings{
		HourlyRate:      85,
		MarkupPercent:   15,
		DiscountPercent: 0,
		TaxRate:         0.13,
		Currency:        "$",
	}
}
