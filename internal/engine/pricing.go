package engine

// PriceBreakdown is the client-facing money pipeline: markup, then discount,
// then tax, applied to the aggregated subtotal.
type PriceBreakdown struct {
	Subtotal     float64 `json:"subtotal"`
	Markup       float64 `json:"markup"`
	WithMarkup   float64 `json:"with_markup"`
	Discount     float64 `json:"discount"`
	WithDiscount float64 `json:"with_discount"`
	Tax          float64 `json:"tax"`
	Total        float64 `json:"total"`
}

// FinalPrice applies markup %, discount %, and a decimal tax rate to the
// subtotal. The result is clamped to zero so a discount over 100% can never
// produce a negative invoice.
func FinalPrice(subtotal, markupPercent, discountPercent, taxRate float64) PriceBreakdown {
	withMarkup := subtotal * (1 + markupPercent/100)
	withDiscount := withMarkup * (1 - discountPercent/100)
	tax := withDiscount * taxRate
	total := withDiscount + tax
	if total < 0 {
		total = 0
	}
	return PriceBreakdown{
		Subtotal:     subtotal,
		Markup:       withMarkup - subtotal,
		WithMarkup:   withMarkup,
		Discount:     withMarkup - withDiscount,
		WithDiscount: withDiscount,
		Tax:          tax,
		Total:        total,
	}
}
