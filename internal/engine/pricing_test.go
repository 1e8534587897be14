package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalPrice(t *testing.T) {
	// 1000 +10% markup = 1100, -5% discount = 1045, +13% tax = 1180.85.
	b := FinalPrice(1000, 10, 5, 0.13)

	assert.InDelta(t, 1000.0, b.Subtotal, 0.001)
	assert.InDelta(t, 100.0, b.Markup, 0.001)
	assert.InDelta(t, 1100.0, b.WithMarkup, 0.001)
	assert.InDelta(t, 55.0, b.Discount, 0.001)
	assert.InDelta(t, 1045.0, b.WithDiscount, 0.001)
	assert.InDelta(t, 135.85, b.Tax, 0.001)
	assert.InDelta(t, 1180.85, b.Total, 0.001)
}

func TestFinalPriceNoAdjustments(t *testing.T) {
	b := FinalPrice(500, 0, 0, 0)
	assert.InDelta(t, 500.0, b.Total, 0.001)
	assert.Zero(t, b.Markup)
	assert.Zero(t, b.Tax)
}

func TestFinalPriceClampsNegativeTotal(t *testing.T) {
	b := FinalPrice(1000, 0, 150, 0.13)
	assert.Zero(t, b.Total, "an over-100% discount must clamp to a zero invoice")
}
