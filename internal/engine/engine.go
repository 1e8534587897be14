// Package engine is the derivation and reconciliation core of the estimator.
// Derivation converts a workflow's design choices into candidate labor and
// material line items; reconciliation merges candidates against the persisted
// item list without ever discarding user-added or user-edited data. All
// functions are pure except for anomaly logging.
package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/renoworks/renoquote/internal/model"
	"github.com/renoworks/renoquote/internal/rules"
)

// Candidates is the output of one workflow derivation: freshly computed
// items only, never custom ones.
type Candidates struct {
	Labor       []model.LaborItem
	Materials   []model.MaterialItem
	FlatFees    []model.FlatFeeItem
	FlatFeeMode bool
}

// fmtHours renders labor hours with 2 decimals for display. Full precision is
// kept until this final format step.
func fmtHours(h float64) string {
	return fmt.Sprintf("%.2f", h)
}

// fmtMoney renders a rate or unit price with 2 decimals.
func fmtMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// fmtQty renders a continuous quantity (sq ft, linear ft) with 1 decimal.
func fmtQty(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// fmtCount renders a whole-unit quantity.
func fmtCount(n int) string {
	return strconv.Itoa(n)
}

// units converts an area into whole purchasable units at the given coverage.
// Non-positive inputs yield 0 so gated sub-features emit nothing instead of
// zero-valued placeholders.
func units(area, coverage float64) int {
	if area <= 0 || coverage <= 0 {
		return 0
	}
	return int(math.Ceil(area / coverage))
}

// ceilDiv rounds n/d up for count-derived bundle quantities.
func ceilDiv(n, d int) int {
	if n <= 0 || d <= 0 {
		return 0
	}
	return (n + d - 1) / d
}

// scopeOf extracts the workflow tag from a computed id ("floors/tile-box").
func scopeOf(id string) string {
	if i := strings.IndexByte(id, '/'); i > 0 {
		return id[:i]
	}
	return id
}

// labor builds a computed labor item from its catalog entry.
func labor(id string, hours, rate float64) model.LaborItem {
	entry, _ := rules.Lookup(id)
	return model.LaborItem{
		ID:     id,
		Name:   entry.Name,
		Hours:  fmtHours(hours),
		Rate:   fmtMoney(rate),
		Scope:  scopeOf(id),
		Origin: model.OriginComputed,
	}
}

// material builds a computed material item from its catalog entry with the
// catalog default price.
func material(id, quantity string) model.MaterialItem {
	entry, _ := rules.Lookup(id)
	return model.MaterialItem{
		ID:       id,
		Name:     entry.Name,
		Quantity: quantity,
		Unit:     entry.Unit,
		Price:    fmtMoney(entry.Price),
		Scope:    scopeOf(id),
		Origin:   model.OriginComputed,
	}
}

// materialPriced is material with a design-supplied unit price override.
// An empty override keeps the catalog default.
func materialPriced(id, quantity, price string) model.MaterialItem {
	mi := material(id, quantity)
	if price != "" {
		mi.Price = price
	}
	return mi
}
