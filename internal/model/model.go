// Package model defines the renovation estimate domain model: dimensions,
// walls, labor and material line items, per-workflow design state, and the
// project container that ties them together for save/load.
package model

import (
	"strings"

	"github.com/google/uuid"
)

// Origin marks whether a line item was produced by the derivation engine or
// added by hand. Custom items are never touched by recomputation.
type Origin string

const (
	OriginComputed Origin = "computed"
	OriginCustom   Origin = "custom"
)

// CustomIDPrefix is the id namespace for hand-added items. Computed ids come
// from the rules catalog and never carry this prefix, so the two sets stay
// disjoint even if the Origin tag is lost in transit.
const CustomIDPrefix = "custom-"

// LaborItem is one hourly labor line. Hours and Rate are numeric strings to
// preserve the exact formatting the user typed; parse with Num before doing
// arithmetic.
type LaborItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Hours  string `json:"hours"`
	Rate   string `json:"rate"`
	Scope  string `json:"scope"`
	Origin Origin `json:"origin"`
}

// Total returns hours × rate.
func (li LaborItem) Total() float64 {
	return Num(li.Hours) * Num(li.Rate)
}

// IsCustom reports whether the item belongs to the user-owned namespace.
func (li LaborItem) IsCustom() bool {
	return li.Origin == OriginCustom || strings.HasPrefix(li.ID, CustomIDPrefix)
}

// MaterialItem is one material line. Quantity and Price are numeric strings.
type MaterialItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Price    string `json:"price"`
	Scope    string `json:"scope"`
	Origin   Origin `json:"origin"`
}

// Total returns quantity × price.
func (mi MaterialItem) Total() float64 {
	return Num(mi.Quantity) * Num(mi.Price)
}

// IsCustom reports whether the item belongs to the user-owned namespace.
func (mi MaterialItem) IsCustom() bool {
	return mi.Origin == OriginCustom || strings.HasPrefix(mi.ID, CustomIDPrefix)
}

// FlatFeeItem replaces hourly labor when a workflow is billed as a single
// flat charge. A workflow's labor total uses flat fees XOR hourly items,
// never both.
type FlatFeeItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Scope     string `json:"scope"`
	Origin    Origin `json:"origin"`
}

// Total returns the flat charge amount.
func (fi FlatFeeItem) Total() float64 {
	return Num(fi.UnitPrice)
}

// IsCustom reports whether the item belongs to the user-owned namespace.
func (fi FlatFeeItem) IsCustom() bool {
	return fi.Origin == OriginCustom || strings.HasPrefix(fi.ID, CustomIDPrefix)
}

// NewCustomID returns a fresh id in the custom namespace.
func NewCustomID() string {
	return CustomIDPrefix + uuid.New().String()[:8]
}

// NewCustomLaborItem creates a user-added labor line.
func NewCustomLaborItem(scope, name, hours, rate string) LaborItem {
	return LaborItem{
		ID:     NewCustomID(),
		Name:   name,
		Hours:  hours,
		Rate:   rate,
		Scope:  scope,
		Origin: OriginCustom,
	}
}

// NewCustomMaterialItem creates a user-added material line.
func NewCustomMaterialItem(scope, name, quantity, unit, price string) MaterialItem {
	return MaterialItem{
		ID:       NewCustomID(),
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
		Price:    price,
		Scope:    scope,
		Origin:   OriginCustom,
	}
}
