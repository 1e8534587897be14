package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renoworks/renoquote/internal/model"
)

func TestDeriveShowerBaseMudBed(t *testing.T) {
	// 36" x 48" = 12 sq ft pan.
	d := model.ShowerBaseDesign{
		BaseType: model.BaseTileMudBed,
		WidthIn:  "36",
		LengthIn: "48",
	}
	c := DeriveShowerBase(d, 80)

	assert.Equal(t, "6.00", findLabor(t, c.Labor, "shower-base/mud-bed-labor").Hours)
	// 12 / 8 = 1.5 hours of pan tiling.
	assert.Equal(t, "1.50", findLabor(t, c.Labor, "shower-base/base-tile-labor").Hours)

	assert.Equal(t, "1", findMaterial(t, c.Materials, "shower-base/pan-liner").Quantity)
	// ceil(12 / 6) = 2 bags of deck mud.
	assert.Equal(t, "2", findMaterial(t, c.Materials, "shower-base/deck-mud").Quantity)
	// 12 * 1.15 = 13.8 sq ft of tile.
	assert.Equal(t, "13.8", findMaterial(t, c.Materials, "shower-base/base-tile").Quantity)
}

func TestDeriveShowerBaseMudBedNoDimensions(t *testing.T) {
	c := DeriveShowerBase(model.ShowerBaseDesign{BaseType: model.BaseTileMudBed}, 80)
	assert.Empty(t, c.Labor, "mud bed without dimensions must emit nothing")
}

func TestDeriveShowerBasePrefab(t *testing.T) {
	c := DeriveShowerBase(model.ShowerBaseDesign{BaseType: model.BaseAcrylic}, 80)
	assert.Equal(t, "3.00", findLabor(t, c.Labor, "shower-base/install-labor").Hours)
	assert.True(t, hasMaterial(c.Materials, "shower-base/acrylic-base"))

	c = DeriveShowerBase(model.ShowerBaseDesign{BaseType: model.BaseStoneResin}, 80)
	assert.Equal(t, "3.50", findLabor(t, c.Labor, "shower-base/install-labor").Hours)
	assert.True(t, hasMaterial(c.Materials, "shower-base/stone-resin-base"))
}

func TestDeriveShowerBaseUnknownType(t *testing.T) {
	c := DeriveShowerBase(model.ShowerBaseDesign{BaseType: "copper-tub"}, 80)
	assert.True(t, hasMaterial(c.Materials, "shower-base/base-other"),
		"unknown base type must fall back to the generic base entry")
}

func TestDeriveShowerBaseCurbAndDrain(t *testing.T) {
	d := model.ShowerBaseDesign{
		BaseType: model.BaseAcrylic,
		Curb:     true,
		Drain:    model.DrainLinear,
	}
	c := DeriveShowerBase(d, 80)

	assert.True(t, hasLabor(c.Labor, "shower-base/curb-labor"))
	assert.True(t, hasMaterial(c.Materials, "shower-base/curb-kit"))
	assert.Equal(t, "1.50", findLabor(t, c.Labor, "shower-base/drain-labor").Hours)
	assert.True(t, hasMaterial(c.Materials, "shower-base/drain-linear"))
}

func TestDeriveShowerBaseCurbNeedsBase(t *testing.T) {
	c := DeriveShowerBase(model.ShowerBaseDesign{Curb: true}, 80)
	assert.False(t, hasLabor(c.Labor, "shower-base/curb-labor"),
		"curb work must be gated on a base selection")
}
