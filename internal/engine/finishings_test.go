package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renoworks/renoquote/internal/model"
)

func TestDeriveFinishingsPaint(t *testing.T) {
	d := model.FinishingsDesign{PaintAreaSqFt: "360"}
	c := DeriveFinishings(d, 85)

	// 360 / 120 = 3 hours; ceil(360/350) = 2 gallons.
	assert.Equal(t, "3.00", findLabor(t, c.Labor, "finishings/paint-labor").Hours)
	assert.Equal(t, "2", findMaterial(t, c.Materials, "finishings/paint").Quantity)
	assert.True(t, hasMaterial(c.Materials, "finishings/paint-supplies"))
}

func TestDeriveFinishingsInstalls(t *testing.T) {
	d := model.FinishingsDesign{
		InstallVanity:  true,
		InstallToilet:  true,
		AccessoryCount: 4,
	}
	c := DeriveFinishings(d, 85)

	assert.Equal(t, "2.50", findLabor(t, c.Labor, "finishings/vanity-labor").Hours)
	assert.Equal(t, "1.25", findLabor(t, c.Labor, "finishings/toilet-labor").Hours)
	// 4 accessories at half an hour each.
	assert.Equal(t, "2.00", findLabor(t, c.Labor, "finishings/accessories-labor").Hours)
	// One caulk kit per install group: vanity, toilet, accessories.
	assert.Equal(t, "3", findMaterial(t, c.Materials, "finishings/caulk-kit").Quantity)
}

func TestDeriveFinishingsTrim(t *testing.T) {
	d := model.FinishingsDesign{TrimLinearFt: "40"}
	c := DeriveFinishings(d, 85)

	assert.Equal(t, "2.00", findLabor(t, c.Labor, "finishings/trim-labor").Hours)
	assert.Equal(t, "40.0", findMaterial(t, c.Materials, "finishings/trim").Quantity)
}

func TestDeriveFinishingsEmpty(t *testing.T) {
	c := DeriveFinishings(model.FinishingsDesign{}, 85)
	assert.Empty(t, c.Labor)
	assert.Empty(t, c.Materials)
}
