package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renoworks/renoquote/internal/model"
)

func TestDeriveDemolitionHourly(t *testing.T) {
	d := model.DemolitionDesign{
		RemoveTub:    true,
		RemoveShower: true,
	}
	c := DeriveDemolition(d, 80)

	require.Len(t, c.Labor, 2)
	assert.False(t, c.FlatFeeMode)
	assert.Empty(t, c.FlatFees)

	tub := findLabor(t, c.Labor, "demolition/tub-removal")
	assert.Equal(t, "3.00", tub.Hours)
	assert.Equal(t, "80.00", tub.Rate)
	shower := findLabor(t, c.Labor, "demolition/shower-removal")
	assert.Equal(t, "4.00", shower.Hours)

	// Two selected tasks at $80/hr: (3 + 4) x 80.
	var total float64
	for _, li := range c.Labor {
		total += li.Total()
	}
	assert.InDelta(t, 560.0, total, 0.001)

	disposal := findMaterial(t, c.Materials, "demolition/disposal")
	assert.Equal(t, "2", disposal.Quantity)
}

func TestDeriveDemolitionNothingSelected(t *testing.T) {
	c := DeriveDemolition(model.DemolitionDesign{}, 80)
	assert.Empty(t, c.Labor)
	assert.Empty(t, c.Materials)
}

func TestDeriveDemolitionFlatFee(t *testing.T) {
	d := model.DemolitionDesign{
		RemoveTub:     true,
		RemoveShower:  true,
		ChargeFlatFee: true,
		FlatFeeAmount: "1200",
	}
	c := DeriveDemolition(d, 80)

	assert.True(t, c.FlatFeeMode)
	assert.Empty(t, c.Labor, "flat-fee mode must suppress per-task items")
	assert.Empty(t, c.Materials)
	require.Len(t, c.FlatFees, 1)
	assert.Equal(t, "demolition/flat-fee", c.FlatFees[0].ID)
	assert.InDelta(t, 1200.0, c.FlatFees[0].Total(), 0.001)
}
