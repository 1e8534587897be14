package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renoworks/renoquote/internal/model"
)

func TestDeriveFloorsTiling(t *testing.T) {
	// 60" x 96" = 40 sq ft main area.
	d := model.FloorsDesign{
		MainWidthIn:  "60",
		MainLengthIn: "96",
		TileSize:     model.TileSize12x24,
		TilePattern:  model.PatternStacked,
		SupplyTile:   true,
	}
	c := DeriveFloors(d, 85)

	// 40 / 20 * 0.9 = 1.80 hours.
	assert.Equal(t, "1.80", findLabor(t, c.Labor, "floors/tile-labor").Hours)

	// 40 * 1.10 = 44 sq ft at 16 sq ft per box: 3 boxes.
	assert.Equal(t, "3", findMaterial(t, c.Materials, "floors/tile-box").Quantity)
	assert.Equal(t, "1", findMaterial(t, c.Materials, "floors/thinset").Quantity)
	assert.Equal(t, "1", findMaterial(t, c.Materials, "floors/grout").Quantity)
}

func TestDeriveFloorsExtraSections(t *testing.T) {
	d := model.FloorsDesign{
		MainWidthIn:  "60",
		MainLengthIn: "96",
		ExtraSections: []model.FloorSection{
			{ID: "s1", Width: "24", Length: "36"}, // 6 sq ft
		},
		TileSize: model.TileSize12x12,
	}
	c := DeriveFloors(d, 85)

	// (40 + 6) / 20 = 2.30 hours at the 12x12 multiplier of 1.0.
	assert.Equal(t, "2.30", findLabor(t, c.Labor, "floors/tile-labor").Hours)
}

func TestDeriveFloorsNoArea(t *testing.T) {
	d := model.FloorsDesign{TileSize: model.TileSize12x24, SelfLeveling: true, HeatedFloor: true}
	c := DeriveFloors(d, 85)
	assert.Empty(t, c.Labor)
	assert.Empty(t, c.Materials)
}

func TestDeriveFloorsTileNotSupplied(t *testing.T) {
	d := model.FloorsDesign{
		MainWidthIn:  "60",
		MainLengthIn: "96",
		TileSize:     model.TileSize12x24,
	}
	c := DeriveFloors(d, 85)
	assert.False(t, hasMaterial(c.Materials, "floors/tile-box"),
		"tile boxes must be gated behind the supply toggle")
	assert.True(t, hasMaterial(c.Materials, "floors/thinset"),
		"setting materials are always the contractor's")
}

func TestDeriveFloorsDeterministic(t *testing.T) {
	d := model.FloorsDesign{
		MainWidthIn:  "60",
		MainLengthIn: "96",
		TileSize:     model.TileSize12x24,
		TilePattern:  model.PatternHerringbone,
		SupplyTile:   true,
		SelfLeveling: true,
		HeatedFloor:  true,
	}
	first := DeriveFloors(d, 85)
	second := DeriveFloors(d, 85)
	assert.Equal(t, first, second, "deriving the same design twice must yield identical output")
}

func TestDeriveFloorsAreaMonotonic(t *testing.T) {
	smaller := model.FloorsDesign{
		MainWidthIn:  "60",
		MainLengthIn: "96",
		TileSize:     model.TileSize12x24,
		TilePattern:  model.PatternStacked,
		SupplyTile:   true,
		SelfLeveling: true,
	}
	larger := smaller
	larger.MainLengthIn = "97"

	a := DeriveFloors(smaller, 85)
	b := DeriveFloors(larger, 85)

	// A bigger floor can never need less work or fewer units of anything.
	for _, la := range a.Labor {
		lb := findLabor(t, b.Labor, la.ID)
		assert.GreaterOrEqual(t, model.Num(lb.Hours), model.Num(la.Hours),
			"hours for %s shrank when the floor grew", la.ID)
	}
	for _, ma := range a.Materials {
		mb := findMaterial(t, b.Materials, ma.ID)
		assert.GreaterOrEqual(t, model.Num(mb.Quantity), model.Num(ma.Quantity),
			"quantity of %s shrank when the floor grew", ma.ID)
	}
}

func TestDeriveFloorsPrepTasks(t *testing.T) {
	d := model.FloorsDesign{
		MainWidthIn:  "60",
		MainLengthIn: "96",
		SelfLeveling: true,
		Membrane:     true,
		HeatedFloor:  true,
	}
	c := DeriveFloors(d, 85)

	assert.Equal(t, "1", findMaterial(t, c.Materials, "floors/leveler").Quantity)
	assert.Equal(t, "1", findMaterial(t, c.Materials, "floors/membrane-roll").Quantity)
	assert.Equal(t, "2", findMaterial(t, c.Materials, "floors/heat-mat").Quantity)
	assert.Equal(t, "1", findMaterial(t, c.Materials, "floors/thermostat").Quantity)
	assert.True(t, hasLabor(c.Labor, "floors/leveling-labor"))
	assert.True(t, hasLabor(c.Labor, "floors/membrane-labor"))
	assert.True(t, hasLabor(c.Labor, "floors/heat-labor"))
}
