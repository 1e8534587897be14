package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renoworks/renoquote/internal/model"
)

func threeWallEnclosure() []model.Wall {
	// 8' tall: back 5' wide, sides 3' wide each. 40 + 24 + 24 = 88 sq ft.
	return []model.Wall{
		{ID: "w1", Label: "back", Height: model.Dimension{Feet: 8}, Width: model.Dimension{Feet: 5}},
		{ID: "w2", Label: "left", Height: model.Dimension{Feet: 8}, Width: model.Dimension{Feet: 3}},
		{ID: "w3", Label: "right", Height: model.Dimension{Feet: 8}, Width: model.Dimension{Feet: 3}},
	}
}

func TestDeriveShowerWallsTiling(t *testing.T) {
	d := model.ShowerWallsDesign{
		Walls:       threeWallEnclosure(),
		TileSize:    model.TileSize12x24,
		TilePattern: model.PatternStacked,
		SupplyTile:  true,
	}
	c := DeriveShowerWalls(d, 80)

	// 88 / 10 * 0.9 = 7.92 hours.
	tile := findLabor(t, c.Labor, "shower-walls/tile-labor")
	assert.Equal(t, "7.92", tile.Hours)

	// 88 * 1.10 = 96.8 sq ft of tile purchased.
	tileMat := findMaterial(t, c.Materials, "shower-walls/tile")
	assert.Equal(t, "96.8", tileMat.Quantity)
	assert.Equal(t, "4.50", tileMat.Price, "no override keeps the catalog price")

	// ceil(96.8 / 50) = 2 bags; grout ceil(88 / 100) = 1.
	assert.Equal(t, "2", findMaterial(t, c.Materials, "shower-walls/thinset").Quantity)
	assert.Equal(t, "1", findMaterial(t, c.Materials, "shower-walls/grout").Quantity)
}

func TestDeriveShowerWallsTileCostOverride(t *testing.T) {
	d := model.ShowerWallsDesign{
		Walls:        threeWallEnclosure(),
		TileSize:     model.TileSize12x24,
		SupplyTile:   true,
		TileUnitCost: "7.95",
	}
	c := DeriveShowerWalls(d, 80)
	assert.Equal(t, "7.95", findMaterial(t, c.Materials, "shower-walls/tile").Price)
}

func TestDeriveShowerWallsNoTileSize(t *testing.T) {
	d := model.ShowerWallsDesign{Walls: threeWallEnclosure()}
	c := DeriveShowerWalls(d, 80)
	assert.False(t, hasLabor(c.Labor, "shower-walls/tile-labor"),
		"tiling must not fire without a tile size")
}

func TestDeriveShowerWallsNoWalls(t *testing.T) {
	d := model.ShowerWallsDesign{
		TileSize:   model.TileSize12x24,
		Waterproof: model.WaterproofSheet,
	}
	c := DeriveShowerWalls(d, 80)
	assert.Empty(t, c.Labor, "zero wall area must produce no area-driven work")
}

func TestDeriveShowerWallsWaterproofing(t *testing.T) {
	walls := threeWallEnclosure()

	t.Run("sheet membrane", func(t *testing.T) {
		c := DeriveShowerWalls(model.ShowerWallsDesign{Walls: walls, Waterproof: model.WaterproofSheet}, 80)
		// 88 / 40 = 2.2 hours; ceil(88/108) = 1 roll, seam tape matches.
		assert.Equal(t, "2.20", findLabor(t, c.Labor, "shower-walls/waterproofing-labor").Hours)
		assert.Equal(t, "1", findMaterial(t, c.Materials, "shower-walls/membrane-roll").Quantity)
		assert.Equal(t, "1", findMaterial(t, c.Materials, "shower-walls/seam-tape").Quantity)
	})

	t.Run("liquid membrane", func(t *testing.T) {
		c := DeriveShowerWalls(model.ShowerWallsDesign{Walls: walls, Waterproof: model.WaterproofLiquid}, 80)
		assert.Equal(t, "2", findMaterial(t, c.Materials, "shower-walls/liquid-membrane").Quantity)
	})

	t.Run("foam board", func(t *testing.T) {
		c := DeriveShowerWalls(model.ShowerWallsDesign{Walls: walls, Waterproof: model.WaterproofFoamBoard}, 80)
		// ceil(88/32) = 3 boards, one fastener kit per 10 boards.
		assert.Equal(t, "3", findMaterial(t, c.Materials, "shower-walls/foam-board").Quantity)
		assert.Equal(t, "1", findMaterial(t, c.Materials, "shower-walls/fastener-kit").Quantity)
	})

	t.Run("unknown system falls back to generic kit", func(t *testing.T) {
		c := DeriveShowerWalls(model.ShowerWallsDesign{Walls: walls, Waterproof: "mystery"}, 80)
		assert.Equal(t, "1", findMaterial(t, c.Materials, "shower-walls/waterproofing-other").Quantity)
		assert.True(t, hasLabor(c.Labor, "shower-walls/waterproofing-labor"))
	})
}

func TestDeriveShowerWallsNichesAndDoor(t *testing.T) {
	d := model.ShowerWallsDesign{
		Walls:      threeWallEnclosure(),
		NicheCount: 2,
		Door:       model.DoorFrameless,
	}
	c := DeriveShowerWalls(d, 80)

	niche := findLabor(t, c.Labor, "shower-walls/niche-labor")
	assert.Equal(t, "5.00", niche.Hours)
	assert.Equal(t, "2", findMaterial(t, c.Materials, "shower-walls/niche").Quantity)

	require.True(t, hasLabor(c.Labor, "shower-walls/door-labor"))
	assert.True(t, hasMaterial(c.Materials, "shower-walls/door-frameless"))
}

func TestDeriveShowerWallsDeterministic(t *testing.T) {
	d := model.ShowerWallsDesign{
		Walls:       threeWallEnclosure(),
		TileSize:    model.TileSizeSubway,
		TilePattern: model.PatternOffsetHalf,
		Waterproof:  model.WaterproofFoamBoard,
		NicheCount:  1,
		Door:        model.DoorSliding,
		SupplyTile:  true,
	}
	assert.Equal(t, DeriveShowerWalls(d, 80), DeriveShowerWalls(d, 80))
}

func TestDeriveShowerWallsUnknownDoor(t *testing.T) {
	d := model.ShowerWallsDesign{Door: "barn"}
	c := DeriveShowerWalls(d, 80)
	assert.True(t, hasMaterial(c.Materials, "shower-walls/door-other"),
		"unknown door type must fall back to the generic door entry")
}
