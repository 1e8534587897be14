package engine

import (
	"github.com/renoworks/renoquote/internal/model"
	"github.com/renoworks/renoquote/internal/rules"
)

// DeriveFloors converts the measured floor area and tile/prep selections into
// candidates. Tile boxes are gated behind the contractor-supplies-tile
// toggle; prep tasks (leveling, uncoupling membrane, heated floor) each fire
// independently against the same area.
func DeriveFloors(d model.FloorsDesign, rate float64) Candidates {
	var c Candidates
	area := d.Area()
	if area <= 0 {
		return c
	}

	if d.TileSize != model.TileSizeNone {
		hours := area / rules.ProdFloorTile * rules.SizeMultiplier(d.TileSize) * rules.PatternMultiplier(d.TilePattern)
		c.Labor = append(c.Labor, labor("floors/tile-labor", hours, rate))

		wasteArea := area * rules.WasteFactor(d.TilePattern)
		if d.SupplyTile {
			boxes := units(wasteArea, rules.BoxCoverage(d.TileSize))
			c.Materials = append(c.Materials, material("floors/tile-box", fmtCount(boxes)))
		}
		c.Materials = append(c.Materials,
			material("floors/thinset", fmtCount(units(wasteArea, rules.CoverThinsetBag))),
			material("floors/grout", fmtCount(units(area, rules.CoverGroutBag))),
		)
	}

	if d.SelfLeveling {
		c.Labor = append(c.Labor, labor("floors/leveling-labor", area/rules.ProdLeveling, rate))
		c.Materials = append(c.Materials, material("floors/leveler", fmtCount(units(area, rules.CoverLevelerBag))))
	}

	if d.Membrane {
		c.Labor = append(c.Labor, labor("floors/membrane-labor", area/rules.ProdUncoupling, rate))
		c.Materials = append(c.Materials, material("floors/membrane-roll", fmtCount(units(area, rules.CoverUncouplingRoll))))
	}

	if d.HeatedFloor {
		c.Labor = append(c.Labor, labor("floors/heat-labor", area/rules.ProdHeatedFloor, rate))
		c.Materials = append(c.Materials,
			material("floors/heat-mat", fmtCount(units(area, rules.CoverHeatMat))),
			material("floors/thermostat", "1"),
		)
	}

	return c
}
