package engine

import (
	"github.com/renoworks/renoquote/internal/model"
	"github.com/renoworks/renoquote/internal/rules"
)

// DeriveShowerWalls converts the enclosure wall list and tile/waterproofing
// selections into labor and material candidates. Tiling fires only when at
// least one wall has area and a tile size is chosen; each waterproofing
// system selects its own material kit.
func DeriveShowerWalls(d model.ShowerWallsDesign, rate float64) Candidates {
	var c Candidates
	area := model.WallsArea(d.Walls)

	if area > 0 && d.TileSize != model.TileSizeNone {
		hours := area / rules.ProdWallTile * rules.SizeMultiplier(d.TileSize) * rules.PatternMultiplier(d.TilePattern)
		c.Labor = append(c.Labor, labor("shower-walls/tile-labor", hours, rate))

		wasteArea := area * rules.WasteFactor(d.TilePattern)
		if d.SupplyTile {
			c.Materials = append(c.Materials,
				materialPriced("shower-walls/tile", fmtQty(wasteArea), d.TileUnitCost))
		}
		c.Materials = append(c.Materials,
			material("shower-walls/thinset", fmtCount(units(wasteArea, rules.CoverThinsetBag))),
			material("shower-walls/grout", fmtCount(units(area, rules.CoverGroutBag))),
		)
	}

	if area > 0 && d.Waterproof != model.WaterproofNone {
		switch d.Waterproof {
		case model.WaterproofSheet:
			rolls := units(area, rules.CoverSheetRoll)
			c.Labor = append(c.Labor, labor("shower-walls/waterproofing-labor", area/rules.ProdSheetMembrane, rate))
			c.Materials = append(c.Materials,
				material("shower-walls/membrane-roll", fmtCount(rolls)),
				material("shower-walls/seam-tape", fmtCount(rolls)),
			)
		case model.WaterproofLiquid:
			c.Labor = append(c.Labor, labor("shower-walls/waterproofing-labor", area/rules.ProdLiquidMembrane, rate))
			c.Materials = append(c.Materials,
				material("shower-walls/liquid-membrane", fmtCount(units(area, rules.CoverLiquidBucket))),
			)
		case model.WaterproofFoamBoard:
			boards := units(area, rules.CoverFoamBoard)
			c.Labor = append(c.Labor, labor("shower-walls/waterproofing-labor", area/rules.ProdFoamBoard, rate))
			c.Materials = append(c.Materials,
				material("shower-walls/foam-board", fmtCount(boards)),
				material("shower-walls/fastener-kit", fmtCount(ceilDiv(boards, 10))),
			)
		default:
			// Unrecognized system: cost must stay visible, so fall back to
			// the generic kit rather than dropping the selection.
			c.Labor = append(c.Labor, labor("shower-walls/waterproofing-labor", area/rules.ProdFoamBoard, rate))
			c.Materials = append(c.Materials, material("shower-walls/waterproofing-other", "1"))
		}
	}

	if d.NicheCount > 0 {
		c.Labor = append(c.Labor, labor("shower-walls/niche-labor", float64(d.NicheCount)*rules.HoursNiche, rate))
		c.Materials = append(c.Materials, material("shower-walls/niche", fmtCount(d.NicheCount)))
	}

	if d.Door != model.DoorNone {
		var hours float64
		var id string
		switch d.Door {
		case model.DoorFramed:
			hours, id = rules.HoursDoorFramed, "shower-walls/door-framed"
		case model.DoorFrameless:
			hours, id = rules.HoursDoorFrameless, "shower-walls/door-frameless"
		case model.DoorSliding:
			hours, id = rules.HoursDoorSliding, "shower-walls/door-sliding"
		default:
			hours, id = rules.HoursDoorFramed, "shower-walls/door-other"
		}
		c.Labor = append(c.Labor, labor("shower-walls/door-labor", hours, rate))
		c.Materials = append(c.Materials, material(id, "1"))
	}

	return c
}
