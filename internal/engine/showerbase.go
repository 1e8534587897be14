package engine

import (
	"github.com/renoworks/renoquote/internal/model"
	"github.com/renoworks/renoquote/internal/rules"
)

// DeriveShowerBase converts the pan selection into candidates. A mud-bed pan
// is area-driven (liner, deck mud, tile); prefab bases are unit items with
// fixed install hours. Curb and drain choices fire independently of the base
// type once a base is selected.
func DeriveShowerBase(d model.ShowerBaseDesign, rate float64) Candidates {
	var c Candidates
	area := model.InchesArea(d.WidthIn, d.LengthIn)

	switch d.BaseType {
	case model.BaseNone:
		// No base work selected; curb/drain are gated below on a selection.
	case model.BaseTileMudBed:
		if area > 0 {
			c.Labor = append(c.Labor,
				labor("shower-base/mud-bed-labor", rules.HoursMudBed, rate),
				labor("shower-base/base-tile-labor", area/rules.ProdBaseTile, rate),
			)
			c.Materials = append(c.Materials,
				material("shower-base/pan-liner", "1"),
				material("shower-base/deck-mud", fmtCount(units(area, rules.CoverDeckMudBag))),
				material("shower-base/base-tile", fmtQty(area*1.15)),
			)
		}
	case model.BaseAcrylic:
		c.Labor = append(c.Labor, labor("shower-base/install-labor", rules.HoursBaseAcrylic, rate))
		c.Materials = append(c.Materials, material("shower-base/acrylic-base", "1"))
	case model.BaseStoneResin:
		c.Labor = append(c.Labor, labor("shower-base/install-labor", rules.HoursBaseStoneResin, rate))
		c.Materials = append(c.Materials, material("shower-base/stone-resin-base", "1"))
	default:
		c.Labor = append(c.Labor, labor("shower-base/install-labor", rules.HoursBaseAcrylic, rate))
		c.Materials = append(c.Materials, material("shower-base/base-other", "1"))
	}

	if d.BaseType != model.BaseNone && d.Curb {
		c.Labor = append(c.Labor, labor("shower-base/curb-labor", rules.HoursCurb, rate))
		c.Materials = append(c.Materials, material("shower-base/curb-kit", "1"))
	}

	if d.Drain != model.DrainNone {
		switch d.Drain {
		case model.DrainStandard:
			c.Labor = append(c.Labor, labor("shower-base/drain-labor", rules.HoursDrainStandard, rate))
			c.Materials = append(c.Materials, material("shower-base/drain-standard", "1"))
		case model.DrainLinear:
			c.Labor = append(c.Labor, labor("shower-base/drain-labor", rules.HoursDrainLinear, rate))
			c.Materials = append(c.Materials, material("shower-base/drain-linear", "1"))
		default:
			c.Labor = append(c.Labor, labor("shower-base/drain-labor", rules.HoursDrainStandard, rate))
			c.Materials = append(c.Materials, material("shower-base/drain-other", "1"))
		}
	}

	return c
}
