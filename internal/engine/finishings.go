package engine

import (
	"github.com/renoworks/renoquote/internal/model"
	"github.com/renoworks/renoquote/internal/rules"
)

// DeriveFinishings covers paint, fixture installs, and trim. One caulk &
// fastener kit is added per selected install group.
func DeriveFinishings(d model.FinishingsDesign, rate float64) Candidates {
	var c Candidates

	paintArea := model.Num(d.PaintAreaSqFt)
	if paintArea > 0 {
		c.Labor = append(c.Labor, labor("finishings/paint-labor", paintArea/rules.ProdPainting, rate))
		c.Materials = append(c.Materials,
			material("finishings/paint", fmtCount(units(paintArea, rules.CoverPaintGallon))),
			material("finishings/paint-supplies", "1"),
		)
	}

	installs := 0
	if d.InstallVanity {
		c.Labor = append(c.Labor, labor("finishings/vanity-labor", rules.HoursVanityInstall, rate))
		installs++
	}
	if d.InstallToilet {
		c.Labor = append(c.Labor, labor("finishings/toilet-labor", rules.HoursToiletInstall, rate))
		installs++
	}
	if d.InstallMirror {
		c.Labor = append(c.Labor, labor("finishings/mirror-labor", rules.HoursMirrorInstall, rate))
		installs++
	}
	if d.AccessoryCount > 0 {
		c.Labor = append(c.Labor, labor("finishings/accessories-labor", float64(d.AccessoryCount)*rules.HoursPerAccessory, rate))
		installs++
	}
	if installs > 0 {
		c.Materials = append(c.Materials, material("finishings/caulk-kit", fmtCount(installs)))
	}

	trimFt := model.Num(d.TrimLinearFt)
	if trimFt > 0 {
		c.Labor = append(c.Labor, labor("finishings/trim-labor", trimFt/rules.ProdTrim, rate))
		c.Materials = append(c.Materials, material("finishings/trim", fmtQty(trimFt)))
	}

	return c
}
