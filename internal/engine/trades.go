package engine

import (
	"github.com/renoworks/renoquote/internal/model"
	"github.com/renoworks/renoquote/internal/rules"
)

// DeriveTrades covers plumbing and electrical counts: hours per unit times
// count, plus the matching unit materials.
func DeriveTrades(d model.TradesDesign, rate float64) Candidates {
	var c Candidates

	if d.PlumbingRoughIns > 0 {
		c.Labor = append(c.Labor, labor("trades/plumbing-labor", float64(d.PlumbingRoughIns)*rules.HoursPerRoughIn, rate))
		c.Materials = append(c.Materials, material("trades/rough-in-kit", fmtCount(d.PlumbingRoughIns)))
	}

	if d.PotLights > 0 {
		c.Labor = append(c.Labor, labor("trades/pot-light-labor", float64(d.PotLights)*rules.HoursPerPotLight, rate))
		c.Materials = append(c.Materials, material("trades/pot-light", fmtCount(d.PotLights)))
	}

	if d.GFCIOutlets > 0 {
		c.Labor = append(c.Labor, labor("trades/gfci-labor", float64(d.GFCIOutlets)*rules.HoursPerGFCI, rate))
		c.Materials = append(c.Materials, material("trades/gfci", fmtCount(d.GFCIOutlets)))
	}

	if d.SwitchRelocations > 0 {
		c.Labor = append(c.Labor, labor("trades/switch-labor", float64(d.SwitchRelocations)*rules.HoursPerSwitchMove, rate))
	}

	if d.ExhaustFan {
		c.Labor = append(c.Labor, labor("trades/fan-labor", rules.HoursExhaustFan, rate))
		c.Materials = append(c.Materials,
			material("trades/exhaust-fan", "1"),
			material("trades/duct-kit", "1"),
		)
	}

	return c
}
