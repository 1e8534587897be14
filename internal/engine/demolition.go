package engine

import (
	"github.com/renoworks/renoquote/internal/model"
	"github.com/renoworks/renoquote/internal/rules"
)

// DeriveDemolition emits one fixed-hours labor item per selected removal,
// plus a disposal line scaled by the number of selected tasks. In flat-fee
// mode every per-task item is suppressed and a single flat fee item carries
// the whole charge, so totals can never count both representations.
func DeriveDemolition(d model.DemolitionDesign, rate float64) Candidates {
	var c Candidates

	if d.ChargeFlatFee {
		c.FlatFeeMode = true
		entry, _ := rules.Lookup("demolition/flat-fee")
		c.FlatFees = append(c.FlatFees, model.FlatFeeItem{
			ID:        "demolition/flat-fee",
			Name:      entry.Name,
			UnitPrice: d.FlatFeeAmount,
			Scope:     string(model.WorkflowDemolition),
			Origin:    model.OriginComputed,
		})
		return c
	}

	tasks := []struct {
		on    bool
		id    string
		hours float64
	}{
		{d.RemoveTub, "demolition/tub-removal", rules.HoursDemoTub},
		{d.RemoveShower, "demolition/shower-removal", rules.HoursDemoShower},
		{d.RemoveVanity, "demolition/vanity-removal", rules.HoursDemoVanity},
		{d.RemoveToilet, "demolition/toilet-removal", rules.HoursDemoToilet},
		{d.RemoveFlooring, "demolition/flooring-removal", rules.HoursDemoFlooring},
		{d.RemoveWallTile, "demolition/wall-tile-removal", rules.HoursDemoWallTile},
		{d.RemoveAccessories, "demolition/accessories-removal", rules.HoursDemoAccessories},
	}

	selected := 0
	for _, t := range tasks {
		if !t.on {
			continue
		}
		c.Labor = append(c.Labor, labor(t.id, t.hours, rate))
		selected++
	}

	if selected > 0 {
		c.Materials = append(c.Materials, material("demolition/disposal", fmtCount(selected)))
	}
	return c
}
