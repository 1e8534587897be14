package engine

import "github.com/renoworks/renoquote/internal/model"

// Recompute derives every workflow's candidates from the project's current
// design state and reconciles them into the stored item lists in place.
// Safe to call redundantly: with unchanged designs the stored lists come out
// identical.
func Recompute(p *model.Project, s model.Settings) {
	rate := s.HourlyRate
	apply(p, model.WorkflowDemolition, DeriveDemolition(p.Demolition, rate))
	apply(p, model.WorkflowShowerWalls, DeriveShowerWalls(p.ShowerWalls, rate))
	apply(p, model.WorkflowShowerBase, DeriveShowerBase(p.ShowerBase, rate))
	apply(p, model.WorkflowFloors, DeriveFloors(p.Floors, rate))
	apply(p, model.WorkflowFinishings, DeriveFinishings(p.Finishings, rate))
	apply(p, model.WorkflowStructural, DeriveStructural(p.Structural, rate))
	apply(p, model.WorkflowTrades, DeriveTrades(p.Trades, rate))
	p.Touch()
}

func apply(p *model.Project, w model.Workflow, c Candidates) {
	set := p.ItemsFor(w)
	set.Labor = ReconcileLabor(set.Labor, c.Labor)
	set.Materials = ReconcileMaterials(set.Materials, c.Materials)
	set.FlatFees = ReconcileFlatFees(set.FlatFees, c.FlatFees)
	set.FlatFeeMode = c.FlatFeeMode
}
