package engine

import "github.com/renoworks/renoquote/internal/model"

// Totals is the cost roll-up for one workflow or a whole project.
type Totals struct {
	Labor     float64 `json:"labor"`
	Materials float64 `json:"materials"`
	Grand     float64 `json:"grand"`
}

// WorkflowTotals sums one workflow's item set. In flat-fee mode only flat
// fee items count toward labor; otherwise only hourly items do. A nil or
// empty set contributes zero.
func WorkflowTotals(set *model.ItemSet) Totals {
	var t Totals
	if set == nil {
		return t
	}
	if set.FlatFeeMode {
		for _, fi := range set.FlatFees {
			t.Labor += fi.Total()
		}
	} else {
		for _, li := range set.Labor {
			t.Labor += li.Total()
		}
	}
	for _, mi := range set.Materials {
		t.Materials += mi.Total()
	}
	t.Grand = t.Labor + t.Materials
	return t
}

// ProjectTotals sums every workflow and returns the per-workflow breakdown
// alongside the project-wide totals.
func ProjectTotals(p *model.Project) (map[model.Workflow]Totals, Totals) {
	perWorkflow := make(map[model.Workflow]Totals, len(model.AllWorkflows))
	var grand Totals
	for _, w := range model.AllWorkflows {
		t := WorkflowTotals(p.Items[w])
		perWorkflow[w] = t
		grand.Labor += t.Labor
		grand.Materials += t.Materials
	}
	grand.Grand = grand.Labor + grand.Materials
	return perWorkflow, grand
}
