package model

import (
	"time"

	"github.com/google/uuid"
)

// ItemSet is the merged, authoritative item list for one workflow: the output
// of the last reconciliation plus any hand-added items. FlatFeeMode mirrors
// the workflow's billing mode at the time of the last recompute so totals
// never double-count.
type ItemSet struct {
	Labor       []LaborItem    `json:"labor"`
	Materials   []MaterialItem `json:"materials"`
	FlatFees    []FlatFeeItem  `json:"flat_fees,omitempty"`
	FlatFeeMode bool           `json:"flat_fee_mode,omitempty"`
	Notes       string         `json:"notes,omitempty"`
}

// Project is the full persisted estimate: per-workflow design snapshots and
// their merged item lists. Every field serializes to plain JSON so the
// project round-trips through files and the database without loss.
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Client    string `json:"client"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	Demolition  DemolitionDesign  `json:"demolition"`
	ShowerWalls ShowerWallsDesign `json:"shower_walls"`
	ShowerBase  ShowerBaseDesign  `json:"shower_base"`
	Floors      FloorsDesign      `json:"floors"`
	Finishings  FinishingsDesign  `json:"finishings"`
	Structural  StructuralDesign  `json:"structural"`
	Trades      TradesDesign      `json:"trades"`

	Items map[Workflow]*ItemSet `json:"items"`
}

// NewProject creates an empty project with default (all-off) designs.
func NewProject(name, client string) *Project {
	now := time.Now().UTC().Format(time.RFC3339)
	return &Project{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Client:    client,
		CreatedAt: now,
		UpdatedAt: now,
		Items:     map[Workflow]*ItemSet{},
	}
}

// ItemsFor returns the item set for a workflow, creating it if absent.
func (p *Project) ItemsFor(w Workflow) *ItemSet {
	if p.Items == nil {
		p.Items = map[Workflow]*ItemSet{}
	}
	set, ok := p.Items[w]
	if !ok {
		set = &ItemSet{Labor: []LaborItem{}, Materials: []MaterialItem{}}
		p.Items[w] = set
	}
	return set
}

// Touch updates the modification timestamp.
func (p *Project) Touch() {
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}
