package model

// Workflow identifies one work category of the renovation. Workflow values
// double as the scope tag on line items and as the id prefix of computed
// items ("floors/tile-box").
type Workflow string

const (
	WorkflowDemolition  Workflow = "demolition"
	WorkflowShowerWalls Workflow = "shower-walls"
	WorkflowShowerBase  Workflow = "shower-base"
	WorkflowFloors      Workflow = "floors"
	WorkflowFinishings  Workflow = "finishings"
	WorkflowStructural  Workflow = "structural"
	WorkflowTrades      Workflow = "trades"
)

// Title returns the human-readable section heading for a workflow.
func (w Workflow) Title() string {
	switch w {
	case WorkflowDemolition:
		return "Demolition"
	case WorkflowShowerWalls:
		return "Shower Walls"
	case WorkflowShowerBase:
		return "Shower Base"
	case WorkflowFloors:
		return "Floors"
	case WorkflowFinishings:
		return "Finishings"
	case WorkflowStructural:
		return "Structural"
	case WorkflowTrades:
		return "Plumbing & Electrical"
	default:
		return string(w)
	}
}

// AllWorkflows lists every workflow in presentation order.
var AllWorkflows = []Workflow{
	WorkflowDemolition,
	WorkflowShowerWalls,
	WorkflowShowerBase,
	WorkflowFloors,
	WorkflowFinishings,
	WorkflowStructural,
	WorkflowTrades,
}

// Tile size keys understood by the rule tables.
const (
	TileSizeNone   = ""
	TileSize12x12  = "12x12"
	TileSize12x24  = "12x24"
	TileSize24x24  = "24x24"
	TileSizeSubway = "subway"
	TileSizeMosaic = "mosaic"
)

// Tile pattern keys understood by the rule tables.
const (
	PatternStacked     = "stacked"
	PatternOffsetThird = "offset-third"
	PatternOffsetHalf  = "offset-half"
	PatternHerringbone = "herringbone"
)

// Waterproofing system keys.
const (
	WaterproofNone      = ""
	WaterproofSheet     = "sheet-membrane"
	WaterproofLiquid    = "liquid-membrane"
	WaterproofFoamBoard = "foam-board"
)

// Shower door keys.
const (
	DoorNone      = ""
	DoorFramed    = "framed"
	DoorFrameless = "frameless"
	DoorSliding   = "sliding"
)

// Shower base type keys.
const (
	BaseNone       = ""
	BaseTileMudBed = "tile-mud-bed"
	BaseAcrylic    = "acrylic"
	BaseStoneResin = "stone-resin"
)

// Drain keys.
const (
	DrainNone     = ""
	DrainStandard = "standard"
	DrainLinear   = "linear"
)

// DemolitionDesign holds the removal toggles and the optional flat-fee mode.
// When ChargeFlatFee is set, per-task hourly items are suppressed entirely
// and a single flat fee item is emitted instead.
type DemolitionDesign struct {
	RemoveTub         bool   `json:"remove_tub"`
	RemoveShower      bool   `json:"remove_shower"`
	RemoveVanity      bool   `json:"remove_vanity"`
	RemoveToilet      bool   `json:"remove_toilet"`
	RemoveFlooring    bool   `json:"remove_flooring"`
	RemoveWallTile    bool   `json:"remove_wall_tile"`
	RemoveAccessories bool   `json:"remove_accessories"`
	ChargeFlatFee     bool   `json:"charge_flat_fee"`
	FlatFeeAmount     string `json:"flat_fee_amount"`
}

// ShowerWallsDesign describes the tiled shower enclosure walls.
type ShowerWallsDesign struct {
	Walls        []Wall `json:"walls"`
	TileSize     string `json:"tile_size"`
	TilePattern  string `json:"tile_pattern"`
	Waterproof   string `json:"waterproofing"`
	NicheCount   int    `json:"niche_count"`
	Door         string `json:"door"`
	SupplyTile   bool   `json:"contractor_supplies_tile"`
	TileUnitCost string `json:"tile_unit_cost"` // per sq ft override, catalog default when empty
}

// ShowerBaseDesign describes the shower pan.
type ShowerBaseDesign struct {
	BaseType string `json:"base_type"`
	WidthIn  string `json:"width_in"`
	LengthIn string `json:"length_in"`
	Curb     bool   `json:"curb"`
	Drain    string `json:"drain"`
}

// FloorsDesign describes the bathroom floor: a main area plus optional extra
// sections, tile selection, and prep-task toggles.
type FloorsDesign struct {
	MainWidthIn   string         `json:"main_width_in"`
	MainLengthIn  string         `json:"main_length_in"`
	ExtraSections []FloorSection `json:"extra_sections"`
	TileSize      string         `json:"tile_size"`
	TilePattern   string         `json:"tile_pattern"`
	SupplyTile    bool           `json:"contractor_supplies_tile"`
	SelfLeveling  bool           `json:"self_leveling"`
	Membrane      bool           `json:"uncoupling_membrane"`
	HeatedFloor   bool           `json:"heated_floor"`
}

// Area returns the total floor area (main + extras) in square feet.
func (d FloorsDesign) Area() float64 {
	return InchesArea(d.MainWidthIn, d.MainLengthIn) + SectionsArea(d.ExtraSections)
}

// FinishingsDesign covers paint, fixture installs, and trim.
type FinishingsDesign struct {
	PaintAreaSqFt  string `json:"paint_area_sqft"`
	InstallVanity  bool   `json:"install_vanity"`
	InstallToilet  bool   `json:"install_toilet"`
	InstallMirror  bool   `json:"install_mirror"`
	AccessoryCount int    `json:"accessory_count"`
	TrimLinearFt   string `json:"trim_linear_ft"`
}

// StructuralDesign covers framing and subfloor work.
type StructuralDesign struct {
	SubfloorAreaSqFt string `json:"subfloor_area_sqft"`
	FramedWalls      int    `json:"framed_walls"`
	SisteredJoists   int    `json:"sistered_joists"`
	Blocking         bool   `json:"blocking"`
}

// TradesDesign covers plumbing and electrical counts.
type TradesDesign struct {
	PlumbingRoughIns  int  `json:"plumbing_rough_ins"`
	PotLights         int  `json:"pot_lights"`
	GFCIOutlets       int  `json:"gfci_outlets"`
	SwitchRelocations int  `json:"switch_relocations"`
	ExhaustFan        bool `json:"exhaust_fan"`
}
