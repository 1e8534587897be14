package rules

// Kind distinguishes labor entries from material entries in the catalog.
type Kind int

const (
	KindLabor Kind = iota
	KindMaterial
	KindFlatFee
)

// Entry is the template a computed line item is built from. Price is a
// default the user may override in the editing screens; overrides survive
// recomputation. The position of an entry in the catalog slice is the
// canonical on-screen and PDF ordering of computed items.
type Entry struct {
	ID    string
	Name  string
	Kind  Kind
	Unit  string  // material entries only
	Price float64 // default unit price, material entries only
}

// Catalog lists every computed SKU in canonical order. Ids are
// "<workflow>/<purpose>" and deterministic, which is what lets the
// reconciliation engine match an item against its previous self.
var Catalog = []Entry{
	// Demolition
	{ID: "demolition/tub-removal", Name: "Remove bathtub", Kind: KindLabor},
	{ID: "demolition/shower-removal", Name: "Remove shower enclosure", Kind: KindLabor},
	{ID: "demolition/vanity-removal", Name: "Remove vanity", Kind: KindLabor},
	{ID: "demolition/toilet-removal", Name: "Remove toilet", Kind: KindLabor},
	{ID: "demolition/flooring-removal", Name: "Remove flooring", Kind: KindLabor},
	{ID: "demolition/wall-tile-removal", Name: "Remove wall tile", Kind: KindLabor},
	{ID: "demolition/accessories-removal", Name: "Remove accessories", Kind: KindLabor},
	{ID: "demolition/flat-fee", Name: "Demolition Flat Fee", Kind: KindFlatFee},
	{ID: "demolition/disposal", Name: "Debris disposal", Kind: KindMaterial, Unit: "load", Price: 45},

	// Shower walls
	{ID: "shower-walls/tile-labor", Name: "Tile shower walls", Kind: KindLabor},
	{ID: "shower-walls/waterproofing-labor", Name: "Waterproof shower walls", Kind: KindLabor},
	{ID: "shower-walls/niche-labor", Name: "Build shower niche", Kind: KindLabor},
	{ID: "shower-walls/door-labor", Name: "Install shower door", Kind: KindLabor},
	{ID: "shower-walls/tile", Name: "Wall tile", Kind: KindMaterial, Unit: "sq ft", Price: 4.50},
	{ID: "shower-walls/thinset", Name: "Thinset mortar", Kind: KindMaterial, Unit: "bag", Price: 22},
	{ID: "shower-walls/grout", Name: "Grout", Kind: KindMaterial, Unit: "bag", Price: 18},
	{ID: "shower-walls/membrane-roll", Name: "Sheet membrane", Kind: KindMaterial, Unit: "roll", Price: 110},
	{ID: "shower-walls/seam-tape", Name: "Seam tape & corners", Kind: KindMaterial, Unit: "roll", Price: 28},
	{ID: "shower-walls/liquid-membrane", Name: "Liquid membrane", Kind: KindMaterial, Unit: "bucket", Price: 95},
	{ID: "shower-walls/foam-board", Name: "Foam backer board", Kind: KindMaterial, Unit: "board", Price: 42},
	{ID: "shower-walls/fastener-kit", Name: "Board fasteners & washers", Kind: KindMaterial, Unit: "kit", Price: 35},
	{ID: "shower-walls/waterproofing-other", Name: "Waterproofing (other)", Kind: KindMaterial, Unit: "kit", Price: 200},
	{ID: "shower-walls/niche", Name: "Prefab niche", Kind: KindMaterial, Unit: "each", Price: 85},
	{ID: "shower-walls/door-framed", Name: "Framed shower door", Kind: KindMaterial, Unit: "each", Price: 450},
	{ID: "shower-walls/door-frameless", Name: "Frameless shower door", Kind: KindMaterial, Unit: "each", Price: 900},
	{ID: "shower-walls/door-sliding", Name: "Sliding shower door", Kind: KindMaterial, Unit: "each", Price: 650},
	{ID: "shower-walls/door-other", Name: "Shower door (other)", Kind: KindMaterial, Unit: "each", Price: 500},

	// Shower base
	{ID: "shower-base/mud-bed-labor", Name: "Build mud-bed pan", Kind: KindLabor},
	{ID: "shower-base/base-tile-labor", Name: "Tile shower base", Kind: KindLabor},
	{ID: "shower-base/install-labor", Name: "Install shower base", Kind: KindLabor},
	{ID: "shower-base/curb-labor", Name: "Build curb", Kind: KindLabor},
	{ID: "shower-base/drain-labor", Name: "Install drain", Kind: KindLabor},
	{ID: "shower-base/pan-liner", Name: "Pan liner & preslope kit", Kind: KindMaterial, Unit: "kit", Price: 75},
	{ID: "shower-base/deck-mud", Name: "Deck mud", Kind: KindMaterial, Unit: "bag", Price: 9.50},
	{ID: "shower-base/base-tile", Name: "Base tile", Kind: KindMaterial, Unit: "sq ft", Price: 6},
	{ID: "shower-base/acrylic-base", Name: "Acrylic shower base", Kind: KindMaterial, Unit: "each", Price: 600},
	{ID: "shower-base/stone-resin-base", Name: "Stone resin shower base", Kind: KindMaterial, Unit: "each", Price: 850},
	{ID: "shower-base/base-other", Name: "Shower base (other)", Kind: KindMaterial, Unit: "each", Price: 700},
	{ID: "shower-base/curb-kit", Name: "Curb kit", Kind: KindMaterial, Unit: "each", Price: 55},
	{ID: "shower-base/drain-standard", Name: "Standard drain", Kind: KindMaterial, Unit: "each", Price: 85},
	{ID: "shower-base/drain-linear", Name: "Linear drain", Kind: KindMaterial, Unit: "each", Price: 320},
	{ID: "shower-base/drain-other", Name: "Drain (other)", Kind: KindMaterial, Unit: "each", Price: 150},

	// Floors
	{ID: "floors/tile-labor", Name: "Tile floor", Kind: KindLabor},
	{ID: "floors/leveling-labor", Name: "Self-leveling prep", Kind: KindLabor},
	{ID: "floors/membrane-labor", Name: "Lay uncoupling membrane", Kind: KindLabor},
	{ID: "floors/heat-labor", Name: "Install heated floor", Kind: KindLabor},
	{ID: "floors/tile-box", Name: "Floor tile", Kind: KindMaterial, Unit: "box", Price: 58},
	{ID: "floors/thinset", Name: "Thinset mortar", Kind: KindMaterial, Unit: "bag", Price: 22},
	{ID: "floors/grout", Name: "Grout", Kind: KindMaterial, Unit: "bag", Price: 18},
	{ID: "floors/leveler", Name: "Self-leveling compound", Kind: KindMaterial, Unit: "bag", Price: 38},
	{ID: "floors/membrane-roll", Name: "Uncoupling membrane", Kind: KindMaterial, Unit: "roll", Price: 160},
	{ID: "floors/heat-mat", Name: "Floor heating mat", Kind: KindMaterial, Unit: "each", Price: 145},
	{ID: "floors/thermostat", Name: "Floor heating thermostat", Kind: KindMaterial, Unit: "each", Price: 165},

	// Finishings
	{ID: "finishings/paint-labor", Name: "Paint walls & ceiling", Kind: KindLabor},
	{ID: "finishings/vanity-labor", Name: "Install vanity", Kind: KindLabor},
	{ID: "finishings/toilet-labor", Name: "Install toilet", Kind: KindLabor},
	{ID: "finishings/mirror-labor", Name: "Install mirror", Kind: KindLabor},
	{ID: "finishings/accessories-labor", Name: "Install accessories", Kind: KindLabor},
	{ID: "finishings/trim-labor", Name: "Install trim & baseboard", Kind: KindLabor},
	{ID: "finishings/paint", Name: "Paint", Kind: KindMaterial, Unit: "gallon", Price: 45},
	{ID: "finishings/paint-supplies", Name: "Paint supplies", Kind: KindMaterial, Unit: "kit", Price: 25},
	{ID: "finishings/caulk-kit", Name: "Caulk & fasteners", Kind: KindMaterial, Unit: "kit", Price: 18},
	{ID: "finishings/trim", Name: "Trim stock", Kind: KindMaterial, Unit: "linear ft", Price: 2.80},

	// Structural
	{ID: "structural/subfloor-labor", Name: "Replace subfloor", Kind: KindLabor},
	{ID: "structural/framing-labor", Name: "Frame walls", Kind: KindLabor},
	{ID: "structural/joist-labor", Name: "Sister joists", Kind: KindLabor},
	{ID: "structural/blocking-labor", Name: "Install blocking", Kind: KindLabor},
	{ID: "structural/plywood", Name: "Subfloor plywood", Kind: KindMaterial, Unit: "sheet", Price: 62},
	{ID: "structural/subfloor-screws", Name: "Subfloor screws", Kind: KindMaterial, Unit: "box", Price: 14},
	{ID: "structural/framing-lumber", Name: "Framing lumber", Kind: KindMaterial, Unit: "kit", Price: 90},
	{ID: "structural/joist-lumber", Name: "Joist lumber", Kind: KindMaterial, Unit: "each", Price: 75},
	{ID: "structural/blocking-lumber", Name: "Blocking lumber", Kind: KindMaterial, Unit: "kit", Price: 35},

	// Trades
	{ID: "trades/plumbing-labor", Name: "Plumbing rough-in", Kind: KindLabor},
	{ID: "trades/pot-light-labor", Name: "Install pot lights", Kind: KindLabor},
	{ID: "trades/gfci-labor", Name: "Install GFCI outlets", Kind: KindLabor},
	{ID: "trades/switch-labor", Name: "Relocate switches", Kind: KindLabor},
	{ID: "trades/fan-labor", Name: "Install exhaust fan", Kind: KindLabor},
	{ID: "trades/rough-in-kit", Name: "Rough-in kit", Kind: KindMaterial, Unit: "each", Price: 120},
	{ID: "trades/pot-light", Name: "Pot light fixture", Kind: KindMaterial, Unit: "each", Price: 65},
	{ID: "trades/gfci", Name: "GFCI outlet", Kind: KindMaterial, Unit: "each", Price: 28},
	{ID: "trades/exhaust-fan", Name: "Exhaust fan unit", Kind: KindMaterial, Unit: "each", Price: 180},
	{ID: "trades/duct-kit", Name: "Duct & vent kit", Kind: KindMaterial, Unit: "kit", Price: 60},
}

// fallback is returned by Lookup for ids not in the catalog so an unknown
// option value still produces a visible line instead of silently losing cost.
var fallback = Entry{ID: "other", Name: "Other", Kind: KindMaterial, Unit: "each", Price: 0}

var (
	byID    = map[string]Entry{}
	orderOf = map[string]int{}
)

func init() {
	for i, e := range Catalog {
		byID[e.ID] = e
		orderOf[e.ID] = i
	}
}

// Lookup returns the catalog entry for an id, or the generic fallback entry
// (with ok=false) when the id is unknown.
func Lookup(id string) (Entry, bool) {
	if e, ok := byID[id]; ok {
		return e, true
	}
	return fallback, false
}

// OrderIndex returns the canonical position of a computed id. Unknown ids
// sort after all catalog entries, keeping output order stable regardless of
// when options were toggled.
func OrderIndex(id string) int {
	if i, ok := orderOf[id]; ok {
		return i
	}
	return len(Catalog)
}
