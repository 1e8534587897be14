package rules

import (
	"testing"

	"github.com/renoworks/renoquote/internal/model"
)

func TestWasteFactorOrdering(t *testing.T) {
	stacked := WasteFactor(model.PatternStacked)
	third := WasteFactor(model.PatternOffsetThird)
	half := WasteFactor(model.PatternOffsetHalf)
	herringbone := WasteFactor(model.PatternHerringbone)

	if !(stacked < third && third < half && half < herringbone) {
		t.Errorf("waste factors out of order: %v %v %v %v", stacked, third, half, herringbone)
	}
	if stacked <= 1.0 {
		t.Errorf("stacked waste factor must exceed 1.0, got %v", stacked)
	}
}

func TestWasteFactorUnknownPattern(t *testing.T) {
	if got := WasteFactor("zigzag"); got != WasteFactor(model.PatternStacked) {
		t.Errorf("unknown pattern should get the stacked factor, got %v", got)
	}
}

func TestMultiplierFallbacks(t *testing.T) {
	if got := SizeMultiplier("13x13"); got != 1.0 {
		t.Errorf("unknown size multiplier should be 1.0, got %v", got)
	}
	if got := PatternMultiplier("zigzag"); got != 1.0 {
		t.Errorf("unknown pattern multiplier should be 1.0, got %v", got)
	}
	if got := BoxCoverage("13x13"); got != 12.0 {
		t.Errorf("unknown box coverage should be the conservative default, got %v", got)
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("floors/tile-box")
	if !ok {
		t.Fatal("expected floors/tile-box in the catalog")
	}
	if e.Kind != KindMaterial || e.Unit != "box" {
		t.Errorf("unexpected entry: %+v", e)
	}

	f, ok := Lookup("floors/does-not-exist")
	if ok {
		t.Error("unknown id reported as found")
	}
	if f.Name != "Other" {
		t.Errorf("expected the generic fallback entry, got %+v", f)
	}
}

func TestOrderIndex(t *testing.T) {
	if OrderIndex("demolition/tub-removal") >= OrderIndex("floors/tile-labor") {
		t.Error("demolition entries must sort before floors entries")
	}
	if OrderIndex("not-a-real-id") != len(Catalog) {
		t.Error("unknown ids must sort after every catalog entry")
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range Catalog {
		if seen[e.ID] {
			t.Errorf("duplicate catalog id %s", e.ID)
		}
		seen[e.ID] = true
	}
}
