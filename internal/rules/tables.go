// Package rules holds the static lookup data the derivation engine runs on:
// productivity rates, tile-size and pattern multipliers, waste factors,
// coverage-per-unit constants, and the catalog of computed line items.
// Nothing in this package mutates at runtime.
package rules

import "github.com/renoworks/renoquote/internal/model"

// Productivity rates in square feet of finished work per labor hour.
const (
	ProdWallTile       = 10.0  // tiling vertical surfaces
	ProdFloorTile      = 20.0  // tiling floors
	ProdBaseTile       = 8.0   // tiling a mud-bed pan
	ProdSheetMembrane  = 40.0  // hanging sheet waterproofing membrane
	ProdLiquidMembrane = 60.0  // rolling liquid membrane
	ProdFoamBoard      = 50.0  // mounting foam backer board
	ProdLeveling       = 100.0 // pouring self-leveler
	ProdUncoupling     = 150.0 // laying uncoupling membrane
	ProdHeatedFloor    = 40.0  // laying heat mat and sensor
	ProdPainting       = 120.0 // two coats, cut-in included
	ProdTrim           = 20.0  // linear feet per hour
	ProdSubfloor       = 25.0  // demo-free subfloor sheet replacement
)

// Coverage per purchasable unit.
const (
	CoverThinsetBag     = 50.0  // sq ft per 50 lb bag
	CoverGroutBag       = 100.0 // sq ft per bag
	CoverSheetRoll      = 108.0 // sq ft per membrane roll
	CoverLiquidBucket   = 50.0  // sq ft per bucket
	CoverFoamBoard      = 32.0  // sq ft per 4x8 board
	CoverLevelerBag     = 40.0  // sq ft at 1/8" per bag
	CoverUncouplingRoll = 54.0
	CoverHeatMat        = 30.0 // sq ft per mat
	CoverPaintGallon    = 350.0
	CoverDeckMudBag     = 6.0  // sq ft of pan per bag
	CoverPlywoodSheet   = 32.0 // 4x8 sheet
)

// sizeMultipliers scale tiling labor by tile format. Large format goes down
// faster per square foot; small formats and mosaics go slower.
var sizeMultipliers = map[string]float64{
	model.TileSize12x12:  1.0,
	model.TileSize12x24:  0.9,
	model.TileSize24x24:  0.85,
	model.TileSizeSubway: 1.3,
	model.TileSizeMosaic: 1.5,
}

// SizeMultiplier returns the labor multiplier for a tile size, 1.0 for
// unknown sizes.
func SizeMultiplier(size string) float64 {
	if m, ok := sizeMultipliers[size]; ok {
		return m
	}
	return 1.0
}

// patternMultipliers scale tiling labor by layout pattern.
var patternMultipliers = map[string]float64{
	model.PatternStacked:     1.0,
	model.PatternOffsetThird: 1.05,
	model.PatternOffsetHalf:  1.05,
	model.PatternHerringbone: 1.25,
}

// PatternMultiplier returns the labor multiplier for a layout pattern,
// 1.0 for unknown patterns.
func PatternMultiplier(pattern string) float64 {
	if m, ok := patternMultipliers[pattern]; ok {
		return m
	}
	return 1.0
}

// wasteFactors multiply raw area before converting to material quantity.
// Strictly ordered: herringbone > offset-half > offset-third > stacked.
var wasteFactors = map[string]float64{
	model.PatternStacked:     1.10,
	model.PatternOffsetThird: 1.15,
	model.PatternOffsetHalf:  1.18,
	model.PatternHerringbone: 1.25,
}

// WasteFactor returns the area multiplier for a layout pattern. Unknown
// patterns get the stacked factor, the lowest band.
func WasteFactor(pattern string) float64 {
	if f, ok := wasteFactors[pattern]; ok {
		return f
	}
	return wasteFactors[model.PatternStacked]
}

// boxCoverages give square feet of tile per box by tile format.
var boxCoverages = map[string]float64{
	model.TileSize12x12:  15.0,
	model.TileSize12x24:  16.0,
	model.TileSize24x24:  16.0,
	model.TileSizeSubway: 12.5,
	model.TileSizeMosaic: 10.0,
}

// BoxCoverage returns sq ft per box for a tile format, with a conservative
// default for unknown formats.
func BoxCoverage(size string) float64 {
	if c, ok := boxCoverages[size]; ok {
		return c
	}
	return 12.0
}

// Fixed demolition task hours by fixture.
const (
	HoursDemoTub         = 3.0
	HoursDemoShower      = 4.0
	HoursDemoVanity      = 1.5
	HoursDemoToilet      = 0.75
	HoursDemoFlooring    = 3.0
	HoursDemoWallTile    = 4.0
	HoursDemoAccessories = 1.0
)

// Fixed install hours.
const (
	HoursNiche          = 2.5
	HoursDoorFramed     = 3.0
	HoursDoorFrameless  = 4.0
	HoursDoorSliding    = 3.5
	HoursMudBed         = 6.0
	HoursBaseAcrylic    = 3.0
	HoursBaseStoneResin = 3.5
	HoursCurb           = 1.5
	HoursDrainStandard  = 0.5
	HoursDrainLinear    = 1.5
	HoursVanityInstall  = 2.5
	HoursToiletInstall  = 1.25
	HoursMirrorInstall  = 1.0
	HoursPerAccessory   = 0.5
	HoursPerFramedWall  = 3.0
	HoursPerJoist       = 2.0
	HoursBlocking       = 1.5
	HoursPerRoughIn     = 4.0
	HoursPerPotLight    = 1.5
	HoursPerGFCI        = 1.0
	HoursPerSwitchMove  = 1.25
	HoursExhaustFan     = 3.0
)
