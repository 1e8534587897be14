package model

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Num parses a numeric string the way every arithmetic path in the estimator
// does: empty or unparseable input yields 0, never NaN. The UI stores numbers
// as strings to keep the user's formatting; this is the single conversion
// point back to float64.
func Num(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Dimension is a feet+inches measurement. Normalized form keeps inches in
// [0,12); callers that accept raw input should call Normalize before storing.
type Dimension struct {
	Feet   int `json:"feet"`
	Inches int `json:"inches"`
}

// Normalize folds overflowing inches into feet so 5'14" becomes 6'2".
// Negative inches are clamped to 0.
func (d Dimension) Normalize() Dimension {
	if d.Inches < 0 {
		d.Inches = 0
	}
	d.Feet += d.Inches / 12
	d.Inches %= 12
	return d
}

// DecimalFeet returns the measurement as fractional feet.
func (d Dimension) DecimalFeet() float64 {
	return float64(d.Feet) + float64(d.Inches)/12.0
}

// Wall is one measured wall surface (shower wall, tub surround side).
// Walls are created and deleted by the user, never by the engine.
type Wall struct {
	ID     string    `json:"id"`
	Label  string    `json:"label"`
	Height Dimension `json:"height"`
	Width  Dimension `json:"width"`
}

// NewWall creates a wall with a generated ID.
func NewWall(label string, height, width Dimension) Wall {
	return Wall{
		ID:     uuid.New().String()[:8],
		Label:  label,
		Height: height.Normalize(),
		Width:  width.Normalize(),
	}
}

// Area returns the wall face area in square feet.
func (w Wall) Area() float64 {
	return w.Height.DecimalFeet() * w.Width.DecimalFeet()
}

// WallsArea sums the face area of all walls in square feet.
func WallsArea(walls []Wall) float64 {
	var total float64
	for _, w := range walls {
		total += w.Area()
	}
	return total
}

// FloorSection is one measured floor rectangle. Width and Length are inch
// values as numeric strings straight from the form layer.
type FloorSection struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Width  string `json:"width"`  // inches
	Length string `json:"length"` // inches
}

// NewFloorSection creates a floor section with a generated ID.
func NewFloorSection(label, width, length string) FloorSection {
	return FloorSection{
		ID:     uuid.New().String()[:8],
		Label:  label,
		Width:  width,
		Length: length,
	}
}

// Area returns the section area in square feet: (width_in × length_in) / 144.
func (fs FloorSection) Area() float64 {
	return Num(fs.Width) * Num(fs.Length) / 144.0
}

// SectionsArea sums section areas in square feet. Unparseable dimensions
// contribute 0 rather than failing.
func SectionsArea(sections []FloorSection) float64 {
	var total float64
	for _, s := range sections {
		total += s.Area()
	}
	return total
}

// InchesArea converts a single width×length inch pair to square feet.
func InchesArea(widthIn, lengthIn string) float64 {
	return Num(widthIn) * Num(lengthIn) / 144.0
}
