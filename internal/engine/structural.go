package engine

import (
	"github.com/renoworks/renoquote/internal/model"
	"github.com/renoworks/renoquote/internal/rules"
)

// DeriveStructural covers subfloor replacement, wall framing, joist
// sistering, and blocking. Screw boxes bundle one per four plywood sheets.
func DeriveStructural(d model.StructuralDesign, rate float64) Candidates {
	var c Candidates

	area := model.Num(d.SubfloorAreaSqFt)
	if area > 0 {
		sheets := units(area, rules.CoverPlywoodSheet)
		c.Labor = append(c.Labor, labor("structural/subfloor-labor", area/rules.ProdSubfloor, rate))
		c.Materials = append(c.Materials,
			material("structural/plywood", fmtCount(sheets)),
			material("structural/subfloor-screws", fmtCount(ceilDiv(sheets, 4))),
		)
	}

	if d.FramedWalls > 0 {
		c.Labor = append(c.Labor, labor("structural/framing-labor", float64(d.FramedWalls)*rules.HoursPerFramedWall, rate))
		c.Materials = append(c.Materials, material("structural/framing-lumber", fmtCount(d.FramedWalls)))
	}

	if d.SisteredJoists > 0 {
		c.Labor = append(c.Labor, labor("structural/joist-labor", float64(d.SisteredJoists)*rules.HoursPerJoist, rate))
		c.Materials = append(c.Materials, material("structural/joist-lumber", fmtCount(d.SisteredJoists)))
	}

	if d.Blocking {
		c.Labor = append(c.Labor, labor("structural/blocking-labor", rules.HoursBlocking, rate))
		c.Materials = append(c.Materials, material("structural/blocking-lumber", "1"))
	}

	return c
}
