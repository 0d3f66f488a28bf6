package engine

import "github.com/AlbanoAyala/DrillingPlanner/internal/plan"

// FixedTime returns the hours for a fixed-duration line (moving, flat time,
// cementing, logging).
func FixedTime(line plan.ProgramLine, adj *plan.Adjustment, directional bool) float64 {
	return ApplyAdjustment(line.BaseDurationHours, adj, true, directional)
}

// ProportionalTime returns the hours to cover distance for a drilling or
// casing line. A line missing its required rate parameters yields zero hours;
// that is a template authoring defect, not an error.
func ProportionalTime(line plan.ProgramLine, distance float64, adj *plan.Adjustment, directional bool) float64 {
	if line.Type == plan.Drilling && line.ROP > 0 {
		effectiveROP := ApplyAdjustment(line.ROP, adj, false, directional)
		return distance / effectiveROP
	}

	if line.Type == plan.Casing && line.CasingSpeed > 0 && line.PipeLength > 0 {
		// joints/h * m/joint gives the composite running rate in m/h; the
		// adjustment applies to that composite, not to the joint speed.
		metersPerHour := line.CasingSpeed * line.PipeLength
		effective := ApplyAdjustment(metersPerHour, adj, false, directional)
		return distance / effective
	}

	return 0
}

// TrippingTime returns the hours to run the string over depth meters.
func TrippingTime(line plan.ProgramLine, depth float64, adj *plan.Adjustment, directional bool) float64 {
	if line.TrippingSpeed > 0 {
		effective := ApplyAdjustment(line.TrippingSpeed, adj, false, directional)
		return depth / effective
	}
	return 0
}
