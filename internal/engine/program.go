package engine

import (
	"sort"

	"github.com/AlbanoAyala/DrillingPlanner/internal/plan"
)

// accumulator carries the running state of the calculation pass.
type accumulator struct {
	cumulativeHours float64
	cumulativeCost  float64
	bitDepth        float64

	lines    []plan.ResultLine
	curve    []plan.CurvePoint
	costRows []plan.CostSummaryRow
	warnings warningSet
}

// CalculateWellProgram runs the full time-and-cost schedule for one well:
// template filtering, the rig-move pre-pass, the per-line duration and cost
// engines, curve construction and the aggregated cost summary. It is pure and
// safe to call concurrently for different wells.
func CalculateWellProgram(
	program []plan.ProgramLine,
	params plan.SimulationParams,
	catalog []plan.CostCatalogItem,
) plan.SimulationResult {
	active := filterProgram(program, params)

	// Total rig-move hours are needed up front so "days from spud" can be
	// reported on every construction line.
	var dtmHours float64
	for _, line := range active {
		if line.Type == plan.Moving || line.ID == "0" {
			dtmHours += FixedTime(line, adjustmentFor(params, line.ID), params.IsDirectional)
		}
	}
	dtmDays := dtmHours / 24

	acc := accumulator{
		curve:    []plan.CurvePoint{{Time: 0, Depth: 0, Cost: 0, Activity: "Start"}},
		warnings: warningSet{},
	}

	for _, line := range active {
		acc = calculateLine(acc, line, params, catalog, dtmHours)
	}

	return plan.SimulationResult{
		Lines:         acc.lines,
		TotalTimeDays: acc.cumulativeHours / 24,
		TotalCost:     acc.cumulativeCost,
		TimeCurve:     acc.curve,
		TimeCurveNet:  netCurve(acc.curve, dtmDays),
		CostSummary:   aggregateCostRows(acc.costRows),
		Warnings:      sortedWarnings(acc.warnings),
	}
}

// filterProgram drops lines excluded by the well's options: offline-capable
// lines under an offline-tested BOP, and the logging lines (plus the logging
// trip, line 11) when logging is skipped.
func filterProgram(program []plan.ProgramLine, params plan.SimulationParams) []plan.ProgramLine {
	active := make([]plan.ProgramLine, 0, len(program))
	for _, line := range program {
		if params.IsOfflineBOP && line.IsOfflineCapable {
			continue
		}
		if params.IsNoLogging && (line.Type == plan.Logging || line.ID == "11") {
			continue
		}
		active = append(active, line)
	}
	return active
}

// calculateLine advances the accumulator over one program line.
func calculateLine(
	acc accumulator,
	line plan.ProgramLine,
	params plan.SimulationParams,
	catalog []plan.CostCatalogItem,
	dtmHours float64,
) accumulator {
	adj := adjustmentFor(params, line.ID)

	var targetDepth float64
	switch line.LinkedToSection {
	case plan.SectionGuide:
		targetDepth = params.TDGuide
	case plan.SectionIsolation:
		targetDepth = params.TDIsolation
	}

	var duration, sectionMeters float64
	depthStart := acc.bitDepth
	depthEnd := acc.bitDepth

	switch line.Type {
	case plan.Moving, plan.FlatTime, plan.Cementing, plan.Logging:
		duration = FixedTime(line, adj, params.IsDirectional)

	case plan.Drilling:
		// Sections cascade: the isolation section starts where the guide
		// section ended.
		depthStart = 0
		if line.LinkedToSection == plan.SectionIsolation {
			depthStart = params.TDGuide
		}
		depthEnd = targetDepth
		sectionMeters = max(0, depthEnd-depthStart)
		duration = ProportionalTime(line, sectionMeters, adj, params.IsDirectional)
		acc.bitDepth = depthEnd

	case plan.Casing:
		// Casing is run from surface over the full target depth.
		sectionMeters = targetDepth
		duration = ProportionalTime(line, sectionMeters, adj, params.IsDirectional)

	case plan.Tripping:
		duration = TrippingTime(line, targetDepth, adj, params.IsDirectional)
	}

	lineCost, rows := ComputeLineCost(line, duration/24, params,
		Context{TargetDepth: targetDepth, SectionMeters: sectionMeters},
		catalog, acc.warnings)
	acc.costRows = append(acc.costRows, rows...)

	startDays := acc.cumulativeHours / 24
	startCost := acc.cumulativeCost

	acc.cumulativeHours += duration
	acc.cumulativeCost += lineCost

	endDays := acc.cumulativeHours / 24

	var daysFromSpud float64
	if line.Type != plan.Moving && line.ID != "0" {
		daysFromSpud = (acc.cumulativeHours - dtmHours) / 24
	}

	acc.lines = append(acc.lines, plan.ResultLine{
		ProgramLine:        line,
		CalculatedDuration: duration,
		CalculatedCost:     lineCost,
		CumulativeTime:     endDays,
		DaysFromSpud:       daysFromSpud,
		CumulativeCost:     acc.cumulativeCost,
		DepthStart:         depthStart,
		DepthEnd:           acc.bitDepth,
	})

	// Non-drilling lines plot flat at the current bit depth; drilling lines
	// slope from section start to section end.
	graphStart, graphEnd := depthStart, depthEnd
	if line.Type != plan.Drilling {
		graphStart = acc.bitDepth
		graphEnd = acc.bitDepth
	}
	acc.curve = append(acc.curve,
		plan.CurvePoint{Time: startDays, Depth: graphStart, Cost: startCost, Activity: line.Activity + " (Start)"},
		plan.CurvePoint{Time: endDays, Depth: graphEnd, Cost: acc.cumulativeCost, Activity: line.Activity},
	)

	return acc
}

// netCurve shifts the curve left by the rig-move days, clamping at zero and
// dropping the mobilization phase entirely rather than compressing it.
func netCurve(curve []plan.CurvePoint, dtmDays float64) []plan.CurvePoint {
	net := make([]plan.CurvePoint, 0, len(curve))
	for _, p := range curve {
		if p.Time < dtmDays {
			continue
		}
		shifted := p
		shifted.Time = max(0, p.Time-dtmDays)
		shifted.Dashed = true
		net = append(net, shifted)
	}
	return net
}

// aggregateCostRows collapses repeated charges of the same catalog entry
// (same group, subcategory, description and price) into one summary row,
// sorted by group then subcategory.
func aggregateCostRows(rows []plan.CostSummaryRow) []plan.CostSummaryRow {
	type key struct {
		group, subcategory, description string
		price                           float64
	}

	index := map[key]int{}
	var out []plan.CostSummaryRow
	for _, row := range rows {
		k := key{row.Group, row.Subcategory, row.Description, row.Price}
		if i, ok := index[k]; ok {
			out[i].Quantity += row.Quantity
			out[i].Total += row.Total
			continue
		}
		index[k] = len(out)
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		return out[i].Subcategory < out[j].Subcategory
	})
	return out
}

func sortedWarnings(w warningSet) []string {
	out := make([]string, 0, len(w))
	for s := range w {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func adjustmentFor(params plan.SimulationParams, lineID string) *plan.Adjustment {
	if adj, ok := params.AdjustmentFor(lineID); ok {
		return &adj
	}
	return nil
}
