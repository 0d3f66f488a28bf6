package engine

import (
	"testing"

	"github.com/AlbanoAyala/DrillingPlanner/internal/plan"
	"github.com/AlbanoAyala/DrillingPlanner/internal/seed"
)

func demoRun(t *testing.T, mutate func(*plan.SimulationParams)) plan.SimulationResult {
	t.Helper()
	params := seed.DefaultParams(plan.Well{Type: "Convencional", Equipment: "H-202"})
	if mutate != nil {
		mutate(&params)
	}
	return CalculateWellProgram(seed.Program(), params, seed.Catalog())
}

func TestCalculateWellProgram_CumulativesAreMonotonic(t *testing.T) {
	result := demoRun(t, nil)

	if len(result.Lines) != len(seed.Program()) {
		t.Fatalf("got %d result lines, want %d", len(result.Lines), len(seed.Program()))
	}

	var prevTime, prevCost float64
	for _, line := range result.Lines {
		if line.CalculatedDuration < 0 {
			t.Fatalf("line %s has negative duration %v", line.ID, line.CalculatedDuration)
		}
		if line.CumulativeTime < prevTime {
			t.Fatalf("line %s cumulative time went backwards: %v < %v", line.ID, line.CumulativeTime, prevTime)
		}
		if line.CumulativeCost < prevCost {
			t.Fatalf("line %s cumulative cost went backwards: %v < %v", line.ID, line.CumulativeCost, prevCost)
		}
		prevTime = line.CumulativeTime
		prevCost = line.CumulativeCost
	}
}

func TestCalculateWellProgram_FinalLineMatchesTotals(t *testing.T) {
	result := demoRun(t, nil)

	last := result.Lines[len(result.Lines)-1]
	nearlyEqual(t, "total days", result.TotalTimeDays, last.CumulativeTime)
	nearlyEqual(t, "total cost", result.TotalCost, last.CumulativeCost)

	lastPoint := result.TimeCurve[len(result.TimeCurve)-1]
	nearlyEqual(t, "curve end time", lastPoint.Time, last.CumulativeTime)
	nearlyEqual(t, "curve end cost", lastPoint.Cost, last.CumulativeCost)
}

func TestCalculateWellProgram_DepthCascadesAcrossSections(t *testing.T) {
	result := demoRun(t, nil)

	byID := map[string]plan.ResultLine{}
	for _, line := range result.Lines {
		byID[line.ID] = line
	}

	guide := byID["1"]
	nearlyEqual(t, "guide depth start", guide.DepthStart, 0)
	nearlyEqual(t, "guide depth end", guide.DepthEnd, 600)

	isolation := byID["10"]
	nearlyEqual(t, "isolation depth start", isolation.DepthStart, 600)
	nearlyEqual(t, "isolation depth end", isolation.DepthEnd, 2200)

	maxDepth := 0.0
	for _, p := range result.TimeCurve {
		if p.Depth > maxDepth {
			maxDepth = p.Depth
		}
	}
	nearlyEqual(t, "curve max depth", maxDepth, 2200)
}

func TestCalculateWellProgram_DaysFromSpudExcludesRigMove(t *testing.T) {
	result := demoRun(t, nil)

	move := result.Lines[0]
	if move.ID != "0" {
		t.Fatalf("expected the rig move first, got line %s", move.ID)
	}
	nearlyEqual(t, "move days from spud", move.DaysFromSpud, 0)
	nearlyEqual(t, "move cumulative days", move.CumulativeTime, 75.0/24)

	spud := result.Lines[1]
	nearlyEqual(t, "first construction line",
		spud.DaysFromSpud, spud.CumulativeTime-75.0/24)
}

func TestCalculateWellProgram_OfflineBOPDropsOfflineCapableLines(t *testing.T) {
	result := demoRun(t, func(p *plan.SimulationParams) { p.IsOfflineBOP = true })

	for _, line := range result.Lines {
		if line.IsOfflineCapable {
			t.Fatalf("offline-capable line %s survived the offline BOP filter", line.ID)
		}
	}
	if len(result.Lines) != len(seed.Program())-1 {
		t.Fatalf("got %d lines, want %d", len(result.Lines), len(seed.Program())-1)
	}
}

func TestCalculateWellProgram_NoLoggingDropsLoggingAndItsTrip(t *testing.T) {
	result := demoRun(t, func(p *plan.SimulationParams) { p.IsNoLogging = true })

	for _, line := range result.Lines {
		if line.Type == plan.Logging || line.ID == "11" {
			t.Fatalf("line %s should be dropped when logging is skipped", line.ID)
		}
	}

	base := demoRun(t, nil)
	if result.TotalTimeDays >= base.TotalTimeDays {
		t.Fatalf("skipping logging must shorten the well: %v >= %v",
			result.TotalTimeDays, base.TotalTimeDays)
	}
	if result.TotalCost >= base.TotalCost {
		t.Fatalf("skipping logging must cheapen the well: %v >= %v",
			result.TotalCost, base.TotalCost)
	}
}

func TestCalculateWellProgram_NetCurveShiftsOutTheRigMove(t *testing.T) {
	result := demoRun(t, nil)
	dtmDays := 75.0 / 24

	if len(result.TimeCurveNet) == 0 {
		t.Fatal("expected a net curve")
	}
	for _, p := range result.TimeCurveNet {
		if !p.Dashed {
			t.Fatal("net curve points must be dashed")
		}
		if p.Time < 0 {
			t.Fatalf("net curve time went negative: %v", p.Time)
		}
	}

	gross := result.TimeCurve[len(result.TimeCurve)-1]
	net := result.TimeCurveNet[len(result.TimeCurveNet)-1]
	nearlyEqual(t, "net curve end", net.Time, gross.Time-dtmDays)
	nearlyEqual(t, "net curve depth", net.Depth, gross.Depth)
}

func TestCalculateWellProgram_CostSummaryAggregatesAndBalances(t *testing.T) {
	result := demoRun(t, nil)

	type key struct {
		group, sub, desc string
		price            float64
	}
	seen := map[key]bool{}
	var sum float64
	for i, row := range result.CostSummary {
		k := key{row.Group, row.Subcategory, row.Description, row.Price}
		if seen[k] {
			t.Fatalf("duplicate summary row %+v", row)
		}
		seen[k] = true
		sum += row.Total
		if i > 0 && result.CostSummary[i-1].Group > row.Group {
			t.Fatal("summary is not sorted by group")
		}
	}
	closeTo(t, "summary total", sum, result.TotalCost, 1e-6)
}

func TestCalculateWellProgram_AdjustmentsShiftTheSchedule(t *testing.T) {
	base := demoRun(t, nil)
	slower := demoRun(t, func(p *plan.SimulationParams) {
		p.Adjustments = map[string]plan.Adjustment{
			"10": {Kind: plan.AbsoluteValue, Value: -10}, // ROP 30 -> 20 on the isolation section
		}
	})

	if slower.TotalTimeDays <= base.TotalTimeDays {
		t.Fatalf("a slower ROP must lengthen the well: %v <= %v",
			slower.TotalTimeDays, base.TotalTimeDays)
	}
}

func TestCalculateWellProgram_WarningsAreDeduplicatedAndSorted(t *testing.T) {
	// An unknown rig misses every tariff and DTM lookup; each distinct item
	// warns once no matter how many lines hit it.
	result := demoRun(t, func(p *plan.SimulationParams) { p.EquipmentType = "H-999" })

	if len(result.Warnings) == 0 {
		t.Fatal("expected catalog-miss warnings for an unknown rig")
	}
	seen := map[string]bool{}
	for i, w := range result.Warnings {
		if seen[w] {
			t.Fatalf("duplicate warning %q", w)
		}
		seen[w] = true
		if i > 0 && result.Warnings[i-1] > w {
			t.Fatal("warnings are not sorted")
		}
	}
	if !seen["Missing Cost Item: EQUIPO / H-999 / TARIFA A"] {
		t.Fatalf("expected a TARIFA A warning, got %v", result.Warnings)
	}
}
