package engine

import (
	"testing"

	"github.com/AlbanoAyala/DrillingPlanner/internal/plan"
)

func TestProportionalTime_GuideDrilling(t *testing.T) {
	line := plan.ProgramLine{ID: "1", Type: plan.Drilling, ROP: 25}

	// 600 m at 25 m/h.
	nearlyEqual(t, "vertical", ProportionalTime(line, 600, nil, false), 24)

	// Directional slows the ROP to 25*0.85.
	closeTo(t, "directional", ProportionalTime(line, 600, nil, true), 28.2352941176, 1e-6)

	// +5 m/h absolute adjustment.
	adj := &plan.Adjustment{Kind: plan.AbsoluteValue, Value: 5}
	nearlyEqual(t, "adjusted", ProportionalTime(line, 600, adj, false), 20)
}

func TestProportionalTime_CasingCompositeRate(t *testing.T) {
	line := plan.ProgramLine{ID: "4", Type: plan.Casing, CasingSpeed: 7, PipeLength: 14}

	// 7 joints/h * 14 m/joint = 98 m/h.
	closeTo(t, "casing hours", ProportionalTime(line, 600, nil, false), 600.0/98.0, 1e-9)

	// The adjustment applies to the composite m/h rate.
	adj := &plan.Adjustment{Kind: plan.AbsoluteValue, Value: 2}
	closeTo(t, "adjusted casing", ProportionalTime(line, 600, adj, false), 6.0, 1e-9)
}

func TestProportionalTime_MissingParametersYieldZero(t *testing.T) {
	noROP := plan.ProgramLine{ID: "1", Type: plan.Drilling}
	nearlyEqual(t, "drilling without rop", ProportionalTime(noROP, 600, nil, false), 0)

	noPipe := plan.ProgramLine{ID: "4", Type: plan.Casing, CasingSpeed: 7}
	nearlyEqual(t, "casing without pipe length", ProportionalTime(noPipe, 600, nil, false), 0)

	wrongType := plan.ProgramLine{ID: "3", Type: plan.FlatTime, ROP: 25}
	nearlyEqual(t, "non-proportional type", ProportionalTime(wrongType, 600, nil, false), 0)
}

func TestTrippingTime(t *testing.T) {
	line := plan.ProgramLine{ID: "2", Type: plan.Tripping, TrippingSpeed: 82}
	closeTo(t, "tripping", TrippingTime(line, 600, nil, false), 600.0/82.0, 1e-9)

	noSpeed := plan.ProgramLine{ID: "2", Type: plan.Tripping}
	nearlyEqual(t, "without speed", TrippingTime(noSpeed, 600, nil, false), 0)
}

func TestFixedTime(t *testing.T) {
	line := plan.ProgramLine{ID: "13", Type: plan.Logging, BaseDurationHours: 24}
	nearlyEqual(t, "base", FixedTime(line, nil, false), 24)

	adj := &plan.Adjustment{Kind: plan.PercentageTime, Value: 25}
	nearlyEqual(t, "scaled", FixedTime(line, adj, false), 30)

	// Directional wells do not inflate fixed durations.
	nearlyEqual(t, "directional", FixedTime(line, nil, true), 24)
}
