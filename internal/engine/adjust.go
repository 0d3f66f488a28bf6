// Package engine implements the well program calculation core: the adjustment
// model, the activity duration engines, the cost engine and the program
// calculator. Everything here is a pure function over immutable inputs; no
// degraded condition ever aborts a calculation.
package engine

import "github.com/AlbanoAyala/DrillingPlanner/internal/plan"

// DirectionalPenalty is the uniform slowdown factor applied to rate-based
// activities on directional wells.
const DirectionalPenalty = 0.85

// minEffectiveRate floors absolute adjustments so a rate can never reach zero.
const minEffectiveRate = 0.1

// ApplyAdjustment applies the directional penalty and an optional user
// adjustment to a base value. timeDomain selects whether the value is a
// duration (hours) or a rate/speed; adjustments are domain-typed and a
// mismatched kind is silently ignored.
func ApplyAdjustment(base float64, adj *plan.Adjustment, timeDomain, directional bool) float64 {
	value := base

	if !timeDomain && directional {
		value *= DirectionalPenalty
	}

	if adj == nil {
		return value
	}

	if timeDomain {
		if adj.Kind == plan.PercentageTime {
			return value * (1 + adj.Value/100)
		}
	} else {
		if adj.Kind == plan.AbsoluteValue {
			return max(minEffectiveRate, value+adj.Value)
		}
	}
	return value
}
