// Package budget rolls simulated well costs up into an annual cash flow:
// per-well totals adjusted by global inflation and efficiency drivers, spread
// linearly per day into calendar-month buckets.
package budget

import (
	"sort"
	"time"

	"github.com/AlbanoAyala/DrillingPlanner/internal/plan"
)

const dateLayout = "2006-01-02"

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Entry is one scenario selected into the budget: the well it belongs to and
// the simulated totals for its parameter snapshot.
type Entry struct {
	Well         plan.Well `json:"well"`
	ScenarioName string    `json:"scenarioName"`
	Notes        string    `json:"notes,omitempty"`
	TotalCost    float64   `json:"totalCost"`
	DurationDays float64   `json:"durationDays"`
}

// Drivers are the campaign-wide what-if knobs applied to every entry.
type Drivers struct {
	InflationPct  float64 `json:"inflationPct"`
	EfficiencyPct float64 `json:"efficiencyPct"`
}

// MonthFlow is one calendar month of spend.
type MonthFlow struct {
	Month      string  `json:"name"`
	Cost       float64 `json:"cost"`
	Cumulative float64 `json:"cumulative"`
}

// WellForecast is the adjusted plan for one budgeted well.
type WellForecast struct {
	WellID       string  `json:"wellId"`
	WellName     string  `json:"wellName"`
	ScenarioName string  `json:"scenarioName"`
	Notes        string  `json:"notes,omitempty"`
	StartDate    string  `json:"startDate"`
	BaseCost     float64 `json:"baseCost"`
	AdjustedCost float64 `json:"adjustedCost"`
	DurationDays float64 `json:"durationDays"`
}

// Projection is the full annual budget: twelve monthly buckets with a running
// cumulative, the per-well forecast table and the campaign total.
type Projection struct {
	Months []MonthFlow    `json:"months"`
	Wells  []WellForecast `json:"wells"`
	Total  float64        `json:"total"`
}

// Project builds the annual cash flow for the selected entries. Spend lands in
// the bucket of each calendar day's month, so a well drilled across year-end
// folds its tail into the early months. Entries with an unparseable start date
// stay in the forecast table but contribute nothing to the cash flow.
func Project(entries []Entry, drivers Drivers) Projection {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Well.StartDate < sorted[j].Well.StartDate
	})

	var monthly [12]float64
	wells := make([]WellForecast, 0, len(sorted))

	for _, entry := range sorted {
		adjustedCost := entry.TotalCost *
			(1 + drivers.InflationPct/100) *
			(1 - drivers.EfficiencyPct/100)
		durationDays := entry.DurationDays * (1 - drivers.EfficiencyPct/100)

		wells = append(wells, WellForecast{
			WellID:       entry.Well.ID,
			WellName:     entry.Well.Name,
			ScenarioName: entry.ScenarioName,
			Notes:        entry.Notes,
			StartDate:    entry.Well.StartDate,
			BaseCost:     entry.TotalCost,
			AdjustedCost: adjustedCost,
			DurationDays: durationDays,
		})

		start, err := time.Parse(dateLayout, entry.Well.StartDate)
		if err != nil || durationDays <= 0 {
			continue
		}

		dailyCost := adjustedCost / durationDays
		day := start
		for i := 0; float64(i) < durationDays; i++ {
			monthly[int(day.Month())-1] += dailyCost
			day = day.AddDate(0, 0, 1)
		}
	}

	months := make([]MonthFlow, 12)
	var cumulative float64
	for i, name := range monthNames {
		cumulative += monthly[i]
		months[i] = MonthFlow{Month: name, Cost: monthly[i], Cumulative: cumulative}
	}

	return Projection{Months: months, Wells: wells, Total: cumulative}
}
