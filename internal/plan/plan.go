// Package plan defines the drilling program data model shared by the
// calculation engine, the scenario store and the HTTP API.
package plan

import "time"

// LineType selects the duration engine used for a program line.
type LineType string

const (
	Drilling  LineType = "DRILLING"
	Casing    LineType = "CASING"
	Tripping  LineType = "TRIPPING"
	Cementing LineType = "CEMENTING"
	Logging   LineType = "LOGGING"
	FlatTime  LineType = "FLAT_TIME"
	Moving    LineType = "MOVING"
)

// Section identifies which target depth applies to a program line.
type Section string

const (
	SectionNone      Section = ""
	SectionGuide     Section = "GUIDE"
	SectionIsolation Section = "ISOLATION"
)

// Category classifies cost catalog entries into the AFE groups.
type Category string

const (
	CategoryEquipment Category = "EQUIPO"
	CategoryServices  Category = "SERVICIOS"
	CategoryMaterials Category = "MATERIALES"
)

// Unit is the unit of measure a catalog entry is priced in.
type Unit string

const (
	UnitDay   Unit = "DIA"
	UnitEach  Unit = "UNI"
	UnitKm    Unit = "KM"
	UnitMeter Unit = "MTS"
	UnitMonth Unit = "MES"
	UnitHour  Unit = "HS"
)

// AdjustmentKind distinguishes the two user adjustment variants.
type AdjustmentKind string

const (
	// AbsoluteValue adds to a rate or speed; the effective rate is floored at 0.1.
	AbsoluteValue AdjustmentKind = "ABSOLUTE_VALUE"
	// PercentageTime scales a fixed duration by a percentage.
	PercentageTime AdjustmentKind = "PERCENTAGE_TIME"
)

// Adjustment is a user-supplied tweak keyed to a single program line.
type Adjustment struct {
	Kind  AdjustmentKind `json:"type"`
	Value float64        `json:"value"`
}

// ProgramLine is one static template row of the drilling program. The template
// is defined once and shared read-only across all wells and scenarios.
type ProgramLine struct {
	ID       string   `json:"id"`
	Phase    string   `json:"phase"`
	Activity string   `json:"activity"`
	Type     LineType `json:"type"`

	// Fixed-time engine input.
	BaseDurationHours float64 `json:"baseDurationHours,omitempty"`

	// Proportional engine inputs.
	ROP         float64 `json:"rop,omitempty"`         // meters per hour
	CasingSpeed float64 `json:"casingSpeed,omitempty"` // joints per hour
	PipeLength  float64 `json:"pipeLength,omitempty"`  // meters per joint

	// Tripping engine input.
	TrippingSpeed float64 `json:"trippingSpeed,omitempty"` // meters per hour

	LinkedToSection  Section `json:"linkedToSection,omitempty"`
	IsOfflineCapable bool    `json:"isOfflineCapable,omitempty"`
}

// SimulationParams is the per-well input to a calculation run.
type SimulationParams struct {
	TDGuide     float64 `json:"tdGuide"`     // meters
	TDIsolation float64 `json:"tdIsolation"` // meters

	DTM          float64 `json:"dtm"` // rig move distance, km
	TrailerHours float64 `json:"trailerHours"`

	EquipmentType string `json:"equipmentType"` // rig id, e.g. "H-202"
	WellType      string `json:"wellType"`      // e.g. "Convencional", "NOC BTC"

	IsFirstWell          bool `json:"isFirstWell"`
	IsOfflineBOP         bool `json:"isOfflineBOP"`
	IsNoLogging          bool `json:"isNoLogging"`
	IsDirectional        bool `json:"isDirectional"`
	HasGeologicalControl bool `json:"hasGeologicalControl"`

	// Adjustments maps a program line id to its user adjustment. An absent
	// entry means "no adjustment".
	Adjustments map[string]Adjustment `json:"adjustments,omitempty"`

	UserNotes string `json:"userNotes,omitempty"`
}

// AdjustmentFor returns the adjustment for a line, if any.
func (p SimulationParams) AdjustmentFor(lineID string) (Adjustment, bool) {
	adj, ok := p.Adjustments[lineID]
	return adj, ok
}

// CostCatalogItem is one priced entry of the cost catalog, with optional
// filter predicates. Reference data, loaded once and never mutated.
type CostCatalogItem struct {
	Category    Category `json:"category"`
	Subcategory string   `json:"subcategory"`
	Item        string   `json:"item"` // description
	Unit        Unit     `json:"unit"`
	Cost        float64  `json:"cost"` // unit price

	EquipmentType  string   `json:"equipmentType,omitempty"`
	WellType       string   `json:"wellType,omitempty"`
	RequiredForDir bool     `json:"requiredForDir,omitempty"`
	ExcludedForDir bool     `json:"excludedForDir,omitempty"`
	ApplyToLines   []string `json:"applyToLines,omitempty"`
}

// AppliesToLine reports whether the entry's line whitelist admits lineID.
// An empty whitelist admits every line.
func (c CostCatalogItem) AppliesToLine(lineID string) bool {
	if len(c.ApplyToLines) == 0 {
		return true
	}
	for _, id := range c.ApplyToLines {
		if id == lineID {
			return true
		}
	}
	return false
}

// ResultLine is a program line augmented with the calculated outputs.
type ResultLine struct {
	ProgramLine

	CalculatedDuration float64 `json:"calculatedDuration"` // hours
	CalculatedCost     float64 `json:"calculatedCost"`
	CumulativeTime     float64 `json:"cumulativeTime"` // days, including rig move
	DaysFromSpud       float64 `json:"daysFromSpud"`   // days, construction only
	CumulativeCost     float64 `json:"cumulativeCost"`
	DepthStart         float64 `json:"depthStart"`
	DepthEnd           float64 `json:"depthEnd"`
}

// CurvePoint is one point of the depth-vs-time-vs-cost curve.
type CurvePoint struct {
	Time     float64 `json:"time"` // days
	Depth    float64 `json:"depth"`
	Cost     float64 `json:"cost"`
	Activity string  `json:"activity"`
	Dashed   bool    `json:"dashed,omitempty"`
}

// CostSummaryRow is one aggregated row of the AFE-style cost summary.
type CostSummaryRow struct {
	Group       string  `json:"group"` // e.g. "02.01 EQUIPO"
	Subcategory string  `json:"item"`  // e.g. "H-202"
	Description string  `json:"description"`
	Unit        Unit    `json:"unit"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	Total       float64 `json:"total"`
}

// SimulationResult is the full output of one calculation run.
type SimulationResult struct {
	Lines         []ResultLine     `json:"lines"`
	TotalTimeDays float64          `json:"totalTimeDays"`
	TotalCost     float64          `json:"totalCost"`
	TimeCurve     []CurvePoint     `json:"timeCurve"`
	TimeCurveNet  []CurvePoint     `json:"timeCurveNet"`
	CostSummary   []CostSummaryRow `json:"costSummary"`
	Warnings      []string         `json:"warnings"`
}

// Well is one row of the activity schedule.
type Well struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	StartDate string `json:"startDate"` // YYYY-MM-DD
	Equipment string `json:"equipment"`
	Done      bool   `json:"done"`
}

// Scenario is an immutable named snapshot of a well's parameters.
type Scenario struct {
	ID        string           `json:"id"`
	WellID    string           `json:"wellId"`
	Name      string           `json:"name"`
	CreatedAt time.Time        `json:"createdAt"`
	Params    SimulationParams `json:"params"`
}
