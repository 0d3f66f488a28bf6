package engine

import (
	"fmt"
	"strings"

	"github.com/AlbanoAyala/DrillingPlanner/internal/plan"
)

// Rate class membership: which program lines are billed at the rig's TARIFA A
// (rotating/drilling hours) vs TARIFA B (flat/auxiliary hours). Lines outside
// both lists carry no rig rate.
var (
	rateClassA = map[string]bool{"1": true, "2": true, "9": true, "10": true, "11": true, "12": true}
	rateClassB = map[string]bool{"3": true, "4": true, "5": true, "6": true, "7": true, "8": true,
		"13": true, "14": true, "15": true, "16": true, "17": true}
)

// Isolation casing string design constants. Domain business rules carried over
// literally: conventional wells run K55 to 2400 m, deeper strings put 400 m of
// LTC N80 on top of K55 for the remainder.
const (
	isolationK55MaxDepth = 2400.0
	isolationN80Meters   = 400.0
)

// dtmFreeKm is the move distance included in the short DTM fee.
const dtmFreeKm = 20.0

// Context carries the depth figures the cost engine needs for a line.
type Context struct {
	TargetDepth   float64
	SectionMeters float64
}

// warningSet accumulates deduplicated warning strings across a calculation.
type warningSet map[string]struct{}

func (w warningSet) addf(format string, args ...any) {
	w[fmt.Sprintf(format, args...)] = struct{}{}
}

// ComputeLineCost prices one program line: rig rate, mobilization, services
// and casing materials, in that order. Catalog misses are recorded as warnings
// and contribute zero; the returned total is an undercount, never an error.
func ComputeLineCost(
	line plan.ProgramLine,
	days float64,
	params plan.SimulationParams,
	ctx Context,
	catalog []plan.CostCatalogItem,
	warnings warningSet,
) (float64, []plan.CostSummaryRow) {
	var total float64
	var rows []plan.CostSummaryRow
	hours := days * 24

	add := func(c plan.CostCatalogItem, qty float64) {
		amount := c.Cost * qty
		total += amount
		rows = append(rows, plan.CostSummaryRow{
			Group:       groupLabel(c.Category),
			Subcategory: c.Subcategory,
			Description: c.Item,
			Unit:        c.Unit,
			Price:       c.Cost,
			Quantity:    qty,
			Total:       amount,
		})
	}

	// 1. Rig hourly rate (02.01).
	var rateItem string
	switch {
	case rateClassA[line.ID]:
		rateItem = "TARIFA A"
	case rateClassB[line.ID]:
		rateItem = "TARIFA B"
	}
	if rateItem != "" {
		c, ok := FindCatalogItem(catalog, Query{
			Category:      plan.CategoryEquipment,
			Unit:          plan.UnitHour,
			Item:          rateItem,
			EquipmentType: params.EquipmentType,
		})
		if ok {
			add(c, hours)
		} else {
			warnings.addf("Missing Cost Item: EQUIPO / %s / %s", params.EquipmentType, rateItem)
		}
	}

	// 2. Mobilization / DTM, only on the rig move line.
	if line.ID == "0" || line.Type == plan.Moving {
		addMobilizationCost(line, params, catalog, warnings, add)
	}

	// 3. Services (02.02).
	for _, svc := range catalog {
		if svc.Category != plan.CategoryServices {
			continue
		}
		if len(svc.ApplyToLines) > 0 && !svc.AppliesToLine(line.ID) {
			continue
		}
		if svc.RequiredForDir && !params.IsDirectional {
			continue
		}
		if svc.ExcludedForDir && params.IsDirectional {
			continue
		}
		if svc.Subcategory == "Control Geologico" && !params.HasGeologicalControl {
			continue
		}

		qty, applies := serviceQuantity(svc, line, days, ctx)
		if applies {
			add(svc, qty)
		}
	}

	// 4. Casing materials (02.03).
	if line.Type == plan.Casing {
		addCasingMaterialCost(line, params, ctx, catalog, warnings, add)
	}

	return total, rows
}

// addMobilizationCost charges the rig move: a one-time mobilization fee for
// the campaign's first well, otherwise a short DTM fee plus trailer hours,
// with per-km and trailer surcharges beyond the included 20 km.
func addMobilizationCost(
	line plan.ProgramLine,
	params plan.SimulationParams,
	catalog []plan.CostCatalogItem,
	warnings warningSet,
	add func(plan.CostCatalogItem, float64),
) {
	equipment := func(unit plan.Unit, item string) (plan.CostCatalogItem, bool) {
		return FindCatalogItem(catalog, Query{
			Category:      plan.CategoryEquipment,
			Unit:          unit,
			Item:          item,
			EquipmentType: params.EquipmentType,
		})
	}

	if params.IsFirstWell {
		if c, ok := equipment(plan.UnitEach, "MOVILIZACION"); ok {
			add(c, 1)
		} else {
			warnings.addf("Missing: EQUIPO / %s / MOVILIZACION", params.EquipmentType)
		}
	} else {
		if c, ok := equipment(plan.UnitEach, "DTM CORTO"); ok {
			add(c, 1)
		} else {
			warnings.addf("Missing: EQUIPO / %s / DTM CORTO", params.EquipmentType)
		}
		if c, ok := equipment(plan.UnitHour, "DTM TRAILER CORTO"); ok {
			add(c, params.TrailerHours)
		} else {
			warnings.addf("Missing: EQUIPO / %s / DTM TRAILER CORTO", params.EquipmentType)
		}
	}

	if !params.IsFirstWell && params.DTM > dtmFreeKm {
		if c, ok := equipment(plan.UnitKm, "DTM EXCESO > 20KM"); ok {
			add(c, params.DTM-dtmFreeKm)
		} else {
			warnings.addf("Missing: EQUIPO / %s / DTM EXCESO > 20KM", params.EquipmentType)
		}
		// Trailer hours are billed again at the excess rate for long moves.
		if c, ok := equipment(plan.UnitHour, "DTM TRAILER EXCESO"); ok {
			add(c, params.TrailerHours)
		} else {
			warnings.addf("Missing: EQUIPO / %s / DTM TRAILER EXCESO", params.EquipmentType)
		}
	}
}

// serviceQuantity resolves the billed quantity of a service entry by its unit
// of measure. An entry whose unit matches no rule for the line contributes
// nothing; notably a geological-control entry priced per unit without a line
// whitelist passes the gates above but never acquires a quantity.
func serviceQuantity(svc plan.CostCatalogItem, line plan.ProgramLine, days float64, ctx Context) (float64, bool) {
	switch svc.Unit {
	case plan.UnitDay:
		return days, true
	case plan.UnitMeter:
		if line.Type == plan.Drilling && len(svc.ApplyToLines) > 0 && svc.AppliesToLine(line.ID) {
			return ctx.SectionMeters, true
		}
	case plan.UnitEach:
		if len(svc.ApplyToLines) > 0 && svc.AppliesToLine(line.ID) {
			return 1, true
		}
	case plan.UnitMonth:
		if line.ID != "0" && line.Type != plan.Moving {
			return days / 30, true // pro-rated monthly rental
		}
	}
	return 0, false
}

// addCasingMaterialCost charges the casing string for the guide (line 4) and
// isolation (line 14) sections. Line 15 shares the isolation string and is
// deliberately not charged twice.
func addCasingMaterialCost(
	line plan.ProgramLine,
	params plan.SimulationParams,
	ctx Context,
	catalog []plan.CostCatalogItem,
	warnings warningSet,
	add func(plan.CostCatalogItem, float64),
) {
	if line.ID == "4" {
		if c, ok := findCasingMaterial(catalog, "9-5/8", params.WellType); ok {
			add(c, ctx.SectionMeters)
		} else {
			warnings.addf("Missing Material: 9-5/8 Casing for %s", params.WellType)
		}
		return
	}

	if line.ID != "14" {
		return
	}

	td := params.TDIsolation
	if strings.Contains(params.WellType, "Convencional") {
		if td <= isolationK55MaxDepth {
			if c, ok := findByDescription(catalog, "K55"); ok {
				add(c, td)
			} else {
				warnings.addf("Missing Material: K55 Casing")
			}
			return
		}
		n80, okN80 := findByDescription(catalog, "LTC N80")
		k55, okK55 := findByDescription(catalog, "K55")
		if okN80 && okK55 {
			add(n80, isolationN80Meters)
			add(k55, td-isolationN80Meters)
		} else {
			warnings.addf("Missing Material: N80/K55 Combined String")
		}
		return
	}

	if c, ok := findByDescription(catalog, "TBL N80"); ok {
		add(c, td)
	} else {
		warnings.addf("Missing Material: TBL N80 Casing")
	}
}

func groupLabel(cat plan.Category) string {
	switch cat {
	case plan.CategoryEquipment:
		return "02.01 EQUIPO"
	case plan.CategoryServices:
		return "02.02 SERVICIOS"
	case plan.CategoryMaterials:
		return "02.03 MATERIALES"
	}
	return string(cat)
}
