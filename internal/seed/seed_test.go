package seed

import (
	"testing"

	"github.com/AlbanoAyala/DrillingPlanner/internal/plan"
)

func TestProgramTemplateIsInternallyConsistent(t *testing.T) {
	program := Program()

	if len(program) != 18 {
		t.Fatalf("expected 18 template lines, got %d", len(program))
	}

	seen := map[string]bool{}
	for _, line := range program {
		if seen[line.ID] {
			t.Fatalf("duplicate line id %s", line.ID)
		}
		seen[line.ID] = true

		switch line.Type {
		case plan.Drilling:
			if line.ROP <= 0 {
				t.Fatalf("drilling line %s has no ROP", line.ID)
			}
		case plan.Casing:
			if line.CasingSpeed <= 0 || line.PipeLength <= 0 {
				t.Fatalf("casing line %s is missing run parameters", line.ID)
			}
		case plan.Tripping:
			if line.TrippingSpeed <= 0 {
				t.Fatalf("tripping line %s has no speed", line.ID)
			}
		case plan.Moving, plan.FlatTime, plan.Cementing, plan.Logging:
			if line.BaseDurationHours <= 0 {
				t.Fatalf("fixed-time line %s has no base duration", line.ID)
			}
		default:
			t.Fatalf("line %s has unknown type %q", line.ID, line.Type)
		}

		if line.ID != "0" && line.LinkedToSection == plan.SectionNone {
			t.Fatalf("construction line %s is not linked to a section", line.ID)
		}
	}
}

func TestCatalogCoversBothDemoRigs(t *testing.T) {
	catalog := Catalog()

	required := []string{"MOVILIZACION", "DTM CORTO", "DTM EXCESO > 20KM",
		"DTM TRAILER CORTO", "DTM TRAILER EXCESO", "TARIFA A", "TARIFA B"}

	for _, rig := range []string{"H-202", "H-203"} {
		for _, item := range required {
			found := false
			for _, entry := range catalog {
				if entry.Category == plan.CategoryEquipment && entry.EquipmentType == rig && entry.Item == item {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("catalog is missing %s for rig %s", item, rig)
			}
		}
	}
}

func TestCatalogUnitsAreKnown(t *testing.T) {
	known := map[plan.Unit]bool{
		plan.UnitDay: true, plan.UnitEach: true, plan.UnitKm: true,
		plan.UnitMeter: true, plan.UnitMonth: true, plan.UnitHour: true,
	}
	for _, entry := range Catalog() {
		if !known[entry.Unit] {
			t.Fatalf("entry %q has unknown unit %q", entry.Item, entry.Unit)
		}
		if entry.Cost <= 0 {
			t.Fatalf("entry %q has no price", entry.Item)
		}
	}
}

func TestScheduleWellsGetMatchingDefaultParams(t *testing.T) {
	wells := Schedule()
	if len(wells) != 25 {
		t.Fatalf("expected 25 scheduled wells, got %d", len(wells))
	}

	for _, well := range wells {
		params := DefaultParams(well)
		if params.WellType != well.Type {
			t.Fatalf("well %s: params type %q does not follow schedule type %q",
				well.ID, params.WellType, well.Type)
		}
		if params.EquipmentType != well.Equipment {
			t.Fatalf("well %s: params rig %q does not follow schedule rig %q",
				well.ID, params.EquipmentType, well.Equipment)
		}
		if params.Adjustments == nil {
			t.Fatalf("well %s: adjustments map must be initialized", well.ID)
		}
	}
}
