package engine

import (
	"strings"

	"github.com/AlbanoAyala/DrillingPlanner/internal/plan"
)

// Query is a declarative catalog filter. Zero-valued fields do not constrain
// the match; entry-side filters (equipment type, well type) only constrain
// when the entry declares them.
type Query struct {
	Category      plan.Category
	Unit          plan.Unit
	Subcategory   string
	Item          string
	EquipmentType string
	WellType      string
}

// matches evaluates every predicate of q against one catalog entry.
func (q Query) matches(c plan.CostCatalogItem) bool {
	if c.Category != q.Category {
		return false
	}
	if q.Unit != "" && c.Unit != q.Unit {
		return false
	}
	if q.EquipmentType != "" && c.EquipmentType != "" && c.EquipmentType != q.EquipmentType {
		return false
	}
	// Catalog well types are fragments of the schedule's well type labels,
	// e.g. entry "Convencional" matches well type "Convencional Profundo".
	if q.WellType != "" && c.WellType != "" && !strings.Contains(q.WellType, c.WellType) {
		return false
	}
	if q.Subcategory != "" && c.Subcategory != q.Subcategory {
		return false
	}
	if q.Item != "" && c.Item != q.Item {
		return false
	}
	return true
}

// FindCatalogItem returns the first catalog entry matching q.
func FindCatalogItem(catalog []plan.CostCatalogItem, q Query) (plan.CostCatalogItem, bool) {
	for _, c := range catalog {
		if q.matches(c) {
			return c, true
		}
	}
	return plan.CostCatalogItem{}, false
}

// findByDescription returns the first entry whose description contains
// fragment, regardless of category. Casing materials are resolved this way
// because their descriptions carry the pipe specification (e.g. "K55").
func findByDescription(catalog []plan.CostCatalogItem, fragment string) (plan.CostCatalogItem, bool) {
	for _, c := range catalog {
		if strings.Contains(c.Item, fragment) {
			return c, true
		}
	}
	return plan.CostCatalogItem{}, false
}

// findCasingMaterial resolves a materials/casing entry by description fragment
// and well type, falling back to any materials entry with the fragment when no
// type-specific match exists.
func findCasingMaterial(catalog []plan.CostCatalogItem, fragment, wellType string) (plan.CostCatalogItem, bool) {
	for _, c := range catalog {
		if c.Category != plan.CategoryMaterials || c.Subcategory != "Casing" {
			continue
		}
		if !strings.Contains(c.Item, fragment) {
			continue
		}
		if c.WellType != "" && !strings.Contains(wellType, c.WellType) {
			continue
		}
		return c, true
	}
	for _, c := range catalog {
		if c.Category == plan.CategoryMaterials && strings.Contains(c.Item, fragment) {
			return c, true
		}
	}
	return plan.CostCatalogItem{}, false
}
