// Package seed provides the demo dataset the server boots with: the drilling
// program template, the cost catalog and the 2026 activity schedule. A real
// deployment would load the same structures from uploaded spreadsheets; the
// engine is agnostic to their origin.
package seed

import "github.com/AlbanoAyala/DrillingPlanner/internal/plan"

// Program returns the drilling program template, items 0-17 of the
// "Plan de Perforación" table. Shared read-only across wells and scenarios.
func Program() []plan.ProgramLine {
	return []plan.ProgramLine{
		{ID: "0", Phase: "Movilización", Activity: "DTM de equipo",
			Type: plan.Moving, BaseDurationHours: 75},
		{ID: "1", Phase: "Guía", Activity: "Perfora c/trépano 13-1/2\" hasta TD (+ service)",
			Type: plan.Drilling, ROP: 25, LinkedToSection: plan.SectionGuide},
		{ID: "2", Phase: "Guía", Activity: "Circula + saca a superficie. Mbra de Calibre. Desarma BHA.",
			Type: plan.Tripping, TrippingSpeed: 82, LinkedToSection: plan.SectionGuide},
		{ID: "3", Phase: "Guía", Activity: "Prepara para entubar",
			Type: plan.FlatTime, BaseDurationHours: 2.5, LinkedToSection: plan.SectionGuide},
		{ID: "4", Phase: "Guía", Activity: "Entuba cañería guia de 9 5/8\"",
			Type: plan.Casing, CasingSpeed: 7, PipeLength: 14, LinkedToSection: plan.SectionGuide},
		{ID: "5", Phase: "Guía", Activity: "Circula, prepara para cementar y cementa + top job",
			Type: plan.Cementing, BaseDurationHours: 4.5, LinkedToSection: plan.SectionGuide},
		{ID: "6", Phase: "Guía", Activity: "Recupera caño de maniobra + instala sección \"A\"",
			Type: plan.FlatTime, BaseDurationHours: 2.75, LinkedToSection: plan.SectionGuide},
		{ID: "7", Phase: "Guía", Activity: "Monta BOP y lineas de choke y kill",
			Type: plan.FlatTime, BaseDurationHours: 4, LinkedToSection: plan.SectionGuide},
		{ID: "8", Phase: "Guía", Activity: "Prueba BOP",
			Type: plan.FlatTime, BaseDurationHours: 4, IsOfflineCapable: true, LinkedToSection: plan.SectionGuide},
		{ID: "9", Phase: "Aislación", Activity: "Arma BHA con trepano de 8 3/4\" / MDF / Stb / Tijera...",
			Type: plan.FlatTime, BaseDurationHours: 12.75, LinkedToSection: plan.SectionIsolation},
		{ID: "10", Phase: "Aislación", Activity: "Perfora hasta TD (+ Circulaciones + Registros + Service)",
			Type: plan.Drilling, ROP: 30, LinkedToSection: plan.SectionIsolation},
		{ID: "11", Phase: "Aislación", Activity: "Circula + Mbra de Calibre - saca hasta zto 9-5/8\" - baja a TD...",
			Type: plan.Tripping, TrippingSpeed: 130, LinkedToSection: plan.SectionIsolation},
		{ID: "12", Phase: "Aislación", Activity: "Circula y saca total para perfilar",
			Type: plan.Tripping, TrippingSpeed: 160, LinkedToSection: plan.SectionIsolation},
		{ID: "13", Phase: "Aislación", Activity: "Acondiciona + Perfila + Desmonta",
			Type: plan.Logging, BaseDurationHours: 24, LinkedToSection: plan.SectionIsolation},
		{ID: "14", Phase: "Aislación", Activity: "Prepara + Entuba Csg de 5 1/2\"",
			Type: plan.Casing, CasingSpeed: 11, PipeLength: 14, LinkedToSection: plan.SectionIsolation},
		{ID: "15", Phase: "Aislación", Activity: "Circula en el fondo. Acondiciona Lodo",
			Type: plan.FlatTime, BaseDurationHours: 2.25, LinkedToSection: plan.SectionIsolation},
		{ID: "16", Phase: "Aislación", Activity: "Prepara equipo y cementa. Desmonta Cía de cementación.",
			Type: plan.Cementing, BaseDurationHours: 5, LinkedToSection: plan.SectionIsolation},
		{ID: "17", Phase: "Aislación", Activity: "Levanta BOP + Asienta Csg 5-1/2\" en cuñas + Empaqueta...",
			Type: plan.FlatTime, BaseDurationHours: 6, LinkedToSection: plan.SectionIsolation},
	}
}

// Catalog returns the demo cost catalog: rig tariffs for the H-202 and H-203
// rigs, service rates and casing material prices.
func Catalog() []plan.CostCatalogItem {
	return []plan.CostCatalogItem{
		// 02.01 EQUIPO - H-202
		{Category: plan.CategoryEquipment, Subcategory: "H-202", Item: "MOVILIZACION", Unit: plan.UnitEach, Cost: 1500000.00, EquipmentType: "H-202"},
		{Category: plan.CategoryEquipment, Subcategory: "H-202", Item: "DTM CORTO", Unit: plan.UnitEach, Cost: 107932.58, EquipmentType: "H-202"},
		{Category: plan.CategoryEquipment, Subcategory: "H-202", Item: "DTM EXCESO > 20KM", Unit: plan.UnitKm, Cost: 2158.65, EquipmentType: "H-202"},
		{Category: plan.CategoryEquipment, Subcategory: "H-202", Item: "DTM TRAILER CORTO", Unit: plan.UnitHour, Cost: 20000.00, EquipmentType: "H-202"},
		{Category: plan.CategoryEquipment, Subcategory: "H-202", Item: "DTM TRAILER EXCESO", Unit: plan.UnitHour, Cost: 1535.63, EquipmentType: "H-202"},
		{Category: plan.CategoryEquipment, Subcategory: "H-202", Item: "TARIFA A", Unit: plan.UnitHour, Cost: 1458.85, EquipmentType: "H-202"},
		{Category: plan.CategoryEquipment, Subcategory: "H-202", Item: "TARIFA B", Unit: plan.UnitHour, Cost: 1382.06, EquipmentType: "H-202"},
		{Category: plan.CategoryEquipment, Subcategory: "H-202", Item: "TARIFA C", Unit: plan.UnitHour, Cost: 1382.06, EquipmentType: "H-202"}, // combustible
		{Category: plan.CategoryEquipment, Subcategory: "H-202", Item: "VARIOS", Unit: plan.UnitEach, Cost: 72171.54, EquipmentType: "H-202"},

		// 02.01 EQUIPO - H-203
		{Category: plan.CategoryEquipment, Subcategory: "H-203", Item: "MOVILIZACION", Unit: plan.UnitEach, Cost: 1550000.00, EquipmentType: "H-203"},
		{Category: plan.CategoryEquipment, Subcategory: "H-203", Item: "DTM CORTO", Unit: plan.UnitEach, Cost: 110000.00, EquipmentType: "H-203"},
		{Category: plan.CategoryEquipment, Subcategory: "H-203", Item: "DTM EXCESO > 20KM", Unit: plan.UnitKm, Cost: 2200.00, EquipmentType: "H-203"},
		{Category: plan.CategoryEquipment, Subcategory: "H-203", Item: "DTM TRAILER CORTO", Unit: plan.UnitHour, Cost: 21000.00, EquipmentType: "H-203"},
		{Category: plan.CategoryEquipment, Subcategory: "H-203", Item: "DTM TRAILER EXCESO", Unit: plan.UnitHour, Cost: 1600.00, EquipmentType: "H-203"},
		{Category: plan.CategoryEquipment, Subcategory: "H-203", Item: "TARIFA A", Unit: plan.UnitHour, Cost: 1500.00, EquipmentType: "H-203"},
		{Category: plan.CategoryEquipment, Subcategory: "H-203", Item: "TARIFA B", Unit: plan.UnitHour, Cost: 1420.00, EquipmentType: "H-203"},
		{Category: plan.CategoryEquipment, Subcategory: "H-203", Item: "TARIFA C", Unit: plan.UnitHour, Cost: 1400.00, EquipmentType: "H-203"},
		{Category: plan.CategoryEquipment, Subcategory: "H-203", Item: "VARIOS", Unit: plan.UnitEach, Cost: 75000.00, EquipmentType: "H-203"},

		// 02.02 SERVICIOS
		{Category: plan.CategoryServices, Subcategory: "General", Item: "DIESEL", Unit: plan.UnitDay, Cost: 3000},
		{Category: plan.CategoryServices, Subcategory: "General", Item: "LODO / FLUIDOS", Unit: plan.UnitDay, Cost: 2500},
		{Category: plan.CategoryServices, Subcategory: "Direccional", Item: "HERRAMIENTAS DIR", Unit: plan.UnitDay, Cost: 6500, RequiredForDir: true},
		{Category: plan.CategoryServices, Subcategory: "Direccional", Item: "PERSONAL DIR", Unit: plan.UnitDay, Cost: 1200, RequiredForDir: true},
		{Category: plan.CategoryServices, Subcategory: "Medicion", Item: "SINGLE SHOT / INCLINATION", Unit: plan.UnitEach, Cost: 1500, ExcludedForDir: true,
			ApplyToLines: []string{"9", "10", "11", "12", "13"}},
		{Category: plan.CategoryServices, Subcategory: "Trepanos", Item: "TREPANO 13 1/2", Unit: plan.UnitMeter, Cost: 250, ApplyToLines: []string{"1"}},
		{Category: plan.CategoryServices, Subcategory: "Trepanos", Item: "TREPANO 8 3/4", Unit: plan.UnitMeter, Cost: 450, ApplyToLines: []string{"10"}},
		{Category: plan.CategoryServices, Subcategory: "Tijeras", Item: "ALQUILER MENSUAL", Unit: plan.UnitMonth, Cost: 18000},
		{Category: plan.CategoryServices, Subcategory: "Control Geologico", Item: "MUD LOGGING UNIT", Unit: plan.UnitDay, Cost: 1200},
		{Category: plan.CategoryServices, Subcategory: "Logging", Item: "PERFILAJE STANDARD", Unit: plan.UnitEach, Cost: 45000, ApplyToLines: []string{"13"}},

		// 02.03 MATERIALES - casing guía (línea 4)
		{Category: plan.CategoryMaterials, Subcategory: "Casing", Item: "9-5/8 32.3 STC H40", Unit: plan.UnitMeter, Cost: 95, WellType: "Convencional"},
		{Category: plan.CategoryMaterials, Subcategory: "Casing", Item: "9-5/8 32.3 TXP-LW H40", Unit: plan.UnitMeter, Cost: 130, WellType: "NOC Premium + DwC"},
		{Category: plan.CategoryMaterials, Subcategory: "Casing", Item: "9-5/8 32.3 TXP-LW H40", Unit: plan.UnitMeter, Cost: 130, WellType: "NOC BTC"},

		// 02.03 MATERIALES - casing aislación (línea 14)
		{Category: plan.CategoryMaterials, Subcategory: "Casing", Item: "5-1/2 17 LTC K55", Unit: plan.UnitMeter, Cost: 65},
		{Category: plan.CategoryMaterials, Subcategory: "Casing", Item: "5-1/2 17 LTC N80", Unit: plan.UnitMeter, Cost: 85},
		{Category: plan.CategoryMaterials, Subcategory: "Casing", Item: "5-1/2 17 TBL N80", Unit: plan.UnitMeter, Cost: 110},
	}
}

// Schedule returns the 2026 demo activity schedule.
func Schedule() []plan.Well {
	return []plan.Well{
		{ID: "PC-4030", Name: "PC-4030", Type: "Convencional", Equipment: "H-202", StartDate: "2026-01-01"},
		{ID: "PCx-4034", Name: "PCx-4034", Type: "Convencional", Equipment: "H-203", StartDate: "2026-01-16"},
		{ID: "EH-5019", Name: "EH-5019", Type: "Convencional", Equipment: "H-202", StartDate: "2026-01-31"},
		{ID: "EH-5020", Name: "EH-5020", Type: "Convencional", Equipment: "H-203", StartDate: "2026-02-15"},
		{ID: "EH-5021", Name: "EH-5021", Type: "Convencional", Equipment: "H-202", StartDate: "2026-03-02"},
		{ID: "PC-4032", Name: "PC-4032", Type: "NOC Premium + DwC", Equipment: "H-203", StartDate: "2026-03-17"},
		{ID: "PCx-40342", Name: "PCx-40342", Type: "NOC Premium + DwC", Equipment: "H-202", StartDate: "2026-04-01"},
		{ID: "EH-50191", Name: "EH-50191", Type: "NOC Premium + DwC", Equipment: "H-203", StartDate: "2026-04-16"},
		{ID: "EH-50201", Name: "EH-50201", Type: "NOC Premium + DwC", Equipment: "H-202", StartDate: "2026-05-01"},
		{ID: "EH-50212", Name: "EH-50212", Type: "Convencional", Equipment: "H-203", StartDate: "2026-05-16"},
		{ID: "PC-40302", Name: "PC-40302", Type: "Convencional", Equipment: "H-202", StartDate: "2026-05-31"},
		{ID: "PCx-40342-2", Name: "PCx-40342", Type: "Convencional", Equipment: "H-203", StartDate: "2026-06-15"},
		{ID: "EH-50193", Name: "EH-50193", Type: "Convencional", Equipment: "H-202", StartDate: "2026-06-30"},
		{ID: "EH-50203", Name: "EH-50203", Type: "Convencional", Equipment: "H-203", StartDate: "2026-07-15"},
		{ID: "EH-50213", Name: "EH-50213", Type: "Convencional", Equipment: "H-202", StartDate: "2026-07-30"},
		{ID: "PC-40303", Name: "PC-40303", Type: "Convencional", Equipment: "H-203", StartDate: "2026-08-14"},
		{ID: "PCx-40343", Name: "PCx-40343", Type: "Convencional", Equipment: "H-202", StartDate: "2026-08-29"},
		{ID: "EH-50194", Name: "EH-50194", Type: "Convencional", Equipment: "H-203", StartDate: "2026-09-13"},
		{ID: "EH-50204", Name: "EH-50204", Type: "Convencional", Equipment: "H-202", StartDate: "2026-09-28"},
		{ID: "EH-50214", Name: "EH-50214", Type: "Convencional", Equipment: "H-203", StartDate: "2026-10-13"},
		{ID: "PC-40304", Name: "PC-40304", Type: "Convencional", Equipment: "H-202", StartDate: "2026-10-28"},
		{ID: "PCx-40344", Name: "PCx-40344", Type: "Convencional", Equipment: "H-203", StartDate: "2026-11-12"},
		{ID: "EH-50195", Name: "EH-50195", Type: "Convencional", Equipment: "H-202", StartDate: "2026-11-27"},
		{ID: "EH-50205", Name: "EH-50205", Type: "Convencional", Equipment: "H-203", StartDate: "2026-12-12"},
		{ID: "EH-50215", Name: "EH-50215", Type: "NOC BTC", Equipment: "H-202", StartDate: "2026-12-27"},
	}
}

// DefaultParams returns the starting parameter set for a well, syncing the
// well type and rig from the schedule row.
func DefaultParams(well plan.Well) plan.SimulationParams {
	params := plan.SimulationParams{
		TDGuide:       600,
		TDIsolation:   2200,
		DTM:           120,
		TrailerHours:  10,
		EquipmentType: "H-202",
		WellType:      "Convencional",
		Adjustments:   map[string]plan.Adjustment{},
	}
	if well.Type != "" {
		params.WellType = well.Type
	}
	if well.Equipment != "" {
		params.EquipmentType = well.Equipment
	}
	return params
}
