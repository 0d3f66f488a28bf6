package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/AlbanoAyala/DrillingPlanner/internal/budget"
	"github.com/AlbanoAyala/DrillingPlanner/internal/config"
	"github.com/AlbanoAyala/DrillingPlanner/internal/db"
	"github.com/AlbanoAyala/DrillingPlanner/internal/engine"
	"github.com/AlbanoAyala/DrillingPlanner/internal/export"
	"github.com/AlbanoAyala/DrillingPlanner/internal/migrations"
	"github.com/AlbanoAyala/DrillingPlanner/internal/plan"
	"github.com/AlbanoAyala/DrillingPlanner/internal/risk"
	"github.com/AlbanoAyala/DrillingPlanner/internal/seed"
	"github.com/AlbanoAyala/DrillingPlanner/internal/store"
)

// dataset is the in-memory planning data: the program template, the cost
// catalog, the activity schedule and each well's working parameters. Guarded
// by server.mu; the engine itself is pure.
type dataset struct {
	program []plan.ProgramLine
	catalog []plan.CostCatalogItem
	wells   []plan.Well
	params  map[string]plan.SimulationParams // by well id
}

type server struct {
	mu        sync.RWMutex
	data      dataset
	scenarios *store.Store
	analyzer  risk.Analyzer
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			log.Fatalf("failed to run database migrations: %v", err)
		}
	}

	var analyzer risk.Analyzer
	if cfg.GeminiAPIKey != "" {
		analyzer = risk.NewGeminiAnalyzer(cfg.GeminiAPIKey)
	}

	srv := &server{
		data:      demoDataset(),
		scenarios: store.New(database),
		analyzer:  analyzer,
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.router()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func (s *server) router() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/api/wells", s.handleListWells)
	r.Get("/api/program", s.handleGetProgram)
	r.Get("/api/catalog", s.handleGetCatalog)
	r.Get("/api/wells/{id}/params", s.handleGetParams)
	r.Put("/api/wells/{id}/params", s.handlePutParams)
	r.Get("/api/wells/{id}/export", s.handleExportProgram)
	r.Post("/api/simulate", s.handleSimulate)
	r.Post("/api/scenarios", s.handleSaveScenario)
	r.Get("/api/scenarios", s.handleListScenarios)
	r.Get("/api/scenarios/{id}", s.handleGetScenario)
	r.Delete("/api/scenarios/{id}", s.handleDeleteScenario)
	r.Post("/api/budget", s.handleBudget)
	r.Post("/api/risk", s.handleRisk)
	r.Post("/api/upload", s.handleUploadDataset)
	return r
}

// demoDataset builds the startup dataset with default parameters for every
// scheduled well.
func demoDataset() dataset {
	wells := seed.Schedule()
	params := make(map[string]plan.SimulationParams, len(wells))
	for _, well := range wells {
		params[well.ID] = seed.DefaultParams(well)
	}
	return dataset{
		program: seed.Program(),
		catalog: seed.Catalog(),
		wells:   wells,
		params:  params,
	}
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleListWells(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	wells := s.data.wells
	s.mu.RUnlock()
	respondJSON(w, http.StatusOK, wells)
}

func (s *server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	program := s.data.program
	s.mu.RUnlock()
	respondJSON(w, http.StatusOK, program)
}

func (s *server) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	catalog := s.data.catalog
	s.mu.RUnlock()
	respondJSON(w, http.StatusOK, catalog)
}

func (s *server) handleGetParams(w http.ResponseWriter, r *http.Request) {
	wellID := chi.URLParam(r, "id")

	s.mu.RLock()
	params, ok := s.data.params[wellID]
	s.mu.RUnlock()

	if !ok {
		http.Error(w, "unknown well", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, params)
}

func (s *server) handlePutParams(w http.ResponseWriter, r *http.Request) {
	wellID := chi.URLParam(r, "id")

	var params plan.SimulationParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "invalid params payload", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	_, ok := s.data.params[wellID]
	if ok {
		s.data.params[wellID] = params
	}
	s.mu.Unlock()

	if !ok {
		http.Error(w, "unknown well", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, params)
}

type simulateRequest struct {
	WellID string                 `json:"wellId,omitempty"`
	Params *plan.SimulationParams `json:"params,omitempty"`
}

// handleSimulate runs the engine for an explicit parameter set, or for a
// well's stored working parameters when only a well id is given.
func (s *server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid simulate payload", http.StatusBadRequest)
		return
	}

	params, err := s.resolveParams(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	s.mu.RLock()
	program, catalog := s.data.program, s.data.catalog
	s.mu.RUnlock()

	respondJSON(w, http.StatusOK, engine.CalculateWellProgram(program, params, catalog))
}

func (s *server) resolveParams(req simulateRequest) (plan.SimulationParams, error) {
	if req.Params != nil {
		return *req.Params, nil
	}

	s.mu.RLock()
	params, ok := s.data.params[req.WellID]
	s.mu.RUnlock()

	if !ok {
		return plan.SimulationParams{}, fmt.Errorf("unknown well %q", req.WellID)
	}
	return params, nil
}

func (s *server) handleExportProgram(w http.ResponseWriter, r *http.Request) {
	wellID := chi.URLParam(r, "id")

	s.mu.RLock()
	params, ok := s.data.params[wellID]
	program, catalog := s.data.program, s.data.catalog
	s.mu.RUnlock()

	if !ok {
		http.Error(w, "unknown well", http.StatusNotFound)
		return
	}

	result := engine.CalculateWellProgram(program, params, catalog)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", wellID+"_Drilling_Program.csv"))
	if err := export.WriteProgramCSV(w, result); err != nil {
		log.Printf("export csv for %s: %v", wellID, err)
	}
}

type saveScenarioRequest struct {
	WellID string                 `json:"wellId"`
	Name   string                 `json:"name"`
	Params *plan.SimulationParams `json:"params,omitempty"`
}

// handleSaveScenario snapshots parameters under a name. Without an explicit
// parameter set the well's current working parameters are saved.
func (s *server) handleSaveScenario(w http.ResponseWriter, r *http.Request) {
	var req saveScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid scenario payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "scenario name is required", http.StatusBadRequest)
		return
	}

	params := req.Params
	if params == nil {
		s.mu.RLock()
		working, ok := s.data.params[req.WellID]
		s.mu.RUnlock()
		if !ok {
			http.Error(w, "unknown well", http.StatusNotFound)
			return
		}
		params = &working
	}

	scenario, err := s.scenarios.Save(req.WellID, req.Name, *params)
	if err != nil {
		log.Printf("save scenario: %v", err)
		http.Error(w, "failed to save scenario", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, scenario)
}

func (s *server) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	var (
		scenarios []plan.Scenario
		err       error
	)
	if wellID := r.URL.Query().Get("wellId"); wellID != "" {
		scenarios, err = s.scenarios.ListByWell(wellID)
	} else {
		scenarios, err = s.scenarios.List()
	}
	if err != nil {
		log.Printf("list scenarios: %v", err)
		http.Error(w, "failed to list scenarios", http.StatusInternalServerError)
		return
	}
	if scenarios == nil {
		scenarios = []plan.Scenario{}
	}
	respondJSON(w, http.StatusOK, scenarios)
}

func (s *server) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	scenario, err := s.scenarios.Get(chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "scenario not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("get scenario: %v", err)
		http.Error(w, "failed to load scenario", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, scenario)
}

func (s *server) handleDeleteScenario(w http.ResponseWriter, r *http.Request) {
	err := s.scenarios.Delete(chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "scenario not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("delete scenario: %v", err)
		http.Error(w, "failed to delete scenario", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type budgetRequest struct {
	ScenarioIDs   []string `json:"scenarioIds"`
	InflationPct  float64  `json:"inflationPct"`
	EfficiencyPct float64  `json:"efficiencyPct"`
}

// handleBudget simulates each selected scenario and rolls the results up into
// the annual cash flow.
func (s *server) handleBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid budget payload", http.StatusBadRequest)
		return
	}
	if len(req.ScenarioIDs) == 0 {
		http.Error(w, "no scenarios selected", http.StatusBadRequest)
		return
	}

	s.mu.RLock()
	program, catalog := s.data.program, s.data.catalog
	wellsByID := make(map[string]plan.Well, len(s.data.wells))
	for _, well := range s.data.wells {
		wellsByID[well.ID] = well
	}
	s.mu.RUnlock()

	entries := make([]budget.Entry, 0, len(req.ScenarioIDs))
	for _, id := range req.ScenarioIDs {
		scenario, err := s.scenarios.Get(id)
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, fmt.Sprintf("scenario %s not found", id), http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("load scenario %s: %v", id, err)
			http.Error(w, "failed to load scenarios", http.StatusInternalServerError)
			return
		}

		result := engine.CalculateWellProgram(program, scenario.Params, catalog)
		entries = append(entries, budget.Entry{
			Well:         wellsByID[scenario.WellID],
			ScenarioName: scenario.Name,
			Notes:        scenario.Params.UserNotes,
			TotalCost:    result.TotalCost,
			DurationDays: result.TotalTimeDays,
		})
	}

	projection := budget.Project(entries, budget.Drivers{
		InflationPct:  req.InflationPct,
		EfficiencyPct: req.EfficiencyPct,
	})
	respondJSON(w, http.StatusOK, projection)
}

// handleRisk runs a simulation and asks the AI analyzer for a narrative
// review of it.
func (s *server) handleRisk(w http.ResponseWriter, r *http.Request) {
	if s.analyzer == nil {
		http.Error(w, "risk analysis is not configured", http.StatusServiceUnavailable)
		return
	}

	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid risk payload", http.StatusBadRequest)
		return
	}

	params, err := s.resolveParams(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	s.mu.RLock()
	program, catalog := s.data.program, s.data.catalog
	s.mu.RUnlock()

	result := engine.CalculateWellProgram(program, params, catalog)
	analysis, err := s.analyzer.Analyze(r.Context(), result)
	if err != nil {
		log.Printf("risk analysis: %v", err)
		http.Error(w, "failed to contact AI service", http.StatusBadGateway)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"analysis": analysis})
}

type uploadRequest struct {
	Program []plan.ProgramLine     `json:"program,omitempty"`
	Catalog []plan.CostCatalogItem `json:"catalog,omitempty"`
	Wells   []plan.Well            `json:"wells,omitempty"`
}

// handleUploadDataset replaces pieces of the in-memory dataset with uploaded
// data. New wells get default working parameters; parameters of wells that
// survive the upload are kept.
func (s *server) handleUploadDataset(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid dataset payload", http.StatusBadRequest)
		return
	}
	if req.Program == nil && req.Catalog == nil && req.Wells == nil {
		http.Error(w, "empty dataset payload", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if req.Program != nil {
		s.data.program = req.Program
	}
	if req.Catalog != nil {
		s.data.catalog = req.Catalog
	}
	if req.Wells != nil {
		s.data.wells = req.Wells
		params := make(map[string]plan.SimulationParams, len(req.Wells))
		for _, well := range req.Wells {
			if existing, ok := s.data.params[well.ID]; ok {
				params[well.ID] = existing
				continue
			}
			params[well.ID] = seed.DefaultParams(well)
		}
		s.data.params = params
	}
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]string{"status": "dataset updated"})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}
