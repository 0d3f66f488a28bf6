// Package store persists named scenario snapshots: a well, a label and the
// full parameter set that produced a simulation, so a planner can reload and
// compare runs later.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AlbanoAyala/DrillingPlanner/internal/plan"
)

// ErrNotFound is returned when no scenario exists for the requested id.
var ErrNotFound = errors.New("scenario not found")

// Store reads and writes scenarios through an open database handle.
type Store struct {
	db *sql.DB
}

func New(database *sql.DB) *Store {
	return &Store{db: database}
}

// Save inserts a new scenario snapshot and returns it with the generated id
// and creation time filled in.
func (s *Store) Save(wellID, name string, params plan.SimulationParams) (plan.Scenario, error) {
	snapshot, err := json.Marshal(params)
	if err != nil {
		return plan.Scenario{}, fmt.Errorf("marshal scenario params: %w", err)
	}

	scenario := plan.Scenario{
		ID:        uuid.NewString(),
		WellID:    wellID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Params:    params,
	}

	_, err = s.db.Exec(`
		INSERT INTO scenarios (id, well_id, name, created_at, params_json)
		VALUES (?, ?, ?, ?, ?)
	`, scenario.ID, scenario.WellID, scenario.Name, scenario.CreatedAt, string(snapshot))
	if err != nil {
		return plan.Scenario{}, fmt.Errorf("insert scenario: %w", err)
	}

	return scenario, nil
}

// List returns every saved scenario, newest first.
func (s *Store) List() ([]plan.Scenario, error) {
	return s.query(`
		SELECT id, well_id, name, created_at, params_json
		FROM scenarios
		ORDER BY created_at DESC, id
	`)
}

// ListByWell returns the scenarios saved for one well, newest first.
func (s *Store) ListByWell(wellID string) ([]plan.Scenario, error) {
	return s.query(`
		SELECT id, well_id, name, created_at, params_json
		FROM scenarios
		WHERE well_id = ?
		ORDER BY created_at DESC, id
	`, wellID)
}

// Get loads a single scenario by id.
func (s *Store) Get(id string) (plan.Scenario, error) {
	row := s.db.QueryRow(`
		SELECT id, well_id, name, created_at, params_json
		FROM scenarios
		WHERE id = ?
	`, id)

	scenario, err := scanScenario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return plan.Scenario{}, ErrNotFound
	}
	if err != nil {
		return plan.Scenario{}, fmt.Errorf("get scenario %s: %w", id, err)
	}
	return scenario, nil
}

// Delete removes a scenario by id.
func (s *Store) Delete(id string) error {
	result, err := s.db.Exec(`DELETE FROM scenarios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete scenario %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete scenario %s: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) query(sqlText string, args ...any) ([]plan.Scenario, error) {
	rows, err := s.db.Query(sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("query scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []plan.Scenario
	for rows.Next() {
		scenario, err := scanScenario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan scenario: %w", err)
		}
		scenarios = append(scenarios, scenario)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scenarios: %w", err)
	}
	return scenarios, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(row rowScanner) (plan.Scenario, error) {
	var scenario plan.Scenario
	var paramsJSON string
	if err := row.Scan(&scenario.ID, &scenario.WellID, &scenario.Name, &scenario.CreatedAt, &paramsJSON); err != nil {
		return plan.Scenario{}, err
	}
	if err := json.Unmarshal([]byte(paramsJSON), &scenario.Params); err != nil {
		return plan.Scenario{}, fmt.Errorf("decode params snapshot: %w", err)
	}
	return scenario, nil
}
