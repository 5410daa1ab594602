package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Scenario kinds.
const (
	KindFull = "full"
	KindLite = "lite"
)

// NewScenario is what gets saved: the input snapshot and the computed result.
type NewScenario struct {
	Kind       string
	Title      string
	Notes      string
	VATPercent float64
	NetProfit  float64
	Input      any
	Result     any
}

// ScenarioSummary is one row of the saved scenario list.
type ScenarioSummary struct {
	ID        int64   `json:"id"`
	CreatedAt string  `json:"createdAt"`
	Kind      string  `json:"kind"`
	Title     string  `json:"title"`
	NetProfit float64 `json:"netProfit"`
}

// Scenario is a stored estimate. Input and Result are kept exactly as computed.
type Scenario struct {
	ScenarioSummary
	Notes      string          `json:"notes"`
	VATPercent float64         `json:"vatPercent"`
	Input      json.RawMessage `json:"input"`
	Result     json.RawMessage `json:"result"`
}

// CreateScenario stores a scenario and returns its id.
func (s *Store) CreateScenario(n NewScenario) (int64, error) {
	if n.Kind != KindFull && n.Kind != KindLite {
		return 0, fmt.Errorf("invalid scenario kind %q", n.Kind)
	}

	input, err := json.Marshal(n.Input)
	if err != nil {
		return 0, fmt.Errorf("marshal scenario input: %w", err)
	}
	result, err := json.Marshal(n.Result)
	if err != nil {
		return 0, fmt.Errorf("marshal scenario result: %w", err)
	}

	res, err := s.db.Exec(`
		INSERT INTO scenarios (kind, title, notes, vat_percent_snapshot, net_profit, input_json, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, n.Kind, n.Title, n.Notes, n.VATPercent, n.NetProfit, string(input), string(result))
	if err != nil {
		return 0, fmt.Errorf("insert scenario: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("scenario id: %w", err)
	}
	return id, nil
}

// ListScenarios returns saved scenarios newest first, optionally filtered by
// a substring of the title or notes.
func (s *Store) ListScenarios(query string) ([]ScenarioSummary, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT id, created_at, kind, COALESCE(title, ''), net_profit
		FROM scenarios
		WHERE (? = '' OR COALESCE(title, '') LIKE ? OR COALESCE(notes, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search)
	if err != nil {
		return nil, fmt.Errorf("query scenarios: %w", err)
	}
	defer rows.Close()

	scenarios := make([]ScenarioSummary, 0)
	for rows.Next() {
		var sc ScenarioSummary
		if err := rows.Scan(&sc.ID, &sc.CreatedAt, &sc.Kind, &sc.Title, &sc.NetProfit); err != nil {
			return nil, fmt.Errorf("scan scenario: %w", err)
		}
		scenarios = append(scenarios, sc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scenarios: %w", err)
	}

	return scenarios, nil
}

// GetScenario loads one scenario by id.
func (s *Store) GetScenario(id int64) (Scenario, error) {
	var sc Scenario
	var input, result string
	err := s.db.QueryRow(`
		SELECT id, created_at, kind, COALESCE(title, ''), COALESCE(notes, ''), vat_percent_snapshot, net_profit, input_json, result_json
		FROM scenarios
		WHERE id = ?
	`, id).Scan(&sc.ID, &sc.CreatedAt, &sc.Kind, &sc.Title, &sc.Notes, &sc.VATPercent, &sc.NetProfit, &input, &result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Scenario{}, fmt.Errorf("scenario %d: %w", id, ErrNotFound)
		}
		return Scenario{}, fmt.Errorf("query scenario: %w", err)
	}

	sc.Input = json.RawMessage(input)
	sc.Result = json.RawMessage(result)
	return sc, nil
}
