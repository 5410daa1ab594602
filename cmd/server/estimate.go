package main

import (
	"fmt"
	"net/http"

	"github.com/ocobiz/fnbcalc/internal/finance"
	"github.com/ocobiz/fnbcalc/internal/metrics"
)

type normalizeRequest struct {
	Ingredients []finance.Ingredient `json:"ingredients"`
}

// normalizedIngredient pairs an ingredient with its conversion, so callers
// can flag a degenerate conversion that was floored to one base unit.
type normalizedIngredient struct {
	Ingredient finance.Ingredient `json:"ingredient"`
	UnitCost   finance.UnitCost   `json:"unitCost"`
}

type costMenuRequest struct {
	Ingredients []finance.Ingredient `json:"ingredients"`
	Menu        []finance.MenuItem   `json:"menu"`
}

type costedMenuItem struct {
	Item            finance.MenuItem        `json:"item"`
	Breakdown       finance.RecipeBreakdown `json:"breakdown"`
	FoodCostPercent float64                 `json:"foodCostPercent"`
}

func (s *server) handleNormalizeIngredients(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	items := make([]normalizedIngredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		items = append(items, normalizedIngredient{
			Ingredient: finance.NormalizeIngredient(ing),
			UnitCost:   finance.Normalize(ing),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *server) handleCostMenuItems(w http.ResponseWriter, r *http.Request) {
	var req costMenuRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	lookup := finance.IndexIngredients(finance.NormalizeAll(req.Ingredients))
	items := make([]costedMenuItem, 0, len(req.Menu))
	for _, item := range req.Menu {
		b := finance.RecipeCost(item, lookup)
		item.TotalCost = b.TotalCost
		items = append(items, costedMenuItem{
			Item:            item,
			Breakdown:       b,
			FoodCostPercent: finance.FoodCostPercent(item),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// validateSnapshot rejects inputs the full pipeline cannot compute.
func validateSnapshot(snap finance.Snapshot) error {
	if snap.Capex.RecoveryYears <= 0 {
		return fmt.Errorf("capex.recoveryYears must be greater than 0")
	}
	if snap.Period != "" && snap.Period != finance.PeriodDay && snap.Period != finance.PeriodMonth {
		return fmt.Errorf("simulationMode must be day or month")
	}
	return nil
}

func (s *server) estimate(snap finance.Snapshot) (finance.Estimate, float64, error) {
	st, err := s.settings()
	if err != nil {
		return finance.Estimate{}, 0, err
	}
	est := st.Policy().Estimate(snap)
	s.metrics.Estimated(metrics.PathFull)
	return est, st.VATPercent, nil
}

func (s *server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var snap finance.Snapshot
	if err := decodeJSON(w, r, &snap); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := validateSnapshot(snap); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	est, _, err := s.estimate(snap)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to compute estimate", err)
		return
	}
	writeJSON(w, http.StatusOK, est)
}

func (s *server) handleLite(w http.ResponseWriter, r *http.Request) {
	var in finance.LiteInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	s.metrics.Estimated(metrics.PathLite)
	writeJSON(w, http.StatusOK, finance.Lite(in))
}
