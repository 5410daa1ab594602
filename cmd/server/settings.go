package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ocobiz/fnbcalc/internal/finance"
	"github.com/ocobiz/fnbcalc/internal/store"
)

func (s *server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	st, err := s.settings()
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to load settings", err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var st store.Settings
	if err := decodeJSON(w, r, &st); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := validateSettings(st); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	st.Currency = "VND"

	if _, err := s.store.EnsureSettings(st.VATPercent); err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to save settings", err)
		return
	}
	if err := s.store.UpdateSettings(st); err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to save settings", err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func validateSettings(st store.Settings) error {
	percents := []struct {
		field string
		value float64
	}{
		{"vatPercent", st.VATPercent},
		{"defaultShopDiscount", st.DefaultShopDiscount},
		{"defaultAppDiscount", st.DefaultAppDiscount},
		{"defaultWastagePercent", st.DefaultWastagePercent},
		{"defaultAppCommissionRate", st.DefaultAppCommissionRate},
		{"defaultCogsRate", st.DefaultCOGSRate},
	}
	for _, p := range percents {
		if err := checkPercent(p.value, p.field); err != nil {
			return err
		}
	}
	if st.DefaultRecoveryYears < 1 {
		return fmt.Errorf("defaultRecoveryYears must be at least 1")
	}
	return nil
}

func checkPercent(value float64, field string) error {
	if value < 0 || value > 100 {
		return fmt.Errorf("%s must be between 0 and 100", field)
	}
	return nil
}

func (s *server) handlePurchaseUnits(w http.ResponseWriter, r *http.Request) {
	units, err := s.store.ListPurchaseUnits()
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to load purchase units", err)
		return
	}
	writeJSON(w, http.StatusOK, units)
}

// settings returns the stored settings, creating the singleton with the
// built-in defaults when it has not been seeded yet.
func (s *server) settings() (store.Settings, error) {
	st, err := s.store.GetSettings()
	if errors.Is(err, store.ErrNotFound) {
		if _, err := s.store.EnsureSettings(finance.DefaultVATPercent); err != nil {
			return store.Settings{}, err
		}
		st, err = s.store.GetSettings()
	}
	if err != nil {
		return store.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return st, nil
}
