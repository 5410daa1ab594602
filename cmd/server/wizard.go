package main

import (
	"net/http"

	"github.com/ocobiz/fnbcalc/internal/wizard"
)

type applyRequest struct {
	State  *wizard.State `json:"state"`
	Action wizard.Action `json:"action"`
}

func (s *server) reducer() (*wizard.Reducer, error) {
	st, err := s.settings()
	if err != nil {
		return nil, err
	}
	red := wizard.NewReducer(st.Defaults())
	if s.newID != nil {
		red.NewID = s.newID
	}
	return red, nil
}

func (s *server) handleInitialState(w http.ResponseWriter, r *http.Request) {
	st, err := s.settings()
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to load settings", err)
		return
	}
	writeJSON(w, http.StatusOK, wizard.NewState(st.Defaults()))
}

func (s *server) handleWizardApply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	red, err := s.reducer()
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to load settings", err)
		return
	}

	state := wizard.NewState(red.Defaults)
	if req.State != nil {
		state = *req.State
	}

	next, err := red.Apply(state, req.Action)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error(), nil)
		return
	}
	writeJSON(w, http.StatusOK, next)
}
