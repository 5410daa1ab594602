package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ocobiz/fnbcalc/internal/store"
	"github.com/ocobiz/fnbcalc/internal/wizard"
)

func parseWaitlistForm(f wizard.WaitlistForm) (store.WaitlistEntry, error) {
	e := store.WaitlistEntry{
		Name:            strings.TrimSpace(f.Name),
		ShopName:        strings.TrimSpace(f.ShopName),
		Phone:           strings.TrimSpace(f.Phone),
		FavoriteFeature: strings.TrimSpace(f.FavoriteFeature),
	}
	if e.Name == "" {
		return e, errors.New("name is required")
	}
	if e.Phone == "" {
		return e, errors.New("phone is required")
	}
	return e, nil
}

func (s *server) handleCreateWaitlistEntry(w http.ResponseWriter, r *http.Request) {
	var form wizard.WaitlistForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	entry, err := parseWaitlistForm(form)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	id, err := s.store.CreateWaitlistEntry(entry)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to save waitlist entry", err)
		return
	}
	entry.ID = id
	writeJSON(w, http.StatusCreated, entry)
}

func (s *server) handleWaitlistList(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.ListWaitlistEntries()
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to load waitlist", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
