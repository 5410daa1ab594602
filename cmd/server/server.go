package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ocobiz/fnbcalc/internal/metrics"
	"github.com/ocobiz/fnbcalc/internal/middleware"
	"github.com/ocobiz/fnbcalc/internal/store"
	"github.com/ocobiz/fnbcalc/internal/wizard"
)

type server struct {
	store   *store.Store
	metrics *metrics.Metrics

	// newID overrides the reducer's id generator. Nil means random UUIDs.
	newID wizard.IDFunc
}

func newServer(st *store.Store, m *metrics.Metrics) *server {
	return &server{store: st, metrics: m}
}

func (s *server) routes(log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID(log))
	r.Use(middleware.AccessLog)
	r.Use(s.metrics.Middleware)

	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handleUpdateSettings)
		r.Get("/purchase-units", s.handlePurchaseUnits)

		r.Get("/state/initial", s.handleInitialState)
		r.Post("/wizard/apply", s.handleWizardApply)

		r.Post("/ingredients/normalize", s.handleNormalizeIngredients)
		r.Post("/menu-items/cost", s.handleCostMenuItems)
		r.Post("/estimate", s.handleEstimate)
		r.Post("/lite", s.handleLite)

		r.Post("/scenarios", s.handleCreateScenario)
		r.Get("/scenarios", s.handleScenariosList)
		r.Get("/scenarios/{id}", s.handleScenarioDetail)
		r.Get("/scenarios/{id}/text", s.handleScenarioText)

		r.Post("/waitlist", s.handleCreateWaitlistEntry)
		r.Get("/waitlist", s.handleWaitlistList)
	})

	return r
}

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "database unavailable", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
