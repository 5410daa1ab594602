package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ocobiz/fnbcalc/internal/finance"
	"github.com/ocobiz/fnbcalc/internal/format"
	"github.com/ocobiz/fnbcalc/internal/metrics"
	"github.com/ocobiz/fnbcalc/internal/store"
)

type createScenarioRequest struct {
	Kind     string             `json:"kind"`
	Title    string             `json:"title"`
	Notes    string             `json:"notes"`
	Snapshot *finance.Snapshot  `json:"snapshot"`
	Lite     *finance.LiteInput `json:"lite"`
}

type createScenarioResponse struct {
	ID     int64 `json:"id"`
	Result any   `json:"result"`
}

func (s *server) handleCreateScenario(w http.ResponseWriter, r *http.Request) {
	var req createScenarioRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	sc, err := s.buildScenario(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	id, err := s.store.CreateScenario(sc)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to save scenario", err)
		return
	}
	writeJSON(w, http.StatusCreated, createScenarioResponse{ID: id, Result: sc.Result})
}

// buildScenario computes the result that gets stored alongside the input.
func (s *server) buildScenario(req createScenarioRequest) (store.NewScenario, error) {
	sc := store.NewScenario{
		Kind:  req.Kind,
		Title: strings.TrimSpace(req.Title),
		Notes: strings.TrimSpace(req.Notes),
	}

	switch req.Kind {
	case store.KindFull:
		if req.Snapshot == nil {
			return sc, fmt.Errorf("snapshot is required for a full scenario")
		}
		if err := validateSnapshot(*req.Snapshot); err != nil {
			return sc, err
		}
		est, vat, err := s.estimate(*req.Snapshot)
		if err != nil {
			return sc, err
		}
		sc.Input, sc.Result = req.Snapshot, est
		sc.VATPercent, sc.NetProfit = vat, est.PnL.NetProfit
	case store.KindLite:
		if req.Lite == nil {
			return sc, fmt.Errorf("lite input is required for a lite scenario")
		}
		st, err := s.settings()
		if err != nil {
			return sc, err
		}
		res := finance.Lite(*req.Lite)
		s.metrics.Estimated(metrics.PathLite)
		sc.Input, sc.Result = req.Lite, res
		sc.VATPercent, sc.NetProfit = st.VATPercent, res.NetProfit
	default:
		return sc, fmt.Errorf("kind must be %s or %s", store.KindFull, store.KindLite)
	}

	return sc, nil
}

func (s *server) handleScenariosList(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	scenarios, err := s.store.ListScenarios(query)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to load scenarios", err)
		return
	}
	writeJSON(w, http.StatusOK, scenarios)
}

func (s *server) loadScenario(w http.ResponseWriter, r *http.Request) (store.Scenario, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid scenario id", nil)
		return store.Scenario{}, false
	}

	sc, err := s.store.GetScenario(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "scenario not found", nil)
		return store.Scenario{}, false
	}
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to load scenario", err)
		return store.Scenario{}, false
	}
	return sc, true
}

func (s *server) handleScenarioDetail(w http.ResponseWriter, r *http.Request) {
	sc, ok := s.loadScenario(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *server) handleScenarioText(w http.ResponseWriter, r *http.Request) {
	sc, ok := s.loadScenario(w, r)
	if !ok {
		return
	}

	text, err := scenarioText(sc)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to render scenario", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

// scenarioText renders the stored result of sc as a plain-text report.
func scenarioText(sc store.Scenario) (string, error) {
	var b strings.Builder

	title := sc.Title
	if title == "" {
		title = fmt.Sprintf("Kịch bản #%d", sc.ID)
	}
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "Ngày tạo: %s\n", sc.CreatedAt)
	if sc.Notes != "" {
		fmt.Fprintf(&b, "Ghi chú: %s\n", sc.Notes)
	}
	b.WriteString("\n")

	line := func(label string, value string) {
		fmt.Fprintf(&b, "%-28s %s\n", label+":", value)
	}

	switch sc.Kind {
	case store.KindFull:
		var est finance.Estimate
		if err := json.Unmarshal(sc.Result, &est); err != nil {
			return "", fmt.Errorf("decode full result: %w", err)
		}
		p := est.PnL
		fmt.Fprintf(&b, "Báo cáo lãi lỗ tháng (VAT %s)\n", format.Percent(sc.VATPercent))
		line("Doanh thu (gồm VAT)", format.Currency(p.GrossRevenue))
		line("Doanh thu thuần", format.Currency(p.NetRevenue))
		line("Giá vốn thuần", format.Currency(p.NetCOGS))
		line("Lợi nhuận gộp", format.Currency(p.GrossProfit))
		line("Biên lợi nhuận gộp", format.Ratio(p.GrossMarginPercent))
		line("Chi phí cố định", format.Currency(p.OpexFixed))
		line("Chi phí nhân sự", format.Currency(p.PayrollCost))
		line("Bảo trì", format.Currency(p.MonthlyMaintenance))
		line("Khấu hao", format.Currency(p.MonthlyDepreciation))
		line("VAT phải nộp", format.Currency(p.VATPayable))
		line("Lợi nhuận ròng", format.Currency(p.NetProfit))
		line("Doanh thu hòa vốn", format.Currency(p.BreakEvenGrossRevenue))
		line("Tiến độ hòa vốn", format.Percent(p.BreakEvenProgressPercent))
	case store.KindLite:
		var res finance.LiteResult
		if err := json.Unmarshal(sc.Result, &res); err != nil {
			return "", fmt.Errorf("decode lite result: %w", err)
		}
		b.WriteString("Ước tính nhanh theo tháng\n")
		line("Tổng doanh thu", format.Currency(res.TotalMonthlyRevenue))
		line("Phí ứng dụng", format.Currency(res.MonthlyAppFees))
		line("Giá vốn", format.Currency(res.MonthlyCOGS))
		line("Chi phí cố định", format.Currency(res.MonthlyFixedOps))
		line("Lợi nhuận hoạt động", format.Currency(res.OperatingProfit))
		line("Khấu hao", format.Currency(res.MonthlyDepreciation))
		line("Lợi nhuận ròng", format.Currency(res.NetProfit))
	default:
		return "", fmt.Errorf("unknown scenario kind %q", sc.Kind)
	}

	return b.String(), nil
}
