package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ocobiz/fnbcalc/internal/finance"
	"github.com/ocobiz/fnbcalc/internal/format"
	"github.com/ocobiz/fnbcalc/internal/store"
)

func createScenario(t *testing.T, ts *testServer, req createScenarioRequest) int64 {
	t.Helper()

	rr := ts.do(t, http.MethodPost, "/api/scenarios", req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var body struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, rr, &body)
	return body.ID
}

func TestCreateScenarioValidation(t *testing.T) {
	ts := newTestServer(t)

	cases := []createScenarioRequest{
		{Kind: "quick"},
		{Kind: store.KindFull},
		{Kind: store.KindLite},
	}
	for _, req := range cases {
		if rr := ts.do(t, http.MethodPost, "/api/scenarios", req); rr.Code != http.StatusBadRequest {
			t.Fatalf("kind %q: expected status 400, got %d", req.Kind, rr.Code)
		}
	}

	snap := sampleSnapshot()
	snap.Capex.RecoveryYears = -1
	if rr := ts.do(t, http.MethodPost, "/api/scenarios", createScenarioRequest{Kind: store.KindFull, Snapshot: &snap}); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for negative recovery years, got %d", rr.Code)
	}
}

func TestScenarioListAndQuery(t *testing.T) {
	ts := newTestServer(t)

	snap := sampleSnapshot()
	lite := sampleLite()
	createScenario(t, ts, createScenarioRequest{Kind: store.KindFull, Title: "Cà phê Quận 1", Snapshot: &snap})
	createScenario(t, ts, createScenarioRequest{Kind: store.KindLite, Title: "Trà sữa", Notes: "gần trường", Lite: &lite})

	rr := ts.do(t, http.MethodGet, "/api/scenarios", nil)
	var all []store.ScenarioSummary
	decodeBody(t, rr, &all)
	if len(all) != 2 || all[0].Title != "Trà sữa" {
		t.Fatalf("expected newest first, got %+v", all)
	}
	if all[0].NetProfit != 25_000_000 {
		t.Fatalf("expected lite net profit 25000000, got %v", all[0].NetProfit)
	}

	rr = ts.do(t, http.MethodGet, "/api/scenarios?q=tr%C6%B0%E1%BB%9Dng", nil)
	var filtered []store.ScenarioSummary
	decodeBody(t, rr, &filtered)
	if len(filtered) != 1 || filtered[0].Kind != store.KindLite {
		t.Fatalf("expected notes filter to match the lite scenario, got %+v", filtered)
	}
}

func TestScenarioDetailReadsStoredResultWithoutRecalculation(t *testing.T) {
	ts := newTestServer(t)

	snap := sampleSnapshot()
	id := createScenario(t, ts, createScenarioRequest{Kind: store.KindFull, Title: "Latte", Snapshot: &snap})

	// Settings changes must not affect saved scenarios.
	if err := ts.srv.store.UpdateSettings(store.Settings{VATPercent: 10, DefaultRecoveryYears: 3}); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	rr := ts.do(t, http.MethodGet, "/api/scenarios/1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var body struct {
		ID         int64            `json:"id"`
		VATPercent float64          `json:"vatPercent"`
		Result     finance.Estimate `json:"result"`
	}
	decodeBody(t, rr, &body)
	if body.ID != id || body.VATPercent != 8 {
		t.Fatalf("unexpected scenario header: id=%d vat=%v", body.ID, body.VATPercent)
	}
	want := 50_000_000 / 1.08
	if d := body.Result.PnL.NetRevenue - want; d > 1e-6 || d < -1e-6 {
		t.Fatalf("expected stored net revenue %v, got %v", want, body.Result.PnL.NetRevenue)
	}
}

func TestScenarioTextReturnsPlainText(t *testing.T) {
	ts := newTestServer(t)

	lite := sampleLite()
	createScenario(t, ts, createScenarioRequest{Kind: store.KindLite, Title: "Trà sữa", Lite: &lite})

	rr := ts.do(t, http.MethodGet, "/api/scenarios/1/text", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Header().Get("Content-Type"), "text/plain") {
		t.Fatalf("expected text/plain content type, got %q", rr.Header().Get("Content-Type"))
	}

	body := rr.Body.String()
	for _, expected := range []string{"Trà sữa", "Ước tính nhanh theo tháng", "Lợi nhuận ròng:", format.Currency(25_000_000)} {
		if !strings.Contains(body, expected) {
			t.Fatalf("expected body to contain %q, got: %s", expected, body)
		}
	}
}

func TestFullScenarioText(t *testing.T) {
	ts := newTestServer(t)

	snap := sampleSnapshot()
	createScenario(t, ts, createScenarioRequest{Kind: store.KindFull, Snapshot: &snap})

	rr := ts.do(t, http.MethodGet, "/api/scenarios/1/text", nil)
	body := rr.Body.String()
	if !strings.Contains(body, "50.000.000\u00a0₫") {
		t.Fatalf("expected a no-break space before the currency symbol, got: %s", body)
	}
	for _, expected := range []string{"Kịch bản #1", "VAT 8.0%", "Doanh thu (gồm VAT):", format.Currency(50_000_000), "Khấu hao:", format.Currency(5_000_000)} {
		if !strings.Contains(body, expected) {
			t.Fatalf("expected body to contain %q, got: %s", expected, body)
		}
	}
}

func TestScenarioNotFoundAndInvalidID(t *testing.T) {
	ts := newTestServer(t)

	if rr := ts.do(t, http.MethodGet, "/api/scenarios/42", nil); rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
	if rr := ts.do(t, http.MethodGet, "/api/scenarios/abc/text", nil); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}
