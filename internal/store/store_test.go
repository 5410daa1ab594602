package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ocobiz/fnbcalc/internal/db"
	"github.com/ocobiz/fnbcalc/internal/finance"
	"github.com/ocobiz/fnbcalc/internal/migrations"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "store-test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := migrations.Up(database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return New(database)
}

func insertSettings(t *testing.T, s *Store, vat float64) {
	t.Helper()

	if _, err := s.db.Exec(`INSERT INTO finance_settings (id, vat_percent) VALUES (1, ?)`, vat); err != nil {
		t.Fatalf("insert finance settings: %v", err)
	}
}

func TestGetSettingsMissingSingleton(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if _, err := s.GetSettings(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.UpdateSettings(Settings{VATPercent: 10}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
}

func TestEnsureSettingsIsIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	inserted, err := s.EnsureSettings(10)
	if err != nil || !inserted {
		t.Fatalf("expected first ensure to insert, got inserted=%v err=%v", inserted, err)
	}
	inserted, err = s.EnsureSettings(5)
	if err != nil || inserted {
		t.Fatalf("expected second ensure to be a no-op, got inserted=%v err=%v", inserted, err)
	}

	got, err := s.GetSettings()
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if got.VATPercent != 10 {
		t.Fatalf("expected VAT 10 from the first ensure, got %v", got.VATPercent)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	insertSettings(t, s, 8)

	got, err := s.GetSettings()
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if got.VATPercent != 8 || got.Currency != "VND" {
		t.Fatalf("unexpected defaults: %+v", got)
	}
	if got.DefaultAppDiscount != 25 || got.DefaultWastagePercent != 5 || got.DefaultRecoveryYears != 3 {
		t.Fatalf("unexpected column defaults: %+v", got)
	}

	want := Settings{
		VATPercent:               10,
		DefaultShopDiscount:      5,
		DefaultAppDiscount:       20,
		DefaultWastagePercent:    3,
		DefaultRecoveryYears:     2,
		DefaultAppCommissionRate: 30,
		DefaultCOGSRate:          40,
		Currency:                 "VND",
	}
	if err := s.UpdateSettings(want); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	got, err = s.GetSettings()
	if err != nil {
		t.Fatalf("get settings after update: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if got.Policy().VATPercent != 10 {
		t.Fatalf("expected policy VAT 10, got %v", got.Policy().VATPercent)
	}

	d := got.Defaults()
	if d.RecoveryYears != 2 || d.AppDiscount != 20 || d.WastagePercent != 3 || d.COGSRate != 40 {
		t.Fatalf("unexpected wizard defaults: %+v", d)
	}
}

func TestListPurchaseUnitsOrdered(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	for _, u := range []struct {
		label string
		order int
	}{{"Kg", 2}, {"Thùng", 0}, {"Hộp", 1}} {
		if _, err := s.db.Exec(`INSERT INTO purchase_units (label, sort_order) VALUES (?, ?)`, u.label, u.order); err != nil {
			t.Fatalf("insert purchase unit: %v", err)
		}
	}

	units, err := s.ListPurchaseUnits()
	if err != nil {
		t.Fatalf("list purchase units: %v", err)
	}
	if len(units) != 3 {
		t.Fatalf("expected 3 units, got %d", len(units))
	}
	for i, label := range []string{"Thùng", "Hộp", "Kg"} {
		if units[i].Label != label {
			t.Fatalf("unit %d: expected %q, got %q", i, label, units[i].Label)
		}
	}
}

func TestScenarioStoredWithoutRecalculation(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	input := finance.LiteInput{Investment: 100_000_000, RecoveryYears: 2, StoreRevenue: 60_000_000}
	result := finance.Lite(input)

	id, err := s.CreateScenario(NewScenario{
		Kind:       KindLite,
		Title:      "Quán Quận 3",
		Notes:      "mặt bằng mới",
		VATPercent: 8,
		NetProfit:  result.NetProfit,
		Input:      input,
		Result:     result,
	})
	if err != nil {
		t.Fatalf("create scenario: %v", err)
	}

	if _, err := s.db.Exec(`UPDATE scenarios SET net_profit = 123 WHERE id = ?`, id); err != nil {
		t.Fatalf("tamper net profit: %v", err)
	}

	got, err := s.GetScenario(id)
	if err != nil {
		t.Fatalf("get scenario: %v", err)
	}
	if got.Kind != KindLite || got.Title != "Quán Quận 3" || got.Notes != "mặt bằng mới" {
		t.Fatalf("unexpected scenario: %+v", got.ScenarioSummary)
	}
	if got.NetProfit != 123 {
		t.Fatalf("expected stored net profit 123, got %v", got.NetProfit)
	}

	var decoded finance.LiteResult
	if err := json.Unmarshal(got.Result, &decoded); err != nil {
		t.Fatalf("decode stored result: %v", err)
	}
	if decoded.NetProfit != result.NetProfit {
		t.Fatalf("expected stored result net profit %v, got %v", result.NetProfit, decoded.NetProfit)
	}
}

func TestCreateScenarioRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if _, err := s.CreateScenario(NewScenario{Kind: "quick"}); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestGetScenarioNotFound(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if _, err := s.GetScenario(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListScenariosOrderingAndFilter(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	rows := []struct {
		createdAt string
		title     string
		notes     string
	}{
		{"2026-01-01 09:00:00", "Trà sữa Gò Vấp", ""},
		{"2026-03-01 09:00:00", "Cà phê Quận 1", "thuê mặt bằng"},
		{"2026-02-01 09:00:00", "Bánh mì", "gần trường cà phê"},
	}
	for _, r := range rows {
		if _, err := s.db.Exec(`
			INSERT INTO scenarios (created_at, kind, title, notes, vat_percent_snapshot, net_profit, input_json, result_json)
			VALUES (?, 'full', ?, ?, 8, 0, '{}', '{}')
		`, r.createdAt, r.title, r.notes); err != nil {
			t.Fatalf("insert scenario: %v", err)
		}
	}

	all, err := s.ListScenarios("")
	if err != nil {
		t.Fatalf("list scenarios: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(all))
	}
	for i, title := range []string{"Cà phê Quận 1", "Bánh mì", "Trà sữa Gò Vấp"} {
		if all[i].Title != title {
			t.Fatalf("position %d: expected %q, got %q", i, title, all[i].Title)
		}
	}

	filtered, err := s.ListScenarios("cà phê")
	if err != nil {
		t.Fatalf("list filtered scenarios: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 filtered scenarios, got %d", len(filtered))
	}
	if filtered[0].Title != "Cà phê Quận 1" || filtered[1].Title != "Bánh mì" {
		t.Fatalf("unexpected filtered order: %+v", filtered)
	}
}

func TestWaitlistEntries(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	for _, name := range []string{"An", "Bình"} {
		if _, err := s.CreateWaitlistEntry(WaitlistEntry{Name: name, Phone: "0900000000", FavoriteFeature: "Tính giá vốn"}); err != nil {
			t.Fatalf("create waitlist entry: %v", err)
		}
	}

	entries, err := s.ListWaitlistEntries()
	if err != nil {
		t.Fatalf("list waitlist entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "Bình" || entries[1].Name != "An" {
		t.Fatalf("expected newest first, got %+v", entries)
	}
	if entries[0].CreatedAt == "" {
		t.Fatalf("expected created_at to be populated")
	}
}
