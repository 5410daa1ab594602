package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ocobiz/fnbcalc/internal/finance"
	"github.com/ocobiz/fnbcalc/internal/wizard"
)

// Settings is the finance_settings singleton.
type Settings struct {
	VATPercent               float64 `json:"vatPercent"`
	DefaultShopDiscount      float64 `json:"defaultShopDiscount"`
	DefaultAppDiscount       float64 `json:"defaultAppDiscount"`
	DefaultWastagePercent    float64 `json:"defaultWastagePercent"`
	DefaultRecoveryYears     float64 `json:"defaultRecoveryYears"`
	DefaultAppCommissionRate float64 `json:"defaultAppCommissionRate"`
	DefaultCOGSRate          float64 `json:"defaultCogsRate"`
	Currency                 string  `json:"currency"`
}

// Policy returns the calculation policy configured by s.
func (s Settings) Policy() finance.Policy {
	return finance.Policy{VATPercent: s.VATPercent}
}

// Defaults returns the values a fresh wizard state starts from.
func (s Settings) Defaults() wizard.Defaults {
	d := wizard.DefaultDefaults()
	d.RecoveryYears = s.DefaultRecoveryYears
	d.ShopDiscount = s.DefaultShopDiscount
	d.AppDiscount = s.DefaultAppDiscount
	d.AppCommissionRate = s.DefaultAppCommissionRate
	d.COGSRate = s.DefaultCOGSRate
	d.WastagePercent = s.DefaultWastagePercent
	return d
}

// EnsureSettings creates the singleton row with vatPercent and the column
// defaults when it does not exist yet. It reports whether a row was inserted.
func (s *Store) EnsureSettings(vatPercent float64) (bool, error) {
	result, err := s.db.Exec(`
		INSERT INTO finance_settings (id, vat_percent, currency)
		VALUES (1, ?, 'VND')
		ON CONFLICT(id) DO NOTHING
	`, vatPercent)
	if err != nil {
		return false, fmt.Errorf("ensure finance_settings singleton: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ensure finance_settings singleton: %w", err)
	}
	return affected > 0, nil
}

// GetSettings loads the singleton row.
func (s *Store) GetSettings() (Settings, error) {
	var st Settings
	err := s.db.QueryRow(`
		SELECT
			vat_percent,
			default_shop_discount,
			default_app_discount,
			default_wastage_percent,
			default_recovery_years,
			default_app_commission_rate,
			default_cogs_rate,
			currency
		FROM finance_settings
		WHERE id = 1
	`).Scan(
		&st.VATPercent,
		&st.DefaultShopDiscount,
		&st.DefaultAppDiscount,
		&st.DefaultWastagePercent,
		&st.DefaultRecoveryYears,
		&st.DefaultAppCommissionRate,
		&st.DefaultCOGSRate,
		&st.Currency,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Settings{}, fmt.Errorf("finance_settings singleton: %w", ErrNotFound)
		}
		return Settings{}, fmt.Errorf("query finance_settings: %w", err)
	}
	return st, nil
}

// UpdateSettings overwrites the singleton row. The currency is fixed to VND.
func (s *Store) UpdateSettings(st Settings) error {
	result, err := s.db.Exec(`
		UPDATE finance_settings
		SET
			vat_percent = ?,
			default_shop_discount = ?,
			default_app_discount = ?,
			default_wastage_percent = ?,
			default_recovery_years = ?,
			default_app_commission_rate = ?,
			default_cogs_rate = ?,
			currency = 'VND',
			updated_at = CURRENT_TIMESTAMP
		WHERE id = 1
	`,
		st.VATPercent,
		st.DefaultShopDiscount,
		st.DefaultAppDiscount,
		st.DefaultWastagePercent,
		st.DefaultRecoveryYears,
		st.DefaultAppCommissionRate,
		st.DefaultCOGSRate,
	)
	if err != nil {
		return fmt.Errorf("update finance_settings: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update finance_settings: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("finance_settings singleton: %w", ErrNotFound)
	}
	return nil
}

// PurchaseUnit is a label offered for the "bought by" field of an ingredient.
type PurchaseUnit struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// ListPurchaseUnits returns the labels in display order.
func (s *Store) ListPurchaseUnits() ([]PurchaseUnit, error) {
	rows, err := s.db.Query(`SELECT id, label FROM purchase_units ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("query purchase units: %w", err)
	}
	defer rows.Close()

	units := make([]PurchaseUnit, 0)
	for rows.Next() {
		var u PurchaseUnit
		if err := rows.Scan(&u.ID, &u.Label); err != nil {
			return nil, fmt.Errorf("scan purchase unit: %w", err)
		}
		units = append(units, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchase units: %w", err)
	}

	return units, nil
}
