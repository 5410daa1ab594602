package seed

import (
	"database/sql"
	"fmt"
)

// PurchaseUnits are the "bought by" labels offered out of the box, in display order.
var PurchaseUnits = []string{"Thùng", "Hộp", "Chai", "Lít", "Kg", "Bịch", "Gói", "Cây"}

// Config contains the values required by startup seed.
type Config struct {
	VATPercent float64
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
}

// Run executes the startup seed in an idempotent way. Existing settings are
// never overwritten.
func Run(db *sql.DB, cfg Config) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensureSettings(tx, cfg.VATPercent, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	for i, label := range PurchaseUnits {
		if err := ensurePurchaseUnit(tx, label, i, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureSettings(tx *sql.Tx, vatPercent float64, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM finance_settings WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check finance settings existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO finance_settings (id, vat_percent, currency)
		VALUES (1, ?, ?)
	`, vatPercent, "VND"); err != nil {
		return fmt.Errorf("insert finance settings singleton: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensurePurchaseUnit(tx *sql.Tx, label string, order int, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM purchase_units WHERE label = ? LIMIT 1)`, label).Scan(&exists); err != nil {
		return fmt.Errorf("check purchase unit %q existence: %w", label, err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`INSERT INTO purchase_units (label, sort_order) VALUES (?, ?)`, label, order); err != nil {
		return fmt.Errorf("insert purchase unit %q: %w", label, err)
	}
	stats.Inserts++
	return nil
}
