package store

import "fmt"

// WaitlistEntry is someone who asked to be told when the detailed version ships.
type WaitlistEntry struct {
	ID              int64  `json:"id"`
	CreatedAt       string `json:"createdAt"`
	Name            string `json:"name"`
	ShopName        string `json:"shopName"`
	Phone           string `json:"phone"`
	FavoriteFeature string `json:"favoriteFeature"`
}

// CreateWaitlistEntry stores e and returns its id.
func (s *Store) CreateWaitlistEntry(e WaitlistEntry) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO waitlist_entries (name, shop_name, phone, favorite_feature)
		VALUES (?, ?, ?, ?)
	`, e.Name, e.ShopName, e.Phone, e.FavoriteFeature)
	if err != nil {
		return 0, fmt.Errorf("insert waitlist entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("waitlist entry id: %w", err)
	}
	return id, nil
}

// ListWaitlistEntries returns every entry, newest first.
func (s *Store) ListWaitlistEntries() ([]WaitlistEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, created_at, name, COALESCE(shop_name, ''), phone, COALESCE(favorite_feature, '')
		FROM waitlist_entries
		ORDER BY datetime(created_at) DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query waitlist entries: %w", err)
	}
	defer rows.Close()

	entries := make([]WaitlistEntry, 0)
	for rows.Next() {
		var e WaitlistEntry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Name, &e.ShopName, &e.Phone, &e.FavoriteFeature); err != nil {
			return nil, fmt.Errorf("scan waitlist entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate waitlist entries: %w", err)
	}

	return entries, nil
}
