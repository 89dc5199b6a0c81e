package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type Setting struct {
	Namespace string
	Key       string
	Value     string
}

// GetSetting returns the stored value and whether it exists.
func (s *Store) GetSetting(namespace, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		`SELECT value FROM settings WHERE namespace = ? AND key = ?`, namespace, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %s/%s: %w", namespace, key, err)
	}
	return value, true, nil
}

func (s *Store) SetSetting(namespace, key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO settings (namespace, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		namespace, key, value, now,
	)
	if err != nil {
		return fmt.Errorf("set setting %s/%s: %w", namespace, key, err)
	}
	return nil
}

func (s *Store) ListSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT namespace, key, value FROM settings ORDER BY namespace, key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var st Setting
		if err := rows.Scan(&st.Namespace, &st.Key, &st.Value); err != nil {
			return nil, err
		}
		settings = append(settings, st)
	}
	return settings, rows.Err()
}
