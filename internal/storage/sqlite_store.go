package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"wanderlust/internal/constants"
	"wanderlust/internal/logger"
	"wanderlust/internal/models"
)

// SQLiteStore keeps all storage keys in a single kv table. Selected when the
// config path points at a .db file.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Load() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = s.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create kv table: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) GetTrips() []models.Trip {
	return decodeTrips([]byte(s.readString(constants.StorageKeyTrips)))
}

func (s *SQLiteStore) SaveTrips(trips []models.Trip) error {
	data, err := encodeTrips(trips)
	if err != nil {
		return fmt.Errorf("failed to serialize trips: %w", err)
	}
	return s.writeString(constants.StorageKeyTrips, string(data))
}

func (s *SQLiteStore) GetCurrentTripID() string {
	return s.readString(constants.StorageKeyCurrentTrip)
}

func (s *SQLiteStore) SaveCurrentTripID(id string) error {
	return s.writeString(constants.StorageKeyCurrentTrip, id)
}

func (s *SQLiteStore) GetTheme() string {
	return s.readString(constants.StorageKeyTheme)
}

func (s *SQLiteStore) SaveTheme(theme string) error {
	return s.writeString(constants.StorageKeyTheme, theme)
}

func (s *SQLiteStore) GetConfigPath() string {
	return filepath.Dir(s.path)
}

func (s *SQLiteStore) readString(key string) string {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Warn("Key read failed", "key", key, "error", err)
		}
		return ""
	}
	return value
}

func (s *SQLiteStore) writeString(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
