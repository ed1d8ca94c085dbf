package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"wanderlust/internal/constants"
	"wanderlust/internal/logger"
	"wanderlust/internal/models"
)

// DiskvStore persists each storage key as its own file under the config
// directory. It is the default backend.
type DiskvStore struct {
	configPath string
	d          *diskv.Diskv
}

func NewDiskvStore(configPath string) *DiskvStore {
	return &DiskvStore{
		configPath: configPath,
	}
}

func (s *DiskvStore) Load() error {
	if err := os.MkdirAll(s.configPath, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	s.d = diskv.New(diskv.Options{
		BasePath:     filepath.Join(s.configPath, "data"),
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})

	return nil
}

func (s *DiskvStore) Close() error {
	return nil
}

func (s *DiskvStore) GetTrips() []models.Trip {
	data, err := s.d.Read(constants.StorageKeyTrips)
	if err != nil {
		// First run or unreadable value; start empty either way.
		return []models.Trip{}
	}
	return decodeTrips(data)
}

func (s *DiskvStore) SaveTrips(trips []models.Trip) error {
	data, err := encodeTrips(trips)
	if err != nil {
		return fmt.Errorf("failed to serialize trips: %w", err)
	}
	if err := s.d.Write(constants.StorageKeyTrips, data); err != nil {
		return fmt.Errorf("failed to write trips: %w", err)
	}
	return nil
}

func (s *DiskvStore) GetCurrentTripID() string {
	return s.readString(constants.StorageKeyCurrentTrip)
}

func (s *DiskvStore) SaveCurrentTripID(id string) error {
	return s.writeString(constants.StorageKeyCurrentTrip, id)
}

func (s *DiskvStore) GetTheme() string {
	return s.readString(constants.StorageKeyTheme)
}

func (s *DiskvStore) SaveTheme(theme string) error {
	return s.writeString(constants.StorageKeyTheme, theme)
}

func (s *DiskvStore) GetConfigPath() string {
	return s.configPath
}

func (s *DiskvStore) readString(key string) string {
	data, err := s.d.Read(key)
	if err != nil {
		return ""
	}
	return string(data)
}

func (s *DiskvStore) writeString(key, value string) error {
	if err := s.d.Write(key, []byte(value)); err != nil {
		logger.Debug("Key write failed", "key", key, "error", err)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
