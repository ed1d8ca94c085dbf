package storage

import (
	"encoding/json"

	"wanderlust/internal/logger"
	"wanderlust/internal/models"
)

// Provider is the durable local key-value storage behind the trip store.
// The Get methods never fail: a missing or unreadable value yields its zero
// form (an empty collection, an empty id) and the problem is logged.
type Provider interface {
	// Lifecycle
	Load() error
	Close() error

	// Trip collection, stored under the "trips" key as a JSON array
	GetTrips() []models.Trip
	SaveTrips(trips []models.Trip) error

	// Current trip selection, stored under the "currentTripId" key
	GetCurrentTripID() string
	SaveCurrentTripID(id string) error

	// Presentation theme, stored under the "theme" key
	GetTheme() string
	SaveTheme(theme string) error

	// Utils
	GetConfigPath() string
}

// decodeTrips parses the persisted trip collection. Malformed data is
// recovered as an empty collection, never an error.
func decodeTrips(data []byte) []models.Trip {
	if len(data) == 0 {
		return []models.Trip{}
	}
	var trips []models.Trip
	if err := json.Unmarshal(data, &trips); err != nil {
		logger.Warn("Discarding unparsable trip collection", "error", err)
		return []models.Trip{}
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	return trips
}

func encodeTrips(trips []models.Trip) ([]byte, error) {
	if trips == nil {
		trips = []models.Trip{}
	}
	return json.Marshal(trips)
}
