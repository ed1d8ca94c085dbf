// Package trip owns the in-memory trip collection and every mutation on it.
// Commands apply sequentially, persist to the storage provider after each
// change, and then fan out to subscribers with the new state available
// through the query surface. Commands that reference an unknown id are
// silent no-ops.
package trip

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"wanderlust/internal/logger"
	"wanderlust/internal/models"
	"wanderlust/internal/storage"
	"wanderlust/internal/utils"
)

type Store struct {
	mu          sync.Mutex
	provider    storage.Provider
	trips       []models.Trip
	currentID   string
	subscribers []func()
}

// NewStore builds a store hydrated from the provider. An absent or invalid
// persisted collection yields an empty one.
func NewStore(provider storage.Provider) *Store {
	s := &Store{
		provider: provider,
		trips:    provider.GetTrips(),
	}
	s.currentID = provider.GetCurrentTripID()
	if s.currentID == "" && len(s.trips) > 0 {
		s.currentID = s.trips[0].ID
	}
	return s
}

// Subscribe registers fn to run after every successful mutation.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// Trips returns a deep copy of the trip collection.
func (s *Store) Trips() []models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Trip, len(s.trips))
	for i, t := range s.trips {
		out[i] = t.Clone()
	}
	return out
}

// CurrentTripID returns the selected trip id, which may refer to a trip that
// no longer exists; CurrentTrip applies the first-trip fallback.
func (s *Store) CurrentTripID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID
}

// CurrentTrip returns a deep copy of the effective current trip: the trip
// matching the selected id, or the first trip when the id is stale.
func (s *Store) CurrentTrip() (models.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.currentTripLocked()
	if t == nil {
		return models.Trip{}, false
	}
	return t.Clone(), true
}

// SetCurrentTrip selects the trip to view and edit.
func (s *Store) SetCurrentTrip(id string) {
	s.mu.Lock()
	s.currentID = id
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// CreateTrip appends a new trip with one day per calendar date from startDate
// through endDate inclusive, selects it, and returns it. Date validation is
// the caller's responsibility.
func (s *Store) CreateTrip(name, destination, departureLocation, startDate, endDate string) models.Trip {
	if departureLocation == "" {
		departureLocation = "Home"
	}

	t := models.Trip{
		ID:                uuid.New().String(),
		Name:              name,
		Destination:       destination,
		DepartureLocation: departureLocation,
		StartDate:         startDate,
		EndDate:           endDate,
	}

	dayCount := utils.DaysBetween(startDate, endDate) + 1
	if dayCount < 1 {
		dayCount = 1
	}
	t.Days = make([]models.Day, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		t.Days = append(t.Days, models.Day{
			ID:         uuid.New().String(),
			Date:       utils.DateAddDays(startDate, i),
			Activities: []models.Activity{},
		})
	}

	s.mu.Lock()
	s.trips = append(s.trips, t)
	s.currentID = t.ID
	s.persistLocked()
	s.mu.Unlock()
	s.notify()

	return t.Clone()
}

// UpdateTrip merges the patch into the named trip.
func (s *Store) UpdateTrip(tripID string, patch models.TripPatch) {
	s.mu.Lock()
	t := s.findTripLocked(tripID)
	if t == nil {
		s.mu.Unlock()
		logger.Debug("UpdateTrip: trip not found", "id", tripID)
		return
	}
	patch.Apply(t)
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// DeleteTrip removes the trip. When the current trip is deleted the first
// remaining trip becomes current, or none if the collection is empty.
func (s *Store) DeleteTrip(tripID string) {
	s.mu.Lock()
	idx := -1
	for i := range s.trips {
		if s.trips[i].ID == tripID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		logger.Debug("DeleteTrip: trip not found", "id", tripID)
		return
	}

	s.trips = append(s.trips[:idx], s.trips[idx+1:]...)
	if s.currentID == tripID {
		if len(s.trips) > 0 {
			s.currentID = s.trips[0].ID
		} else {
			s.currentID = ""
		}
	}
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// AddDay inserts an empty day into the current trip, keeping the day
// sequence sorted ascending by date. A day with the same date as an existing
// one lands after it.
func (s *Store) AddDay(date string) {
	s.mu.Lock()
	t := s.currentTripLocked()
	if t == nil {
		s.mu.Unlock()
		return
	}

	day := models.Day{
		ID:         uuid.New().String(),
		Date:       date,
		Activities: []models.Activity{},
	}

	pos := len(t.Days)
	for i := range t.Days {
		if t.Days[i].Date > date {
			pos = i
			break
		}
	}
	t.Days = append(t.Days, models.Day{})
	copy(t.Days[pos+1:], t.Days[pos:])
	t.Days[pos] = day

	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// RemoveDay removes the day and all of its activities from the current trip.
func (s *Store) RemoveDay(dayID string) {
	s.mu.Lock()
	t := s.currentTripLocked()
	if t == nil {
		s.mu.Unlock()
		return
	}

	idx := -1
	for i := range t.Days {
		if t.Days[i].ID == dayID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		logger.Debug("RemoveDay: day not found", "id", dayID)
		return
	}

	t.Days = append(t.Days[:idx], t.Days[idx+1:]...)
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// AddActivity appends the activity to the named day of the current trip. The
// store assigns the id; any caller-supplied id is overwritten. The stored
// activity is returned along with whether the day was found.
func (s *Store) AddActivity(dayID string, activity models.Activity) (models.Activity, bool) {
	s.mu.Lock()
	t := s.currentTripLocked()
	if t == nil {
		s.mu.Unlock()
		return models.Activity{}, false
	}
	day := findDay(t, dayID)
	if day == nil {
		s.mu.Unlock()
		logger.Debug("AddActivity: day not found", "id", dayID)
		return models.Activity{}, false
	}

	activity.ID = uuid.New().String()
	if activity.Timezone == "" {
		activity.Timezone = models.TimezoneLocal
	}
	day.Activities = append(day.Activities, activity)

	s.persistLocked()
	s.mu.Unlock()
	s.notify()

	return activity, true
}

// UpdateActivity merges the patch into the named activity.
func (s *Store) UpdateActivity(dayID, activityID string, patch models.ActivityPatch) {
	s.mu.Lock()
	t := s.currentTripLocked()
	if t == nil {
		s.mu.Unlock()
		return
	}
	day := findDay(t, dayID)
	if day == nil {
		s.mu.Unlock()
		logger.Debug("UpdateActivity: day not found", "id", dayID)
		return
	}

	for i := range day.Activities {
		if day.Activities[i].ID == activityID {
			patch.Apply(&day.Activities[i])
			s.persistLocked()
			s.mu.Unlock()
			s.notify()
			return
		}
	}

	s.mu.Unlock()
	logger.Debug("UpdateActivity: activity not found", "id", activityID)
}

// RemoveActivity removes the activity from the day's sequence.
func (s *Store) RemoveActivity(dayID, activityID string) {
	s.mu.Lock()
	t := s.currentTripLocked()
	if t == nil {
		s.mu.Unlock()
		return
	}
	day := findDay(t, dayID)
	if day == nil {
		s.mu.Unlock()
		logger.Debug("RemoveActivity: day not found", "id", dayID)
		return
	}

	for i := range day.Activities {
		if day.Activities[i].ID == activityID {
			day.Activities = append(day.Activities[:i], day.Activities[i+1:]...)
			s.persistLocked()
			s.mu.Unlock()
			s.notify()
			return
		}
	}

	s.mu.Unlock()
	logger.Debug("RemoveActivity: activity not found", "id", activityID)
}

// ReorderDays re-normalizes the current trip's day sequence by date
// ascending. The indices supplied by the drag layer are accepted but the
// chronological invariant wins; day-level drags have no positional effect
// beyond triggering the re-sort.
func (s *Store) ReorderDays(sourceIndex, destinationIndex int) {
	_ = sourceIndex
	_ = destinationIndex

	s.mu.Lock()
	t := s.currentTripLocked()
	if t == nil {
		s.mu.Unlock()
		return
	}

	sort.SliceStable(t.Days, func(i, j int) bool {
		return t.Days[i].Date < t.Days[j].Date
	})

	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// currentTripLocked resolves the effective current trip in place. Callers
// must hold s.mu.
func (s *Store) currentTripLocked() *models.Trip {
	for i := range s.trips {
		if s.trips[i].ID == s.currentID {
			return &s.trips[i]
		}
	}
	if len(s.trips) > 0 {
		return &s.trips[0]
	}
	return nil
}

func (s *Store) findTripLocked(id string) *models.Trip {
	for i := range s.trips {
		if s.trips[i].ID == id {
			return &s.trips[i]
		}
	}
	return nil
}

func findDay(t *models.Trip, dayID string) *models.Day {
	for i := range t.Days {
		if t.Days[i].ID == dayID {
			return &t.Days[i]
		}
	}
	return nil
}

// persistLocked writes the collection and selection through the provider.
// Failures are logged and absorbed; in-memory state stays authoritative.
func (s *Store) persistLocked() {
	if err := s.provider.SaveTrips(s.trips); err != nil {
		logger.Error("Failed to persist trips", "error", err)
	}
	if err := s.provider.SaveCurrentTripID(s.currentID); err != nil {
		logger.Error("Failed to persist current trip id", "error", err)
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
