package trip

import (
	"testing"

	"wanderlust/internal/models"
)

// memProvider is an in-memory storage.Provider that records how often the
// store writes through it.
type memProvider struct {
	trips     []models.Trip
	currentID string
	theme     string
	saves     int
}

func (p *memProvider) Load() error  { return nil }
func (p *memProvider) Close() error { return nil }

func (p *memProvider) GetTrips() []models.Trip {
	out := make([]models.Trip, len(p.trips))
	for i, t := range p.trips {
		out[i] = t.Clone()
	}
	return out
}

func (p *memProvider) SaveTrips(trips []models.Trip) error {
	p.trips = make([]models.Trip, len(trips))
	for i, t := range trips {
		p.trips[i] = t.Clone()
	}
	p.saves++
	return nil
}

func (p *memProvider) GetCurrentTripID() string { return p.currentID }

func (p *memProvider) SaveCurrentTripID(id string) error {
	p.currentID = id
	return nil
}

func (p *memProvider) GetTheme() string { return p.theme }

func (p *memProvider) SaveTheme(theme string) error {
	p.theme = theme
	return nil
}

func (p *memProvider) GetConfigPath() string { return "" }

func newTestStore(t *testing.T) (*Store, *memProvider) {
	t.Helper()
	p := &memProvider{}
	return NewStore(p), p
}

func TestCreateTrip_OneDayPerCalendarDate(t *testing.T) {
	s, _ := newTestStore(t)

	trip := s.CreateTrip("Japan", "Tokyo", "Berlin", "2026-03-10", "2026-03-13")

	if len(trip.Days) != 4 {
		t.Fatalf("expected 4 days, got %d", len(trip.Days))
	}
	wantDates := []string{"2026-03-10", "2026-03-11", "2026-03-12", "2026-03-13"}
	for i, d := range trip.Days {
		if d.Date != wantDates[i] {
			t.Errorf("day %d: expected date %s, got %s", i, wantDates[i], d.Date)
		}
		if d.ID == "" {
			t.Errorf("day %d: missing id", i)
		}
		if d.Activities == nil {
			t.Errorf("day %d: activities should be initialized", i)
		}
	}
	if trip.ID == "" {
		t.Error("trip should have an id")
	}
	if s.CurrentTripID() != trip.ID {
		t.Error("new trip should become current")
	}
}

func TestCreateTrip_EndBeforeStartStillGetsOneDay(t *testing.T) {
	s, _ := newTestStore(t)

	trip := s.CreateTrip("Quick", "Paris", "", "2026-03-10", "2026-03-08")

	if len(trip.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(trip.Days))
	}
	if trip.DepartureLocation != "Home" {
		t.Errorf("expected default departure location Home, got %q", trip.DepartureLocation)
	}
}

func TestNewStore_FallsBackToFirstTrip(t *testing.T) {
	p := &memProvider{
		trips: []models.Trip{{ID: "t1", Name: "First"}, {ID: "t2", Name: "Second"}},
	}

	s := NewStore(p)

	if got := s.CurrentTripID(); got != "t1" {
		t.Errorf("expected fallback to first trip, got %q", got)
	}
}

func TestCurrentTrip_StaleSelectionFallsBackToFirst(t *testing.T) {
	p := &memProvider{
		trips:     []models.Trip{{ID: "t1", Name: "First"}},
		currentID: "gone",
	}
	s := NewStore(p)

	current, ok := s.CurrentTrip()
	if !ok {
		t.Fatal("expected a current trip")
	}
	if current.ID != "t1" {
		t.Errorf("expected first trip, got %q", current.ID)
	}
}

func TestCurrentTrip_EmptyStore(t *testing.T) {
	s, _ := newTestStore(t)

	if _, ok := s.CurrentTrip(); ok {
		t.Error("empty store should have no current trip")
	}
}

func TestDeleteTrip_CurrentFallsBackToFirstRemaining(t *testing.T) {
	s, _ := newTestStore(t)
	first := s.CreateTrip("One", "A", "", "2026-01-01", "2026-01-01")
	second := s.CreateTrip("Two", "B", "", "2026-02-01", "2026-02-01")

	s.DeleteTrip(second.ID)

	if got := s.CurrentTripID(); got != first.ID {
		t.Errorf("expected current to fall back to %q, got %q", first.ID, got)
	}

	s.DeleteTrip(first.ID)

	if got := s.CurrentTripID(); got != "" {
		t.Errorf("expected no current trip, got %q", got)
	}
	if len(s.Trips()) != 0 {
		t.Error("expected empty collection")
	}
}

func TestDeleteTrip_UnknownIDIsNoOp(t *testing.T) {
	s, p := newTestStore(t)
	s.CreateTrip("One", "A", "", "2026-01-01", "2026-01-01")
	saves := p.saves

	s.DeleteTrip("nope")

	if p.saves != saves {
		t.Error("no-op should not persist")
	}
	if len(s.Trips()) != 1 {
		t.Error("collection should be unchanged")
	}
}

func TestUpdateTrip_PatchesOnlyProvidedFields(t *testing.T) {
	s, _ := newTestStore(t)
	trip := s.CreateTrip("Japan", "Tokyo", "Berlin", "2026-03-10", "2026-03-12")

	name := "Japan 2026"
	s.UpdateTrip(trip.ID, models.TripPatch{Name: &name})

	got, _ := s.CurrentTrip()
	if got.Name != "Japan 2026" {
		t.Errorf("expected patched name, got %q", got.Name)
	}
	if got.Destination != "Tokyo" {
		t.Errorf("destination should be untouched, got %q", got.Destination)
	}
	if len(got.Days) != 3 {
		t.Errorf("days should be untouched, got %d", len(got.Days))
	}
}

func TestAddDay_KeepsDaysSortedByDate(t *testing.T) {
	s, _ := newTestStore(t)
	s.CreateTrip("Trip", "X", "", "2026-03-10", "2026-03-10")
	s.AddDay("2026-03-14")
	s.AddDay("2026-03-12")

	current, _ := s.CurrentTrip()
	wantDates := []string{"2026-03-10", "2026-03-12", "2026-03-14"}
	if len(current.Days) != len(wantDates) {
		t.Fatalf("expected %d days, got %d", len(wantDates), len(current.Days))
	}
	for i, d := range current.Days {
		if d.Date != wantDates[i] {
			t.Errorf("day %d: expected %s, got %s", i, wantDates[i], d.Date)
		}
	}
}

func TestAddDay_DuplicateDateLandsAfterExisting(t *testing.T) {
	s, _ := newTestStore(t)
	s.CreateTrip("Trip", "X", "", "2026-03-10", "2026-03-11")
	before, _ := s.CurrentTrip()
	existingID := before.Days[0].ID

	s.AddDay("2026-03-10")

	current, _ := s.CurrentTrip()
	if len(current.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(current.Days))
	}
	if current.Days[0].ID != existingID {
		t.Error("existing day should keep its position")
	}
	if current.Days[1].Date != "2026-03-10" {
		t.Errorf("duplicate should land second, got %s", current.Days[1].Date)
	}
}

func TestRemoveDay_RemovesActivitiesWithIt(t *testing.T) {
	s, _ := newTestStore(t)
	s.CreateTrip("Trip", "X", "", "2026-03-10", "2026-03-11")
	current, _ := s.CurrentTrip()
	dayID := current.Days[0].ID
	s.AddActivity(dayID, models.Activity{Title: "Museum"})

	s.RemoveDay(dayID)

	current, _ = s.CurrentTrip()
	if len(current.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(current.Days))
	}
	for _, d := range current.Days {
		if d.ID == dayID {
			t.Error("removed day still present")
		}
	}
}

func TestAddActivity_AssignsIDAndDefaultTimezone(t *testing.T) {
	s, _ := newTestStore(t)
	s.CreateTrip("Trip", "X", "", "2026-03-10", "2026-03-10")
	current, _ := s.CurrentTrip()
	dayID := current.Days[0].ID

	a, ok := s.AddActivity(dayID, models.Activity{ID: "caller-supplied", Title: "Museum"})
	if !ok {
		t.Fatal("expected activity to be added")
	}
	if a.ID == "" || a.ID == "caller-supplied" {
		t.Errorf("store should assign the id, got %q", a.ID)
	}
	if a.Timezone != models.TimezoneLocal {
		t.Errorf("expected default timezone local, got %q", a.Timezone)
	}

	b, _ := s.AddActivity(dayID, models.Activity{Title: "Dinner"})
	current, _ = s.CurrentTrip()
	acts := current.Days[0].Activities
	if len(acts) != 2 || acts[0].ID != a.ID || acts[1].ID != b.ID {
		t.Error("activities should append in insertion order")
	}
}

func TestAddActivity_UnknownDay(t *testing.T) {
	s, p := newTestStore(t)
	s.CreateTrip("Trip", "X", "", "2026-03-10", "2026-03-10")
	saves := p.saves

	if _, ok := s.AddActivity("nope", models.Activity{Title: "Museum"}); ok {
		t.Error("expected failure for unknown day")
	}
	if p.saves != saves {
		t.Error("no-op should not persist")
	}
}

func TestUpdateActivity_TogglesCompletion(t *testing.T) {
	s, _ := newTestStore(t)
	s.CreateTrip("Trip", "X", "", "2026-03-10", "2026-03-10")
	current, _ := s.CurrentTrip()
	dayID := current.Days[0].ID
	a, _ := s.AddActivity(dayID, models.Activity{Title: "Museum", Time: "10:00"})

	done := true
	s.UpdateActivity(dayID, a.ID, models.ActivityPatch{IsCompleted: &done})

	current, _ = s.CurrentTrip()
	got := current.Days[0].Activities[0]
	if !got.IsCompleted {
		t.Error("expected activity to be completed")
	}
	if got.Time != "10:00" {
		t.Errorf("time should be untouched, got %q", got.Time)
	}
}

func TestRemoveActivity(t *testing.T) {
	s, _ := newTestStore(t)
	s.CreateTrip("Trip", "X", "", "2026-03-10", "2026-03-10")
	current, _ := s.CurrentTrip()
	dayID := current.Days[0].ID
	a, _ := s.AddActivity(dayID, models.Activity{Title: "Museum"})
	b, _ := s.AddActivity(dayID, models.Activity{Title: "Dinner"})

	s.RemoveActivity(dayID, a.ID)

	current, _ = s.CurrentTrip()
	acts := current.Days[0].Activities
	if len(acts) != 1 || acts[0].ID != b.ID {
		t.Errorf("expected only %q to remain", b.Title)
	}
}

func TestReorderDays_RestoresChronologicalOrder(t *testing.T) {
	p := &memProvider{
		trips: []models.Trip{{
			ID: "t1",
			Days: []models.Day{
				{ID: "d3", Date: "2026-03-12"},
				{ID: "d1", Date: "2026-03-10"},
				{ID: "d2", Date: "2026-03-11"},
			},
		}},
	}
	s := NewStore(p)

	s.ReorderDays(2, 0)

	current, _ := s.CurrentTrip()
	wantIDs := []string{"d1", "d2", "d3"}
	for i, d := range current.Days {
		if d.ID != wantIDs[i] {
			t.Errorf("day %d: expected %s, got %s", i, wantIDs[i], d.ID)
		}
	}
}

func TestMutations_PersistAndNotify(t *testing.T) {
	s, p := newTestStore(t)
	notified := 0
	s.Subscribe(func() { notified++ })

	trip := s.CreateTrip("Trip", "X", "", "2026-03-10", "2026-03-10")
	s.SetCurrentTrip(trip.ID)
	s.AddDay("2026-03-11")

	if notified != 3 {
		t.Errorf("expected 3 notifications, got %d", notified)
	}
	if p.saves != 3 {
		t.Errorf("expected 3 persisted writes, got %d", p.saves)
	}
	if len(p.trips) != 1 || len(p.trips[0].Days) != 2 {
		t.Error("provider should hold the latest state")
	}
	if p.currentID != trip.ID {
		t.Error("provider should hold the current selection")
	}
}

func TestTrips_ReturnsIndependentCopy(t *testing.T) {
	s, _ := newTestStore(t)
	s.CreateTrip("Trip", "X", "", "2026-03-10", "2026-03-10")

	trips := s.Trips()
	trips[0].Name = "mutated"
	trips[0].Days[0].Date = "1999-01-01"

	current, _ := s.CurrentTrip()
	if current.Name != "Trip" || current.Days[0].Date != "2026-03-10" {
		t.Error("store state should be isolated from returned copies")
	}
}
