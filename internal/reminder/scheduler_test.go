package reminder

import (
	"sync"
	"testing"

	"wanderlust/internal/models"
)

type fakeSnapshot struct {
	trip    models.Trip
	hasTrip bool
}

func (f *fakeSnapshot) CurrentTrip() (models.Trip, bool) {
	return f.trip, f.hasTrip
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *recordingNotifier) Notify(tripName, activityTitle, timeOfDay string) {
	n.mu.Lock()
	n.calls = append(n.calls, tripName+"/"+activityTitle+"/"+timeOfDay)
	n.mu.Unlock()
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func tripWithActivities(titles ...string) models.Trip {
	day := models.Day{ID: "d1", Date: "2026-03-10"}
	for _, title := range titles {
		day.Activities = append(day.Activities, models.Activity{ID: title, Title: title, Time: "14:00"})
	}
	return models.Trip{ID: "t1", Name: "Japan", Days: []models.Day{day}}
}

func TestCheck_NotifiesActivitiesInWindow(t *testing.T) {
	snap := &fakeSnapshot{trip: tripWithActivities("Museum", "Dinner"), hasTrip: true}
	notifier := &recordingNotifier{}
	s := New(snap, notifier, func(a models.Activity, dayDate string, threshold int) bool {
		return a.Title == "Dinner"
	})

	s.Check()

	if notifier.count() != 1 {
		t.Fatalf("expected 1 notification, got %d", notifier.count())
	}
	if notifier.calls[0] != "Japan/Dinner/14:00" {
		t.Errorf("unexpected notification %q", notifier.calls[0])
	}
}

func TestCheck_NoCurrentTrip(t *testing.T) {
	notifier := &recordingNotifier{}
	s := New(&fakeSnapshot{}, notifier, func(models.Activity, string, int) bool { return true })

	s.Check()

	if notifier.count() != 0 {
		t.Errorf("expected no notifications, got %d", notifier.count())
	}
}

func TestCheck_RefiresOnEverySweep(t *testing.T) {
	snap := &fakeSnapshot{trip: tripWithActivities("Museum"), hasTrip: true}
	notifier := &recordingNotifier{}
	s := New(snap, notifier, func(models.Activity, string, int) bool { return true })

	s.Check()
	s.Check()

	if notifier.count() != 2 {
		t.Errorf("expected a notification per sweep, got %d", notifier.count())
	}
}

func TestStart_RunsImmediateSweep(t *testing.T) {
	snap := &fakeSnapshot{trip: tripWithActivities("Museum"), hasTrip: true}
	notifier := &recordingNotifier{}
	s := New(snap, notifier, func(models.Activity, string, int) bool { return true })

	s.Start()
	defer s.Stop()

	if notifier.count() != 1 {
		t.Errorf("expected the initial sweep before the first tick, got %d", notifier.count())
	}
	if !s.Running() {
		t.Error("scheduler should report running")
	}
}

func TestStart_IsIdempotent(t *testing.T) {
	snap := &fakeSnapshot{trip: tripWithActivities("Museum"), hasTrip: true}
	notifier := &recordingNotifier{}
	s := New(snap, notifier, func(models.Activity, string, int) bool { return true })

	s.Start()
	s.Start()
	defer s.Stop()

	if notifier.count() != 1 {
		t.Errorf("second Start should be a no-op, got %d sweeps", notifier.count())
	}
}

func TestStop_IsSafeWhenNotRunning(t *testing.T) {
	s := New(&fakeSnapshot{}, &recordingNotifier{}, func(models.Activity, string, int) bool { return false })

	s.Stop()
	s.Stop()

	if s.Running() {
		t.Error("scheduler should not be running")
	}
}

func TestStartStopStart(t *testing.T) {
	snap := &fakeSnapshot{trip: tripWithActivities("Museum"), hasTrip: true}
	notifier := &recordingNotifier{}
	s := New(snap, notifier, func(models.Activity, string, int) bool { return true })

	s.Start()
	s.Stop()
	if s.Running() {
		t.Fatal("expected stopped")
	}

	s.Start()
	defer s.Stop()
	if !s.Running() {
		t.Fatal("expected running again")
	}
	if notifier.count() != 2 {
		t.Errorf("expected one sweep per Start, got %d", notifier.count())
	}
}
