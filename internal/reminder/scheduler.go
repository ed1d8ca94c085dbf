package reminder

import (
	"sync"
	"time"

	"wanderlust/internal/constants"
	"wanderlust/internal/logger"
	"wanderlust/internal/models"
)

// Snapshot is the slice of the trip store's query surface the scheduler
// polls.
type Snapshot interface {
	CurrentTrip() (models.Trip, bool)
}

// Notifier receives one call per activity inside its coming-soon window.
type Notifier interface {
	Notify(tripName, activityTitle, timeOfDay string)
}

// evaluator matches utils.IsActivityComingSoon; held as a field so tests can
// substitute the clock-dependent check.
type evaluator func(activity models.Activity, dayDate string, thresholdMinutes int) bool

// Scheduler runs an immediate reminder sweep on Start and then repeats every
// interval until Stop. At most one timer is active per scheduler; an
// activity inside its window is re-reported on every tick until the window
// passes; deduplication is the notifier's concern.
type Scheduler struct {
	store      Snapshot
	notifier   Notifier
	interval   time.Duration
	threshold  int
	comingSoon evaluator

	mu     sync.Mutex
	stopCh chan struct{}
}

func New(store Snapshot, notifier Notifier, comingSoon func(models.Activity, string, int) bool) *Scheduler {
	return &Scheduler{
		store:      store,
		notifier:   notifier,
		interval:   constants.ReminderInterval,
		threshold:  constants.ReminderThresholdMinutes,
		comingSoon: comingSoon,
	}
}

// Start begins the polling loop. Calling Start on a running scheduler is a
// no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.stopCh != nil {
		s.mu.Unlock()
		return
	}
	stopCh := make(chan struct{})
	s.stopCh = stopCh
	s.mu.Unlock()

	logger.Debug("Reminder scheduler started", "interval", s.interval)
	s.Check()

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Check()
			case <-stopCh:
				return
			}
		}
	}()
}

// Stop tears down the timer. Safe to call when not running.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopCh == nil {
		return
	}
	close(s.stopCh)
	s.stopCh = nil
	logger.Debug("Reminder scheduler stopped")
}

// Running reports whether the polling loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopCh != nil
}

// Check runs one sweep over the current trip and notifies every activity
// inside its coming-soon window.
func (s *Scheduler) Check() {
	t, ok := s.store.CurrentTrip()
	if !ok {
		return
	}

	for _, day := range t.Days {
		for _, activity := range day.Activities {
			if s.comingSoon(activity, day.Date, s.threshold) {
				s.notifier.Notify(t.Name, activity.Title, activity.Time)
			}
		}
	}
}
