package cli

import (
	"fmt"

	"wanderlust/internal/models"
	"wanderlust/internal/notifier"
	"wanderlust/internal/storage"
	"wanderlust/internal/trip"
)

type Context struct {
	Store    *trip.Store
	Provider storage.Provider
	Notifier *notifier.Notifier
	Debug    bool
}

// RequireCurrentTrip returns the current trip or a uniform error for
// commands that cannot proceed without one.
func (c *Context) RequireCurrentTrip() (models.Trip, error) {
	t, ok := c.Store.CurrentTrip()
	if !ok {
		return models.Trip{}, fmt.Errorf("no trips yet; create one with 'wanderlust trip add' or load the example with 'wanderlust trip example'")
	}
	return t, nil
}

// FindDay resolves a day in the current trip by id or by date (YYYY-MM-DD).
func (c *Context) FindDay(key string) (models.Day, error) {
	t, err := c.RequireCurrentTrip()
	if err != nil {
		return models.Day{}, err
	}
	for _, d := range t.Days {
		if d.ID == key || d.Date == key {
			return d, nil
		}
	}
	return models.Day{}, fmt.Errorf("no day %q in trip %q", key, t.Name)
}

// FindActivity resolves an activity within a resolved day.
func (c *Context) FindActivity(day models.Day, activityID string) (models.Activity, int, error) {
	for i, a := range day.Activities {
		if a.ID == activityID {
			return a, i, nil
		}
	}
	return models.Activity{}, -1, fmt.Errorf("no activity %q on %s", activityID, day.Date)
}
