package tui

import (
	"errors"

	"github.com/charmbracelet/huh"

	"wanderlust/internal/models"
	"wanderlust/internal/utils"
	"wanderlust/internal/validation"
)

type tripFormValues struct {
	Name              string
	Destination       string
	DepartureLocation string
	StartDate         string
	EndDate           string
}

func newTripForm(v *tripFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Trip name").
				Value(&v.Name).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Destination").
				Value(&v.Destination).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("destination is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Departing from").
				Value(&v.DepartureLocation),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD)").
				Value(&v.StartDate).
				Validate(validation.ValidateDate),
			huh.NewInput().
				Title("End date (YYYY-MM-DD)").
				Value(&v.EndDate).
				Validate(func(s string) error {
					if err := validation.ValidateDate(s); err != nil {
						return err
					}
					if v.StartDate != "" && s < v.StartDate {
						return errors.New("end date is before start date")
					}
					return nil
				}),
		),
	)
}

type activityFormValues struct {
	Title    string
	Time     string
	Category string
	Notes    string
	Location string
	Timezone string
}

func newActivityForm(v *activityFormValues) *huh.Form {
	categoryOpts := make([]huh.Option[string], 0, len(models.Categories))
	for _, c := range models.Categories {
		categoryOpts = append(categoryOpts, huh.NewOption(string(c), string(c)))
	}
	timezoneOpts := make([]huh.Option[string], 0, len(models.TimezoneTags))
	for _, tz := range models.TimezoneTags {
		timezoneOpts = append(timezoneOpts, huh.NewOption(string(tz), string(tz)))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&v.Title).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Time (HH:MM, optional)").
				Value(&v.Time).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := utils.ParseTime(s); err != nil {
						return errors.New("time must be HH:MM")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOpts...).
				Value(&v.Category),
			huh.NewSelect[string]().
				Title("Timezone").
				Options(timezoneOpts...).
				Value(&v.Timezone),
			huh.NewInput().
				Title("Location (optional)").
				Value(&v.Location),
			huh.NewText().
				Title("Notes").
				Value(&v.Notes).
				Lines(3),
		),
	)
}

func (v *activityFormValues) toActivity() models.Activity {
	return models.Activity{
		Title:    v.Title,
		Time:     v.Time,
		Category: models.Category(v.Category).Normalize(),
		Notes:    v.Notes,
		Location: v.Location,
		Timezone: models.TimezoneTag(v.Timezone),
	}
}

type dayFormValues struct {
	Date string
}

func newDayForm(v *dayFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&v.Date).
				Validate(validation.ValidateDate),
		),
	)
}
