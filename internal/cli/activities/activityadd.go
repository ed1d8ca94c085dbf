package activities

import (
	"fmt"

	"wanderlust/internal/cli"
	"wanderlust/internal/models"
	"wanderlust/internal/validation"
)

type ActivityAddCmd struct {
	Day      string `arg:"" help:"Day ID or date (YYYY-MM-DD)."`
	Title    string `arg:"" help:"Activity title."`
	Time     string `short:"t" help:"Time of day (HH:MM)."`
	Category string `short:"c" help:"Category (lodging|food|attraction|activity|transport|shopping|event|meeting|work|other)." default:"activity"`
	Notes    string `short:"n" help:"Free-form notes."`
	Location string `short:"l" help:"Where the activity happens."`
	Timezone string `help:"Timezone context tag (local|destination|home)." default:"local"`
}

func (c *ActivityAddCmd) Validate() error {
	if err := validation.ValidateActivity(c.Title, c.Time); err != nil {
		return err
	}
	if err := validation.ValidateCategory(c.Category); err != nil {
		return err
	}
	return validation.ValidateTimezoneTag(c.Timezone)
}

func (c *ActivityAddCmd) Run(ctx *cli.Context) error {
	day, err := ctx.FindDay(c.Day)
	if err != nil {
		return err
	}

	activity, ok := ctx.Store.AddActivity(day.ID, models.Activity{
		Title:    c.Title,
		Time:     c.Time,
		Category: models.Category(c.Category),
		Notes:    c.Notes,
		Location: c.Location,
		Timezone: models.TimezoneTag(c.Timezone),
	})
	if !ok {
		return fmt.Errorf("failed to add activity to %s", day.Date)
	}

	fmt.Printf("Added activity: %s on %s (ID: %s)\n", activity.Title, day.Date, activity.ID)
	return nil
}
