package activities

import (
	"wanderlust/internal/cli"
	"wanderlust/internal/models"
	"wanderlust/internal/validation"
)

type ActivityEditCmd struct {
	Day      string  `arg:"" help:"Day ID or date (YYYY-MM-DD)."`
	ID       string  `arg:"" help:"Activity ID."`
	Title    *string `help:"New title."`
	Time     *string `short:"t" help:"New time of day (HH:MM)."`
	Category *string `short:"c" help:"New category."`
	Notes    *string `short:"n" help:"New notes."`
	Location *string `short:"l" help:"New location."`
	Timezone *string `help:"New timezone context tag (local|destination|home)."`
}

func (c *ActivityEditCmd) Validate() error {
	if c.Title != nil || c.Time != nil {
		title := "unchanged"
		if c.Title != nil {
			title = *c.Title
		}
		timeStr := ""
		if c.Time != nil {
			timeStr = *c.Time
		}
		if err := validation.ValidateActivity(title, timeStr); err != nil {
			return err
		}
	}
	if c.Category != nil {
		if err := validation.ValidateCategory(*c.Category); err != nil {
			return err
		}
	}
	if c.Timezone != nil {
		if err := validation.ValidateTimezoneTag(*c.Timezone); err != nil {
			return err
		}
	}
	return nil
}

func (c *ActivityEditCmd) Run(ctx *cli.Context) error {
	day, err := ctx.FindDay(c.Day)
	if err != nil {
		return err
	}
	if _, _, err := ctx.FindActivity(day, c.ID); err != nil {
		return err
	}

	patch := models.ActivityPatch{
		Title:    c.Title,
		Time:     c.Time,
		Notes:    c.Notes,
		Location: c.Location,
	}
	if c.Category != nil {
		cat := models.Category(*c.Category)
		patch.Category = &cat
	}
	if c.Timezone != nil {
		tag := models.TimezoneTag(*c.Timezone)
		patch.Timezone = &tag
	}

	ctx.Store.UpdateActivity(day.ID, c.ID, patch)
	return nil
}
