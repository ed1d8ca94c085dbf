package activities

import (
	"fmt"

	"wanderlust/internal/cli"
	"wanderlust/internal/models"
)

type ActivityDoneCmd struct {
	Day  string `arg:"" help:"Day ID or date (YYYY-MM-DD)."`
	ID   string `arg:"" help:"Activity ID."`
	Undo bool   `short:"u" help:"Mark as not completed instead."`
}

func (c *ActivityDoneCmd) Run(ctx *cli.Context) error {
	day, err := ctx.FindDay(c.Day)
	if err != nil {
		return err
	}
	activity, _, err := ctx.FindActivity(day, c.ID)
	if err != nil {
		return err
	}

	completed := !c.Undo
	ctx.Store.UpdateActivity(day.ID, c.ID, models.ActivityPatch{IsCompleted: &completed})

	if completed {
		fmt.Printf("Completed: %s\n", activity.Title)
	} else {
		fmt.Printf("Reopened: %s\n", activity.Title)
	}
	return nil
}
