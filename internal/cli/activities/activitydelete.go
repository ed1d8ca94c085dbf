package activities

import (
	"fmt"

	"wanderlust/internal/cli"
)

type ActivityDeleteCmd struct {
	Day string `arg:"" help:"Day ID or date (YYYY-MM-DD)."`
	ID  string `arg:"" help:"Activity ID."`
}

func (c *ActivityDeleteCmd) Run(ctx *cli.Context) error {
	day, err := ctx.FindDay(c.Day)
	if err != nil {
		return err
	}
	activity, _, err := ctx.FindActivity(day, c.ID)
	if err != nil {
		return err
	}

	ctx.Store.RemoveActivity(day.ID, c.ID)
	fmt.Printf("Removed activity: %s\n", activity.Title)
	return nil
}
