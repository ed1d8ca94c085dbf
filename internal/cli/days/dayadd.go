package days

import (
	"fmt"

	"wanderlust/internal/cli"
	"wanderlust/internal/validation"
)

type DayAddCmd struct {
	Date string `arg:"" help:"Date of the new day (YYYY-MM-DD)."`
}

func (c *DayAddCmd) Validate() error {
	return validation.ValidateDate(c.Date)
}

func (c *DayAddCmd) Run(ctx *cli.Context) error {
	t, err := ctx.RequireCurrentTrip()
	if err != nil {
		return err
	}

	ctx.Store.AddDay(c.Date)
	fmt.Printf("Added %s to trip %q.\n", c.Date, t.Name)
	return nil
}
