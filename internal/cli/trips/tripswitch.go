package trips

import (
	"fmt"

	"wanderlust/internal/cli"
)

type TripSwitchCmd struct {
	ID string `arg:"" help:"Trip ID to make current."`
}

func (c *TripSwitchCmd) Run(ctx *cli.Context) error {
	for _, t := range ctx.Store.Trips() {
		if t.ID == c.ID {
			ctx.Store.SetCurrentTrip(c.ID)
			fmt.Printf("Switched to trip: %s\n", t.Name)
			return nil
		}
	}
	return fmt.Errorf("no trip with ID %s", c.ID)
}
