package trips

import (
	"fmt"

	"wanderlust/internal/cli"
)

type TripExampleCmd struct{}

func (c *TripExampleCmd) Run(ctx *cli.Context) error {
	t := ctx.Store.LoadDefaultTrip()
	fmt.Printf("Loaded example trip: %s (ID: %s)\n", t.Name, t.ID)
	return nil
}
