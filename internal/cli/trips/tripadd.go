package trips

import (
	"fmt"

	"wanderlust/internal/cli"
	"wanderlust/internal/validation"
)

type TripAddCmd struct {
	Name        string `arg:"" help:"Trip name."`
	Destination string `short:"d" help:"Where the trip goes." required:""`
	From        string `short:"f" help:"Departure location." default:"Home"`
	Start       string `short:"s" help:"Start date (YYYY-MM-DD)." required:""`
	End         string `short:"e" help:"End date (YYYY-MM-DD)." required:""`
}

func (c *TripAddCmd) Validate() error {
	return validation.ValidateTrip(c.Name, c.Destination, c.Start, c.End)
}

func (c *TripAddCmd) Run(ctx *cli.Context) error {
	t := ctx.Store.CreateTrip(c.Name, c.Destination, c.From, c.Start, c.End)
	fmt.Printf("Added trip: %s (%d days, ID: %s)\n", t.Name, len(t.Days), t.ID)
	return nil
}
