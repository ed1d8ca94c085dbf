package trips

import (
	"fmt"

	"wanderlust/internal/cli"
	"wanderlust/internal/models"
	"wanderlust/internal/validation"
)

type TripEditCmd struct {
	ID          string  `arg:"" help:"Trip ID to edit."`
	Name        *string `help:"New trip name."`
	Destination *string `short:"d" help:"New destination."`
	From        *string `short:"f" help:"New departure location."`
	Start       *string `short:"s" help:"New start date (YYYY-MM-DD)."`
	End         *string `short:"e" help:"New end date (YYYY-MM-DD)."`
}

func (c *TripEditCmd) Validate() error {
	if c.Start != nil {
		if err := validation.ValidateDate(*c.Start); err != nil {
			return err
		}
	}
	if c.End != nil {
		if err := validation.ValidateDate(*c.End); err != nil {
			return err
		}
	}
	if c.Name != nil && *c.Name == "" {
		return fmt.Errorf("trip name cannot be empty")
	}
	return nil
}

func (c *TripEditCmd) Run(ctx *cli.Context) error {
	found := false
	for _, t := range ctx.Store.Trips() {
		if t.ID == c.ID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no trip with ID %s", c.ID)
	}

	ctx.Store.UpdateTrip(c.ID, models.TripPatch{
		Name:              c.Name,
		Destination:       c.Destination,
		DepartureLocation: c.From,
		StartDate:         c.Start,
		EndDate:           c.End,
	})
	fmt.Println("Updated trip.")
	return nil
}
