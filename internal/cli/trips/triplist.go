package trips

import (
	"fmt"

	"wanderlust/internal/cli"
)

type TripListCmd struct{}

func (c *TripListCmd) Run(ctx *cli.Context) error {
	trips := ctx.Store.Trips()
	if len(trips) == 0 {
		fmt.Println("No trips yet.")
		return nil
	}

	current, _ := ctx.Store.CurrentTrip()
	for _, t := range trips {
		marker := " "
		if t.ID == current.ID {
			marker = "*"
		}
		activities := 0
		for _, d := range t.Days {
			activities += len(d.Activities)
		}
		fmt.Printf("%s %s — %s (%s to %s, %d days, %d activities)\n    ID: %s\n",
			marker, t.Name, t.Destination, t.StartDate, t.EndDate, len(t.Days), activities, t.ID)
	}
	return nil
}
