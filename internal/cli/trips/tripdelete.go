package trips

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"wanderlust/internal/cli"
)

type TripDeleteCmd struct {
	ID  string `arg:"" help:"Trip ID to delete."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *TripDeleteCmd) Run(ctx *cli.Context) error {
	var name string
	found := false
	for _, t := range ctx.Store.Trips() {
		if t.ID == c.ID {
			name = t.Name
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no trip with ID %s", c.ID)
	}

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete trip %q?", name)).
				Description("All of its days and activities will be deleted too.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	ctx.Store.DeleteTrip(c.ID)
	fmt.Printf("Deleted trip: %s\n", name)
	return nil
}
