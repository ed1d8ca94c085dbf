package days

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"wanderlust/internal/cli"
)

type DayRemoveCmd struct {
	Day string `arg:"" help:"Day ID or date (YYYY-MM-DD) to remove."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DayRemoveCmd) Run(ctx *cli.Context) error {
	day, err := ctx.FindDay(c.Day)
	if err != nil {
		return err
	}

	if !c.Yes && len(day.Activities) > 0 {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Remove %s?", day.Date)).
				Description(fmt.Sprintf("Its %d activities will be deleted too.", len(day.Activities))).
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

	ctx.Store.RemoveDay(day.ID)
	fmt.Printf("Removed %s.\n", day.Date)
	return nil
}
