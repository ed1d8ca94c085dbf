package activities

import (
	"fmt"

	"wanderlust/internal/cli"
	"wanderlust/internal/models"
)

type ActivityMoveCmd struct {
	Day   string `arg:"" help:"Source day ID or date (YYYY-MM-DD)."`
	ID    string `arg:"" help:"Activity ID."`
	To    string `short:"t" help:"Destination day ID or date; defaults to the source day." optional:""`
	Index int    `short:"i" help:"Destination position (0-based); defaults to the end." default:"-1"`
}

func (c *ActivityMoveCmd) Run(ctx *cli.Context) error {
	sourceDay, err := ctx.FindDay(c.Day)
	if err != nil {
		return err
	}
	activity, sourceIndex, err := ctx.FindActivity(sourceDay, c.ID)
	if err != nil {
		return err
	}

	destDay := sourceDay
	if c.To != "" {
		destDay, err = ctx.FindDay(c.To)
		if err != nil {
			return err
		}
	}

	index := c.Index
	if index < 0 {
		index = len(destDay.Activities)
		if destDay.ID == sourceDay.ID {
			// Moving within a day: the slot vacated by the activity
			// shifts the end of the sequence down by one.
			index--
		}
	}

	ctx.Store.OnDragEnd(models.DragResult{
		Source:      models.DragLocation{ContainerID: sourceDay.ID, Index: sourceIndex},
		Destination: &models.DragLocation{ContainerID: destDay.ID, Index: index},
	})

	if destDay.ID == sourceDay.ID {
		fmt.Printf("Moved %s to position %d on %s.\n", activity.Title, index, destDay.Date)
	} else {
		fmt.Printf("Moved %s to %s.\n", activity.Title, destDay.Date)
	}
	return nil
}
