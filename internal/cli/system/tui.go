package system

import (
	"wanderlust/internal/cli"
	"wanderlust/internal/tui"
)

// TuiCmd opens the interactive itinerary board. It is the default command.
type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	return tui.Run(ctx)
}
