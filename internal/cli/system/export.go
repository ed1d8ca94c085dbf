package system

import (
	"fmt"

	"wanderlust/internal/cli"
	"wanderlust/internal/export"
)

type ExportCmd struct {
	Output string `short:"o" help:"Output file; defaults to \"<trip name> - Itinerary.html\" in the working directory." optional:""`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	t, err := ctx.RequireCurrentTrip()
	if err != nil {
		return err
	}

	path := c.Output
	if path == "" {
		path = export.DefaultFilename(t)
	}

	if err := export.SaveTrip(t, path); err != nil {
		return err
	}
	fmt.Printf("Exported %q to %s\n", t.Name, path)
	return nil
}
