package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"wanderlust/internal/cli"
	"wanderlust/internal/cli/activities"
	"wanderlust/internal/cli/days"
	"wanderlust/internal/cli/system"
	"wanderlust/internal/cli/trips"
	"wanderlust/internal/constants"
	"wanderlust/internal/logger"
	"wanderlust/internal/notifier"
	"wanderlust/internal/storage"
	"wanderlust/internal/trip"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. A .db suffix selects SQLite, anything else a plain key-value directory." type:"path" default:"~/.config/wanderlust"`
	Debug   bool   `help:"Enable debug logging."`

	Tui  system.TuiCmd `cmd:"" help:"Open the interactive itinerary board." default:"1"`
	Trip struct {
		Add     trips.TripAddCmd     `cmd:"" help:"Create a trip."`
		List    trips.TripListCmd    `cmd:"" help:"List all trips."`
		Switch  trips.TripSwitchCmd  `cmd:"" help:"Select the current trip."`
		Edit    trips.TripEditCmd    `cmd:"" help:"Edit trip details."`
		Delete  trips.TripDeleteCmd  `cmd:"" help:"Delete a trip."`
		Example trips.TripExampleCmd `cmd:"" help:"Load the example trip."`
	} `cmd:"" help:"Manage trips."`
	Day struct {
		Add    days.DayAddCmd    `cmd:"" help:"Add a day to the current trip."`
		Remove days.DayRemoveCmd `cmd:"" help:"Remove a day and its activities."`
	} `cmd:"" help:"Manage days."`
	Activity struct {
		Add    activities.ActivityAddCmd    `cmd:"" help:"Add an activity to a day."`
		Edit   activities.ActivityEditCmd   `cmd:"" help:"Edit an activity."`
		Delete activities.ActivityDeleteCmd `cmd:"" help:"Delete an activity."`
		Done   activities.ActivityDoneCmd   `cmd:"" help:"Mark an activity completed."`
		Move   activities.ActivityMoveCmd   `cmd:"" help:"Move an activity within or across days."`
	} `cmd:"" help:"Manage activities."`
	Export system.ExportCmd `cmd:"" help:"Export the current trip as an HTML itinerary."`
	Remind system.RemindCmd `cmd:"" help:"Watch the current trip and raise activity reminders."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Trip itinerary planner with a drag-and-drop day board"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	// Storage backend follows the path: a .db file means SQLite, otherwise
	// the path is a directory for the key-value store.
	var provider storage.Provider
	if strings.HasSuffix(CLI.Config, ".db") {
		provider = storage.NewSQLiteStore(CLI.Config)
	} else {
		provider = storage.NewDiskvStore(CLI.Config)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: provider.GetConfigPath()}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := provider.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer provider.Close()

	appCtx := &cli.Context{
		Store:    trip.NewStore(provider),
		Provider: provider,
		Notifier: notifier.New(func(text string) { fmt.Fprintln(os.Stderr, text) }),
		Debug:    CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
