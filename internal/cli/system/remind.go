package system

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wanderlust/internal/cli"
	"wanderlust/internal/reminder"
	"wanderlust/internal/utils"
)

// RemindCmd runs the reminder loop in the foreground until interrupted,
// for use outside the TUI (e.g. under a process supervisor).
type RemindCmd struct{}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	t, err := ctx.RequireCurrentTrip()
	if err != nil {
		return err
	}

	sched := reminder.New(ctx.Store, ctx.Notifier, utils.IsActivityComingSoon)
	sched.Start()
	defer sched.Stop()

	fmt.Printf("Watching %q for upcoming activities. Press Ctrl-C to stop.\n", t.Name)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	return nil
}
