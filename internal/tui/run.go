package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"wanderlust/internal/cli"
	"wanderlust/internal/constants"
	"wanderlust/internal/reminder"
	"wanderlust/internal/utils"
)

// Run starts the full-screen program and blocks until the user quits. The
// reminder scheduler runs alongside it whenever a trip is selected, and its
// toasts are routed into the program as messages.
func Run(ctx *cli.Context) error {
	sched := reminder.New(ctx.Store, ctx.Notifier, utils.IsActivityComingSoon)
	defer sched.Stop()

	p := tea.NewProgram(NewModel(ctx, sched), tea.WithAltScreen())

	ctx.Notifier.SetSink(func(text string) {
		p.Send(constants.ToastMsg{Text: text})
	})
	ctx.Store.Subscribe(func() {
		p.Send(refreshMsg{})
	})
	if _, ok := ctx.Store.CurrentTrip(); ok {
		sched.Start()
	}

	_, err := p.Run()
	return err
}
