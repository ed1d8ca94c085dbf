package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"wanderlust/internal/cli"
	"wanderlust/internal/constants"
	"wanderlust/internal/models"
	"wanderlust/internal/reminder"
	"wanderlust/internal/storage"
	"wanderlust/internal/trip"
)

const columnWidth = 34

// refreshMsg asks the model to re-read the store, e.g. after a mutation or
// a change signalled by a store subscription.
type refreshMsg struct{}

// clearToastMsg expires the transient status line.
type clearToastMsg struct{}

type Model struct {
	store    *trip.Store
	provider storage.Provider
	sched    *reminder.Scheduler

	state     constants.SessionState
	prevState constants.SessionState

	trip    models.Trip
	hasTrip bool
	trips   []models.Trip

	dayIdx      int
	activityIdx int
	sidebarIdx  int
	dayOffset   int // first visible day column

	// Move mode: the grabbed activity and where it came from. While moving,
	// dayIdx/activityIdx track the insertion point instead of a selection.
	moveSource models.DragLocation
	moveTitle  string

	form           *huh.Form
	tripForm       *tripFormValues
	activityForm   *activityFormValues
	dayForm        *dayFormValues
	editTripID     string
	editDayID      string
	editActivityID string

	confirm constants.ConfirmationMsg

	toast string

	dark   bool
	styles Styles

	keys keyMap
	help help.Model

	width  int
	height int
}

func NewModel(ctx *cli.Context, sched *reminder.Scheduler) Model {
	dark := ctx.Provider.GetTheme() != constants.ThemeLight
	m := Model{
		store:    ctx.Store,
		provider: ctx.Provider,
		sched:    sched,
		state:    constants.StateBoard,
		dark:     dark,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	if dark {
		m.styles = darkStyles()
	} else {
		m.styles = lightStyles()
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh re-reads the store and clamps the cursor into the new shape.
func (m *Model) refresh() {
	m.trips = m.store.Trips()
	m.trip, m.hasTrip = m.store.CurrentTrip()
	if !m.hasTrip {
		m.dayIdx, m.activityIdx, m.dayOffset = 0, 0, 0
		return
	}
	if m.dayIdx >= len(m.trip.Days) {
		m.dayIdx = len(m.trip.Days) - 1
	}
	if m.dayIdx < 0 {
		m.dayIdx = 0
	}
	max := m.maxActivityIdx()
	if m.activityIdx > max {
		m.activityIdx = max
	}
	if m.activityIdx < 0 {
		m.activityIdx = 0
	}
	if m.sidebarIdx >= len(m.trips) {
		m.sidebarIdx = len(m.trips) - 1
	}
	if m.sidebarIdx < 0 {
		m.sidebarIdx = 0
	}
	m.clampDayOffset()
}

// maxActivityIdx is the highest valid cursor position on the focused day.
// In move mode the cursor may also sit one past the end, the append slot.
func (m *Model) maxActivityIdx() int {
	if !m.hasTrip || len(m.trip.Days) == 0 {
		return 0
	}
	n := len(m.trip.Days[m.dayIdx].Activities)
	if m.state == constants.StateMoveActivity {
		if m.trip.Days[m.dayIdx].ID == m.moveSource.ContainerID && n > 0 {
			// The grabbed activity still occupies a slot in its own day.
			return n - 1
		}
		return n
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

func (m *Model) focusedDay() (models.Day, bool) {
	if !m.hasTrip || len(m.trip.Days) == 0 {
		return models.Day{}, false
	}
	return m.trip.Days[m.dayIdx], true
}

func (m *Model) focusedActivity() (models.Day, models.Activity, bool) {
	day, ok := m.focusedDay()
	if !ok || m.activityIdx >= len(day.Activities) {
		return day, models.Activity{}, false
	}
	return day, day.Activities[m.activityIdx], true
}

func (m *Model) visibleColumns() int {
	cols := m.width / (columnWidth + 2)
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (m *Model) clampDayOffset() {
	cols := m.visibleColumns()
	if m.dayIdx < m.dayOffset {
		m.dayOffset = m.dayIdx
	}
	if m.dayIdx >= m.dayOffset+cols {
		m.dayOffset = m.dayIdx - cols + 1
	}
	if m.dayOffset < 0 {
		m.dayOffset = 0
	}
}
