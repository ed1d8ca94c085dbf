package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"wanderlust/internal/constants"
	"wanderlust/internal/export"
	"wanderlust/internal/models"
	"wanderlust/internal/utils"
)

const toastDuration = 4 * time.Second

func refreshNow() tea.Msg { return refreshMsg{} }

func toastCmd(format string, args ...any) tea.Cmd {
	return func() tea.Msg {
		return constants.ToastMsg{Text: fmt.Sprintf(format, args...)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampDayOffset()
		return m, nil

	case refreshMsg:
		m.refresh()
		// The reminder loop only runs while a trip is selected.
		if m.hasTrip && !m.sched.Running() {
			m.sched.Start()
		} else if !m.hasTrip {
			m.sched.Stop()
		}
		return m, nil

	case constants.ToastMsg:
		m.toast = msg.Text
		return m, tea.Tick(toastDuration, func(time.Time) tea.Msg { return clearToastMsg{} })

	case clearToastMsg:
		m.toast = ""
		return m, nil

	case constants.ConfirmationMsg:
		m.confirm = msg
		m.prevState = m.state
		m.state = constants.StateConfirmation
		return m, nil
	}

	switch m.state {
	case constants.StateNewTrip, constants.StateEditTrip,
		constants.StateAddActivity, constants.StateEditActivity,
		constants.StateAddDay:
		return m.updateForm(msg)
	case constants.StateConfirmation:
		return m.updateConfirmation(msg)
	case constants.StateSidebar:
		return m.updateSidebar(msg)
	case constants.StateMoveActivity:
		return m.updateMove(msg)
	default:
		return m.updateBoard(msg)
	}
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Cancel) {
		m.form = nil
		m.state = constants.StateBoard
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	state := m.state
	m.form = nil
	m.state = constants.StateBoard

	switch state {
	case constants.StateNewTrip:
		v := m.tripForm
		t := m.store.CreateTrip(v.Name, v.Destination, v.DepartureLocation, v.StartDate, v.EndDate)
		return m, tea.Batch(refreshNow, toastCmd("Created trip %q", t.Name))

	case constants.StateEditTrip:
		v := m.tripForm
		m.store.UpdateTrip(m.editTripID, models.TripPatch{
			Name:              &v.Name,
			Destination:       &v.Destination,
			DepartureLocation: &v.DepartureLocation,
			StartDate:         &v.StartDate,
			EndDate:           &v.EndDate,
		})
		return m, tea.Batch(refreshNow, toastCmd("Updated trip"))

	case constants.StateAddActivity:
		a, ok := m.store.AddActivity(m.editDayID, m.activityForm.toActivity())
		if !ok {
			return m, tea.Batch(refreshNow, toastCmd("Day no longer exists"))
		}
		return m, tea.Batch(refreshNow, toastCmd("Added %q", a.Title))

	case constants.StateEditActivity:
		v := m.activityForm
		category := models.Category(v.Category).Normalize()
		timezone := models.TimezoneTag(v.Timezone)
		m.store.UpdateActivity(m.editDayID, m.editActivityID, models.ActivityPatch{
			Title:    &v.Title,
			Time:     &v.Time,
			Category: &category,
			Notes:    &v.Notes,
			Location: &v.Location,
			Timezone: &timezone,
		})
		return m, tea.Batch(refreshNow, toastCmd("Updated %q", v.Title))

	case constants.StateAddDay:
		m.store.AddDay(m.dayForm.Date)
		return m, tea.Batch(refreshNow, toastCmd("Added %s", utils.FormatDayDate(m.dayForm.Date)))
	}

	return m, cmd
}

func (m Model) updateConfirmation(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y", "enter":
		confirm := m.confirm.Confirm
		m.state = m.prevState
		m.confirm = constants.ConfirmationMsg{}
		if confirm != nil {
			return m, confirm()
		}
		return m, nil
	case "n", "N", "esc":
		cancel := m.confirm.Cancel
		m.state = m.prevState
		m.confirm = constants.ConfirmationMsg{}
		if cancel != nil {
			return m, cancel()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateSidebar(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.sidebarIdx > 0 {
			m.sidebarIdx--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.sidebarIdx < len(m.trips)-1 {
			m.sidebarIdx++
		}
	case key.Matches(keyMsg, m.keys.Drop):
		if m.sidebarIdx < len(m.trips) {
			m.store.SetCurrentTrip(m.trips[m.sidebarIdx].ID)
			m.state = constants.StateBoard
			m.dayIdx, m.activityIdx = 0, 0
			return m, refreshNow
		}
	case key.Matches(keyMsg, m.keys.NewTrip):
		return m.openNewTripForm()
	case key.Matches(keyMsg, m.keys.DelTrip):
		if m.sidebarIdx < len(m.trips) {
			return m, m.confirmDeleteTrip(m.trips[m.sidebarIdx])
		}
	case key.Matches(keyMsg, m.keys.Sidebar), key.Matches(keyMsg, m.keys.Cancel):
		m.state = constants.StateBoard
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateMove(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.activityIdx > 0 {
			m.activityIdx--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.activityIdx < m.maxActivityIdx() {
			m.activityIdx++
		}
	case key.Matches(keyMsg, m.keys.Left):
		if m.dayIdx > 0 {
			m.dayIdx--
			m.activityIdx = m.maxActivityIdx()
			m.clampDayOffset()
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.dayIdx < len(m.trip.Days)-1 {
			m.dayIdx++
			m.activityIdx = m.maxActivityIdx()
			m.clampDayOffset()
		}
	case key.Matches(keyMsg, m.keys.Drop):
		day, ok := m.focusedDay()
		if !ok {
			m.state = constants.StateBoard
			return m, nil
		}
		title := m.moveTitle
		m.store.OnDragEnd(models.DragResult{
			Source:      m.moveSource,
			Destination: &models.DragLocation{ContainerID: day.ID, Index: m.activityIdx},
		})
		m.state = constants.StateBoard
		return m, tea.Batch(refreshNow, toastCmd("Moved %q", title))
	case key.Matches(keyMsg, m.keys.Cancel):
		// Dropping outside any day leaves everything where it was.
		m.store.OnDragEnd(models.DragResult{Source: m.moveSource})
		m.state = constants.StateBoard
		return m, refreshNow
	}
	return m, nil
}

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Theme):
		m.dark = !m.dark
		theme := constants.ThemeLight
		m.styles = lightStyles()
		if m.dark {
			theme = constants.ThemeDark
			m.styles = darkStyles()
		}
		if err := m.provider.SaveTheme(theme); err != nil {
			return m, toastCmd("Could not save theme: %v", err)
		}

	case key.Matches(keyMsg, m.keys.Sidebar):
		m.prevState = m.state
		m.state = constants.StateSidebar

	case key.Matches(keyMsg, m.keys.NewTrip):
		return m.openNewTripForm()

	case key.Matches(keyMsg, m.keys.Example):
		t := m.store.LoadDefaultTrip()
		return m, tea.Batch(refreshNow, toastCmd("Loaded %q", t.Name))

	case key.Matches(keyMsg, m.keys.EditTrip):
		if !m.hasTrip {
			return m, nil
		}
		m.tripForm = &tripFormValues{
			Name:              m.trip.Name,
			Destination:       m.trip.Destination,
			DepartureLocation: m.trip.DepartureLocation,
			StartDate:         m.trip.StartDate,
			EndDate:           m.trip.EndDate,
		}
		m.editTripID = m.trip.ID
		m.form = newTripForm(m.tripForm)
		m.state = constants.StateEditTrip
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.DelTrip):
		if !m.hasTrip {
			return m, nil
		}
		return m, m.confirmDeleteTrip(m.trip)

	case key.Matches(keyMsg, m.keys.Export):
		if !m.hasTrip {
			return m, nil
		}
		path := export.DefaultFilename(m.trip)
		if err := export.SaveTrip(m.trip, path); err != nil {
			return m, toastCmd("Export failed: %v", err)
		}
		return m, toastCmd("Exported to %s", path)

	case key.Matches(keyMsg, m.keys.AddDay):
		if !m.hasTrip {
			return m, nil
		}
		date := utils.Today()
		if n := len(m.trip.Days); n > 0 {
			date = utils.DateAddDays(m.trip.Days[n-1].Date, 1)
		}
		m.dayForm = &dayFormValues{Date: date}
		m.form = newDayForm(m.dayForm)
		m.state = constants.StateAddDay
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.DelDay):
		day, ok := m.focusedDay()
		if !ok {
			return m, nil
		}
		return m, m.confirmRemoveDay(day)

	case key.Matches(keyMsg, m.keys.SortDays):
		if !m.hasTrip {
			return m, nil
		}
		m.store.ReorderDays(0, 0)
		return m, tea.Batch(refreshNow, toastCmd("Days sorted by date"))

	case key.Matches(keyMsg, m.keys.AddAct):
		day, ok := m.focusedDay()
		if !ok {
			return m, nil
		}
		m.editDayID = day.ID
		m.activityForm = &activityFormValues{
			Category: string(models.CategoryOther),
			Timezone: string(models.TimezoneLocal),
		}
		m.form = newActivityForm(m.activityForm)
		m.state = constants.StateAddActivity
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.EditAct):
		day, a, ok := m.focusedActivity()
		if !ok {
			return m, nil
		}
		m.editDayID = day.ID
		m.editActivityID = a.ID
		m.activityForm = &activityFormValues{
			Title:    a.Title,
			Time:     a.Time,
			Category: string(a.Category.Normalize()),
			Notes:    a.Notes,
			Location: a.Location,
			Timezone: string(a.Timezone),
		}
		if m.activityForm.Timezone == "" {
			m.activityForm.Timezone = string(models.TimezoneLocal)
		}
		m.form = newActivityForm(m.activityForm)
		m.state = constants.StateEditActivity
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.DelAct):
		day, a, ok := m.focusedActivity()
		if !ok {
			return m, nil
		}
		return m, m.confirmRemoveActivity(day, a)

	case key.Matches(keyMsg, m.keys.Done):
		day, a, ok := m.focusedActivity()
		if !ok {
			return m, nil
		}
		completed := !a.IsCompleted
		m.store.UpdateActivity(day.ID, a.ID, models.ActivityPatch{IsCompleted: &completed})
		return m, refreshNow

	case key.Matches(keyMsg, m.keys.Move):
		day, a, ok := m.focusedActivity()
		if !ok {
			return m, nil
		}
		m.moveSource = models.DragLocation{ContainerID: day.ID, Index: m.activityIdx}
		m.moveTitle = a.Title
		m.state = constants.StateMoveActivity

	case key.Matches(keyMsg, m.keys.Up):
		if m.activityIdx > 0 {
			m.activityIdx--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.activityIdx < m.maxActivityIdx() {
			m.activityIdx++
		}
	case key.Matches(keyMsg, m.keys.Left):
		if m.dayIdx > 0 {
			m.dayIdx--
			m.activityIdx = 0
			m.clampDayOffset()
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.hasTrip && m.dayIdx < len(m.trip.Days)-1 {
			m.dayIdx++
			m.activityIdx = 0
			m.clampDayOffset()
		}
	}

	return m, nil
}

func (m Model) openNewTripForm() (tea.Model, tea.Cmd) {
	m.tripForm = &tripFormValues{
		DepartureLocation: "Home",
		StartDate:         utils.Today(),
		EndDate:           utils.DateAddDays(utils.Today(), 2),
	}
	m.form = newTripForm(m.tripForm)
	m.state = constants.StateNewTrip
	return m, m.form.Init()
}

func (m Model) confirmDeleteTrip(t models.Trip) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		return constants.ConfirmationMsg{
			Title:   "Delete trip",
			Message: fmt.Sprintf("Delete %q and all of its days and activities?", t.Name),
			Confirm: func() tea.Cmd {
				store.DeleteTrip(t.ID)
				return tea.Batch(refreshNow, toastCmd("Deleted %q", t.Name))
			},
		}
	}
}

func (m Model) confirmRemoveDay(day models.Day) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		return constants.ConfirmationMsg{
			Title:   "Remove day",
			Message: fmt.Sprintf("Remove %s and its %d activities?", utils.FormatDayDate(day.Date), len(day.Activities)),
			Confirm: func() tea.Cmd {
				store.RemoveDay(day.ID)
				return tea.Batch(refreshNow, toastCmd("Removed %s", utils.FormatDayDate(day.Date)))
			},
		}
	}
}

func (m Model) confirmRemoveActivity(day models.Day, a models.Activity) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		return constants.ConfirmationMsg{
			Title:   "Delete activity",
			Message: fmt.Sprintf("Delete %q?", a.Title),
			Confirm: func() tea.Cmd {
				store.RemoveActivity(day.ID, a.ID)
				return tea.Batch(refreshNow, toastCmd("Deleted %q", a.Title))
			},
		}
	}
}
