package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wanderlust/internal/constants"
	"wanderlust/internal/models"
	"wanderlust/internal/utils"
)

func (m Model) View() string {
	switch m.state {
	case constants.StateNewTrip, constants.StateEditTrip,
		constants.StateAddActivity, constants.StateEditActivity,
		constants.StateAddDay:
		if m.form != nil {
			return m.styles.Overlay.Render(m.form.View())
		}
	case constants.StateConfirmation:
		return m.viewConfirmation()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	board := m.viewBoard()
	if m.state == constants.StateSidebar {
		board = lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), board)
	}
	b.WriteString(board)
	b.WriteString("\n")

	if m.toast != "" {
		b.WriteString(m.styles.Toast.Render(m.toast))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) viewHeader() string {
	title := m.styles.Header.Render("Wanderlust")
	if !m.hasTrip {
		return title + m.styles.HeaderAccent.Render("no trips yet — press n to create one, g for an example")
	}
	sub := fmt.Sprintf("%s → %s  %s – %s",
		m.trip.DepartureLocation, m.trip.Destination,
		m.trip.StartDate, m.trip.EndDate)
	return title + m.styles.HeaderAccent.Render(m.trip.Name) + m.styles.HeaderAccent.Render(sub)
}

func (m Model) viewSidebar() string {
	var rows []string
	rows = append(rows, m.styles.DayHeader.Render("Trips"))
	for i, t := range m.trips {
		marker := "  "
		if t.ID == m.store.CurrentTripID() {
			marker = "* "
		}
		line := marker + t.Name
		if i == m.sidebarIdx {
			rows = append(rows, m.styles.SidebarActive.Render(line))
		} else {
			rows = append(rows, m.styles.SidebarItem.Render(line))
		}
	}
	if len(m.trips) == 0 {
		rows = append(rows, m.styles.SidebarItem.Render("(none)"))
	}
	return m.styles.Sidebar.Render(strings.Join(rows, "\n"))
}

func (m Model) viewBoard() string {
	if !m.hasTrip || len(m.trip.Days) == 0 {
		return m.styles.DayColumn.Render("No days yet. Press A to add one.")
	}

	cols := m.visibleColumns()
	end := m.dayOffset + cols
	if end > len(m.trip.Days) {
		end = len(m.trip.Days)
	}

	var columns []string
	for i := m.dayOffset; i < end; i++ {
		columns = append(columns, m.viewDay(i))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m Model) viewDay(dayIdx int) string {
	day := m.trip.Days[dayIdx]
	focused := dayIdx == m.dayIdx
	moving := m.state == constants.StateMoveActivity

	var rows []string
	header := utils.FormatDayDate(day.Date)
	if focused && moving {
		header += "  (placing)"
	}
	rows = append(rows, m.styles.DayHeader.Render(header))

	if len(day.Activities) == 0 && !(focused && moving) {
		rows = append(rows, m.styles.Category.Render("nothing planned"))
	}

	for i, a := range day.Activities {
		if focused && moving && i == m.activityIdx {
			rows = append(rows, m.styles.ActivityMove.Render("▸ "+m.moveTitle))
		}
		rows = append(rows, m.viewActivity(a, focused && !moving && i == m.activityIdx))
	}
	if focused && moving && m.activityIdx >= len(day.Activities) {
		rows = append(rows, m.styles.ActivityMove.Render("▸ "+m.moveTitle))
	}

	return m.styles.DayColumn.Render(strings.Join(rows, "\n"))
}

func (m Model) viewActivity(a models.Activity, focused bool) string {
	line := a.Title
	if a.Time != "" {
		line = utils.FormatTime(a.Time) + " " + line
	}

	style := m.styles.Activity
	if a.IsCompleted {
		style = m.styles.ActivityDone
	}
	if focused {
		style = m.styles.ActivityFocus
	}
	out := style.Render(line)

	detail := string(a.Category.Normalize())
	if loc := utils.LocationWithTimezone(a); loc != "" {
		detail += " · " + loc
	}
	return out + "\n" + m.styles.Category.Render("  "+detail)
}

func (m Model) viewConfirmation() string {
	body := m.styles.Danger.Render(m.confirm.Title) + "\n\n" +
		m.confirm.Message + "\n\n" +
		m.styles.Help.Render("y confirm · n cancel")
	return m.styles.Overlay.Render(body)
}
