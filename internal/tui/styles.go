package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds every lipgloss style for the active theme so the whole set
// can be swapped when the user toggles light/dark.
type Styles struct {
	Header        lipgloss.Style
	HeaderAccent  lipgloss.Style
	Sidebar       lipgloss.Style
	SidebarItem   lipgloss.Style
	SidebarActive lipgloss.Style
	DayColumn     lipgloss.Style
	DayHeader     lipgloss.Style
	Activity      lipgloss.Style
	ActivityFocus lipgloss.Style
	ActivityDone  lipgloss.Style
	ActivityMove  lipgloss.Style
	Time          lipgloss.Style
	Category      lipgloss.Style
	Toast         lipgloss.Style
	Help          lipgloss.Style
	Danger        lipgloss.Style
	Overlay       lipgloss.Style
}

func darkStyles() Styles {
	return Styles{
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true).Padding(0, 1),
		HeaderAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		Sidebar:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		SidebarItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Padding(0, 1),
		SidebarActive: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true).Padding(0, 1),
		DayColumn:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1).Width(columnWidth),
		DayHeader:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Activity:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ActivityFocus: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("237")).Bold(true),
		ActivityDone:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		ActivityMove:  lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
		Time:          lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Category:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Toast:         lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("25")).Padding(0, 1),
		Help:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Danger:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Overlay:       lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("39")).Padding(1, 2),
	}
}

func lightStyles() Styles {
	return Styles{
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("27")).Bold(true).Padding(0, 1),
		HeaderAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		Sidebar:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("252")).Padding(0, 1),
		SidebarItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Padding(0, 1),
		SidebarActive: lipgloss.NewStyle().Foreground(lipgloss.Color("27")).Bold(true).Padding(0, 1),
		DayColumn:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("252")).Padding(0, 1).Width(columnWidth),
		DayHeader:     lipgloss.NewStyle().Foreground(lipgloss.Color("27")).Bold(true),
		Activity:      lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		ActivityFocus: lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("153")).Bold(true),
		ActivityDone:  lipgloss.NewStyle().Foreground(lipgloss.Color("247")).Strikethrough(true),
		ActivityMove:  lipgloss.NewStyle().Foreground(lipgloss.Color("127")).Bold(true),
		Time:          lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
		Category:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Toast:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("27")).Padding(0, 1),
		Help:          lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
		Danger:        lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
		Overlay:       lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("27")).Padding(1, 2),
	}
}
