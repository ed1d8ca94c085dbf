package constants

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SessionState represents the current state of the TUI application
type SessionState int

// ConfirmationMsg is a message to trigger a confirmation dialog
type ConfirmationMsg struct {
	Title   string
	Message string
	Confirm func() tea.Cmd
	Cancel  func() tea.Cmd
}

// ToastMsg is a message to show a transient status toast
type ToastMsg struct {
	Text string
}

const (
	AppName           = "wanderlust"
	DefaultConfigPath = "~/.config/wanderlust"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DisplayDateFormat is the long form used on day columns and exports
	DisplayDateFormat = "Monday, Jan 2"

	// DisplayTimeFormat is the 12-hour clock used for activity times
	DisplayTimeFormat = "3:04 PM"

	// Storage keys
	StorageKeyTrips       = "trips"
	StorageKeyCurrentTrip = "currentTripId"
	StorageKeyTheme       = "theme"

	// Theme values persisted under StorageKeyTheme
	ThemeLight = "light"
	ThemeDark  = "dark"

	// Reminder constants
	ReminderInterval         = 60 * time.Second
	ReminderThresholdMinutes = 10

	// Notify constants
	NotifierLockfileName   = "wanderlust-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppDirName         = "wanderlust-tray"

	// Session States
	StateBoard SessionState = iota
	StateSidebar
	StateMoveActivity
	StateNewTrip
	StateEditTrip
	StateAddActivity
	StateEditActivity
	StateAddDay
	StateConfirmation
)
