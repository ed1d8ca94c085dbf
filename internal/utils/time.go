package utils

import (
	"time"

	"wanderlust/internal/constants"
	"wanderlust/internal/models"
)

// nowFunc is swapped out in tests.
var nowFunc = time.Now

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(constants.DateFormat, dateStr, time.Local)
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// Today returns today's date string (YYYY-MM-DD).
func Today() string {
	return nowFunc().Format(constants.DateFormat)
}

// DateAddDays returns the date string n calendar days after dateStr.
// An unparsable date is returned unchanged.
func DateAddDays(dateStr string, n int) string {
	d, err := ParseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return d.AddDate(0, 0, n).Format(constants.DateFormat)
}

// DaysBetween returns the number of whole days from start to end.
// Either date failing to parse yields 0.
func DaysBetween(startStr, endStr string) int {
	start, err := ParseDate(startStr)
	if err != nil {
		return 0
	}
	end, err := ParseDate(endStr)
	if err != nil {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}

// ParseActivityTime combines a day's calendar date with an HH:MM time-of-day
// into a single instant. Malformed input falls back to the current instant;
// it never fails to the caller.
func ParseActivityTime(timeStr string, date time.Time) time.Time {
	t, err := ParseTime(timeStr)
	if err != nil {
		return nowFunc()
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// IsActivityComingSoon reports whether the activity starts between 0 and
// thresholdMinutes minutes from now, inclusive. Only activities on today's
// calendar date qualify; activities without a time never do.
func IsActivityComingSoon(activity models.Activity, dayDate string, thresholdMinutes int) bool {
	if activity.Time == "" {
		return false
	}

	date, err := ParseDate(dayDate)
	if err != nil {
		return false
	}

	now := nowFunc()
	if !sameDay(date, now) {
		return false
	}

	activityTime := ParseActivityTime(activity.Time, date)
	minutesUntil := int(activityTime.Sub(now) / time.Minute)
	return minutesUntil >= 0 && minutesUntil <= thresholdMinutes
}

// FormatDayDate renders a day's date for display: "Today", "Tomorrow", or
// the long form ("Monday, Jan 2").
func FormatDayDate(dateStr string) string {
	date, err := ParseDate(dateStr)
	if err != nil {
		return "Invalid date"
	}

	now := nowFunc()
	switch {
	case sameDay(date, now):
		return "Today"
	case sameDay(date, now.AddDate(0, 0, 1)):
		return "Tomorrow"
	default:
		return date.Format(constants.DisplayDateFormat)
	}
}

// FormatTime renders an HH:MM time on a 12-hour clock for display.
// Malformed input is returned unchanged.
func FormatTime(timeStr string) string {
	t, err := ParseTime(timeStr)
	if err != nil {
		return timeStr
	}
	return t.Format(constants.DisplayTimeFormat)
}

// LocationWithTimezone renders an activity's location together with its
// timezone-context label, e.g. "Le Cafe (Destination time)".
func LocationWithTimezone(activity models.Activity) string {
	label := activity.Timezone.Label()
	if activity.Location == "" {
		return label
	}
	return activity.Location + " " + label
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
