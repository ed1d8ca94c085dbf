package validation

import (
	"fmt"
	"strings"

	"wanderlust/internal/models"
	"wanderlust/internal/utils"
)

// ValidateTrip checks the fields required to create or edit a trip. The trip
// store itself validates nothing; every entry point goes through here first.
func ValidateTrip(name, destination, startDate, endDate string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("trip name is required")
	}
	if strings.TrimSpace(destination) == "" {
		return fmt.Errorf("destination is required")
	}
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return fmt.Errorf("invalid start date (expected YYYY-MM-DD): %w", err)
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return fmt.Errorf("invalid end date (expected YYYY-MM-DD): %w", err)
	}
	if end.Before(start) {
		return fmt.Errorf("end date must not be before start date")
	}
	return nil
}

// ValidateActivity checks the fields required to create or edit an activity.
func ValidateActivity(title, timeStr string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("activity title is required")
	}
	if timeStr != "" {
		if _, err := utils.ParseTime(timeStr); err != nil {
			return fmt.Errorf("invalid time format (expected HH:MM): %w", err)
		}
	}
	return nil
}

// ValidateDate checks a date string against the standard format.
func ValidateDate(dateStr string) error {
	if _, err := utils.ParseDate(dateStr); err != nil {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %w", err)
	}
	return nil
}

// ValidateCategory checks category membership. An empty value is allowed;
// the store defaults it and display normalization maps strays to "other".
func ValidateCategory(category string) error {
	if category == "" {
		return nil
	}
	for _, c := range models.Categories {
		if models.Category(category) == c {
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", category)
}

// ValidateTimezoneTag checks timezone-context tag membership.
func ValidateTimezoneTag(tag string) error {
	if tag == "" {
		return nil
	}
	for _, t := range models.TimezoneTags {
		if models.TimezoneTag(tag) == t {
			return nil
		}
	}
	return fmt.Errorf("unknown timezone tag %q (expected local, destination, or home)", tag)
}
