package validation

import "testing"

func TestValidateTrip(t *testing.T) {
	tests := []struct {
		name        string
		tripName    string
		destination string
		start       string
		end         string
		wantErr     bool
	}{
		{"valid", "Japan", "Tokyo", "2026-03-10", "2026-03-13", false},
		{"single day", "Japan", "Tokyo", "2026-03-10", "2026-03-10", false},
		{"missing name", "", "Tokyo", "2026-03-10", "2026-03-13", true},
		{"whitespace name", "   ", "Tokyo", "2026-03-10", "2026-03-13", true},
		{"missing destination", "Japan", "", "2026-03-10", "2026-03-13", true},
		{"bad start date", "Japan", "Tokyo", "03/10/2026", "2026-03-13", true},
		{"bad end date", "Japan", "Tokyo", "2026-03-10", "soon", true},
		{"end before start", "Japan", "Tokyo", "2026-03-13", "2026-03-10", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTrip(tt.tripName, tt.destination, tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTrip() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateActivity(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		timeStr string
		wantErr bool
	}{
		{"valid with time", "Museum", "10:00", false},
		{"valid without time", "Museum", "", false},
		{"missing title", "", "10:00", true},
		{"bad time", "Museum", "10am", true},
		{"out of range time", "Museum", "25:00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateActivity(tt.title, tt.timeStr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateActivity() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	if err := ValidateCategory("food"); err != nil {
		t.Errorf("food should be valid: %v", err)
	}
	if err := ValidateCategory(""); err != nil {
		t.Errorf("empty category should be allowed: %v", err)
	}
	if err := ValidateCategory("sightseeing"); err == nil {
		t.Error("unknown category should be rejected")
	}
}

func TestValidateTimezoneTag(t *testing.T) {
	for _, tag := range []string{"local", "destination", "home", ""} {
		if err := ValidateTimezoneTag(tag); err != nil {
			t.Errorf("%q should be valid: %v", tag, err)
		}
	}
	if err := ValidateTimezoneTag("utc"); err == nil {
		t.Error("unknown tag should be rejected")
	}
}
