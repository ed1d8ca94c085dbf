package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wanderlust/internal/models"
)

func sampleTrip() models.Trip {
	return models.Trip{
		ID:                "t1",
		Name:              "Japan",
		Destination:       "Tokyo",
		DepartureLocation: "Berlin",
		StartDate:         "2026-03-10",
		EndDate:           "2026-03-11",
		Days: []models.Day{
			{
				ID:   "d1",
				Date: "2026-03-10",
				Activities: []models.Activity{
					{
						ID:       "a1",
						Title:    "Check-in",
						Time:     "14:00",
						Category: models.CategoryLodging,
						Location: "Hotel Ueno",
						Timezone: models.TimezoneDestination,
					},
					{
						ID:          "a2",
						Title:       "Dinner",
						Time:        "19:00",
						Category:    models.CategoryFood,
						IsCompleted: true,
					},
				},
			},
			{ID: "d2", Date: "2026-03-11"},
		},
	}
}

func TestWriteTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTrip(&buf, sampleTrip()); err != nil {
		t.Fatalf("WriteTrip failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<title>Japan — Itinerary</title>",
		"Tuesday, Mar 10",
		"Wednesday, Mar 11",
		"2:00 PM",
		"Check-in",
		"Hotel Ueno (Destination time)",
		`class="activity done"`,
		"No activities planned.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestWriteTrip_EscapesHTML(t *testing.T) {
	trip := sampleTrip()
	trip.Days[0].Activities[0].Title = "<script>alert(1)</script>"

	var buf bytes.Buffer
	if err := WriteTrip(&buf, trip); err != nil {
		t.Fatalf("WriteTrip failed: %v", err)
	}
	if strings.Contains(buf.String(), "<script>alert(1)</script>") {
		t.Error("activity title was not escaped")
	}
}

func TestWriteTrip_UnknownCategoryDisplaysAsOther(t *testing.T) {
	trip := sampleTrip()
	trip.Days[0].Activities[0].Category = "sightseeing"

	var buf bytes.Buffer
	if err := WriteTrip(&buf, trip); err != nil {
		t.Fatalf("WriteTrip failed: %v", err)
	}
	if !strings.Contains(buf.String(), ">other</span>") {
		t.Error("unknown category should display as other")
	}
}

func TestSaveTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename(sampleTrip()))

	if err := SaveTrip(sampleTrip(), path); err != nil {
		t.Fatalf("SaveTrip failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "Japan") {
		t.Error("exported file missing trip name")
	}
}

func TestDefaultFilename(t *testing.T) {
	if got := DefaultFilename(models.Trip{Name: "Japan"}); got != "Japan - Itinerary.html" {
		t.Errorf("DefaultFilename = %q", got)
	}
}
