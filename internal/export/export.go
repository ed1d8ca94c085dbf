// Package export renders a trip as a styled standalone HTML document. It is
// a read-only projection of the trip store's query surface.
package export

import (
	"fmt"
	"html/template"
	"io"
	"os"

	"wanderlust/internal/constants"
	"wanderlust/internal/models"
	"wanderlust/internal/utils"
)

var itineraryTmpl = template.Must(template.New("itinerary").Funcs(template.FuncMap{
	"formatDate": func(dateStr string) string {
		d, err := utils.ParseDate(dateStr)
		if err != nil {
			return dateStr
		}
		return d.Format(constants.DisplayDateFormat)
	},
	"formatTime": utils.FormatTime,
	"location":   utils.LocationWithTimezone,
	"category": func(c models.Category) models.Category {
		return c.Normalize()
	},
}).Parse(itineraryHTML))

// WriteTrip renders the itinerary document for t to w.
func WriteTrip(w io.Writer, t models.Trip) error {
	if err := itineraryTmpl.Execute(w, t); err != nil {
		return fmt.Errorf("failed to render itinerary: %w", err)
	}
	return nil
}

// SaveTrip writes the itinerary document for t to path.
func SaveTrip(t models.Trip, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := WriteTrip(f, t); err != nil {
		return err
	}
	return f.Sync()
}

// DefaultFilename names the export after the trip:
// "<trip name> - Itinerary.html".
func DefaultFilename(t models.Trip) string {
	return t.Name + " - Itinerary.html"
}

const itineraryHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Name}} — Itinerary</title>
<style>
  body { font-family: Georgia, serif; max-width: 720px; margin: 2rem auto; color: #1f2937; }
  h1 { margin-bottom: 0; }
  .meta { color: #6b7280; margin-top: 0.25rem; }
  .day { margin-top: 2rem; border-top: 2px solid #3b82f6; padding-top: 0.5rem; }
  .day h2 { font-size: 1.1rem; margin: 0 0 0.5rem; }
  .activity { display: flex; gap: 0.75rem; padding: 0.4rem 0; border-bottom: 1px solid #e5e7eb; }
  .time { width: 6rem; color: #3b82f6; white-space: nowrap; }
  .title { font-weight: bold; }
  .done .title { text-decoration: line-through; color: #9ca3af; }
  .tag { font-variant: small-caps; color: #6b7280; }
  .notes, .place { color: #6b7280; font-size: 0.9rem; }
  .empty { color: #9ca3af; font-style: italic; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
<p class="meta">{{.DepartureLocation}} &rarr; {{.Destination}} &middot; {{formatDate .StartDate}} &ndash; {{formatDate .EndDate}}</p>
{{range .Days}}
<section class="day">
  <h2>{{formatDate .Date}}</h2>
  {{if .Activities}}{{range .Activities}}
  <div class="activity{{if .IsCompleted}} done{{end}}">
    <div class="time">{{if .Time}}{{formatTime .Time}}{{end}}</div>
    <div>
      <div class="title">{{.Title}} <span class="tag">{{category .Category}}</span></div>
      {{if or .Location .Timezone}}<div class="place">{{location .}}</div>{{end}}
      {{if .Notes}}<div class="notes">{{.Notes}}</div>{{end}}
    </div>
  </div>
  {{end}}{{else}}
  <p class="empty">No activities planned.</p>
  {{end}}
</section>
{{end}}
</body>
</html>
`
