package models

// Category classifies what kind of plan an activity is
type Category string

const (
	CategoryLodging    Category = "lodging"
	CategoryFood       Category = "food"
	CategoryAttraction Category = "attraction"
	CategoryActivity   Category = "activity"
	CategoryTransport  Category = "transport"
	CategoryShopping   Category = "shopping"
	CategoryEvent      Category = "event"
	CategoryMeeting    Category = "meeting"
	CategoryWork       Category = "work"
	CategoryOther      Category = "other"
)

// Categories lists every recognized category in display order.
var Categories = []Category{
	CategoryLodging,
	CategoryFood,
	CategoryAttraction,
	CategoryActivity,
	CategoryTransport,
	CategoryShopping,
	CategoryEvent,
	CategoryMeeting,
	CategoryWork,
	CategoryOther,
}

// Normalize maps unrecognized category values to CategoryOther for display.
func (c Category) Normalize() Category {
	for _, known := range Categories {
		if c == known {
			return c
		}
	}
	return CategoryOther
}

// TimezoneTag labels which clock an activity's time refers to.
// It is purely a display label; no timezone conversion is performed.
type TimezoneTag string

const (
	TimezoneLocal       TimezoneTag = "local"
	TimezoneDestination TimezoneTag = "destination"
	TimezoneHome        TimezoneTag = "home"
)

// TimezoneTags lists the recognized timezone-context tags.
var TimezoneTags = []TimezoneTag{TimezoneLocal, TimezoneDestination, TimezoneHome}

// Label returns the parenthesized display label for the tag.
func (t TimezoneTag) Label() string {
	switch t {
	case TimezoneDestination:
		return "(Destination time)"
	case TimezoneHome:
		return "(Home time)"
	default:
		return "(Local time)"
	}
}

type Activity struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Time        string      `json:"time,omitempty"` // HH:MM format
	Category    Category    `json:"category"`
	Notes       string      `json:"notes,omitempty"`
	IsCompleted bool        `json:"isCompleted"`
	Location    string      `json:"location,omitempty"`
	Timezone    TimezoneTag `json:"timezone,omitempty"`
}

type Day struct {
	ID         string     `json:"id"`
	Date       string     `json:"date"` // YYYY-MM-DD format
	Activities []Activity `json:"activities"`
}

type Trip struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Destination       string `json:"destination"`
	DepartureLocation string `json:"departureLocation"`
	StartDate         string `json:"startDate"` // YYYY-MM-DD format
	EndDate           string `json:"endDate"`   // YYYY-MM-DD format
	Days              []Day  `json:"days"`
}

// TripPatch carries partial trip updates; nil fields are left unchanged.
type TripPatch struct {
	Name              *string
	Destination       *string
	DepartureLocation *string
	StartDate         *string
	EndDate           *string
}

// ActivityPatch carries partial activity updates; nil fields are left unchanged.
type ActivityPatch struct {
	Title       *string
	Time        *string
	Category    *Category
	Notes       *string
	IsCompleted *bool
	Location    *string
	Timezone    *TimezoneTag
}

// Apply merges the patch into the trip.
func (p TripPatch) Apply(t *Trip) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Destination != nil {
		t.Destination = *p.Destination
	}
	if p.DepartureLocation != nil {
		t.DepartureLocation = *p.DepartureLocation
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		t.EndDate = *p.EndDate
	}
}

// Apply merges the patch into the activity.
func (p ActivityPatch) Apply(a *Activity) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	if p.IsCompleted != nil {
		a.IsCompleted = *p.IsCompleted
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Timezone != nil {
		a.Timezone = *p.Timezone
	}
}

// Clone returns a deep copy of the trip.
func (t Trip) Clone() Trip {
	out := t
	out.Days = make([]Day, len(t.Days))
	for i, d := range t.Days {
		out.Days[i] = d.Clone()
	}
	return out
}

// Clone returns a deep copy of the day.
func (d Day) Clone() Day {
	out := d
	out.Activities = make([]Activity, len(d.Activities))
	copy(out.Activities, d.Activities)
	return out
}

// DragLocation identifies a position within a day's activity sequence.
type DragLocation struct {
	ContainerID string // day id
	Index       int
}

// DragResult is the plain data shape handed to the store when a drag ends.
// A nil Destination means the drop was abandoned.
type DragResult struct {
	Source      DragLocation
	Destination *DragLocation
}
