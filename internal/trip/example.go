package trip

import (
	"github.com/google/uuid"

	"wanderlust/internal/models"
	"wanderlust/internal/utils"
)

// LoadDefaultTrip clones the bundled example itinerary with fresh ids and
// dates anchored to today, appends it to the collection, and selects it.
func (s *Store) LoadDefaultTrip() models.Trip {
	t := defaultTrip()

	s.mu.Lock()
	s.trips = append(s.trips, t)
	s.currentID = t.ID
	s.persistLocked()
	s.mu.Unlock()
	s.notify()

	return t.Clone()
}

// defaultTrip builds the four-day Paris example starting today.
func defaultTrip() models.Trip {
	today := utils.Today()

	day := func(offset int, activities ...models.Activity) models.Day {
		for i := range activities {
			activities[i].ID = uuid.New().String()
			if activities[i].Timezone == "" {
				activities[i].Timezone = models.TimezoneLocal
			}
		}
		return models.Day{
			ID:         uuid.New().String(),
			Date:       utils.DateAddDays(today, offset),
			Activities: activities,
		}
	}

	return models.Trip{
		ID:                uuid.New().String(),
		Name:              "My Paris Trip",
		Destination:       "Paris, France",
		DepartureLocation: "New York, USA",
		StartDate:         today,
		EndDate:           utils.DateAddDays(today, 3),
		Days: []models.Day{
			day(0,
				models.Activity{
					Title:    "Check-in at Hotel",
					Time:     "14:00",
					Category: models.CategoryLodging,
					Notes:    "Hotel de Ville - Confirmation #12345",
					Location: "Hotel de Ville",
					Timezone: models.TimezoneDestination,
				},
				models.Activity{
					Title:    "Dinner at Le Cafe",
					Time:     "19:00",
					Category: models.CategoryFood,
					Notes:    "Make reservation",
					Location: "Le Cafe on Champs-Élysées",
				},
			),
			day(1,
				models.Activity{
					Title:    "Visit Eiffel Tower",
					Time:     "10:00",
					Category: models.CategoryAttraction,
					Notes:    "Buy tickets in advance",
				},
				models.Activity{
					Title:    "Lunch at Bistro",
					Time:     "13:00",
					Category: models.CategoryFood,
				},
				models.Activity{
					Title:    "Louvre Museum",
					Time:     "15:00",
					Category: models.CategoryAttraction,
					Notes:    "Spend at least 3 hours here",
				},
			),
			day(2,
				models.Activity{
					Title:    "Seine River Cruise",
					Time:     "11:00",
					Category: models.CategoryTransport,
				},
				models.Activity{
					Title:    "Shopping at Champs-Élysées",
					Time:     "14:00",
					Category: models.CategoryShopping,
					Notes:    "Buy souvenirs",
				},
			),
			day(3,
				models.Activity{
					Title:    "Hotel Checkout",
					Time:     "11:00",
					Category: models.CategoryLodging,
					Notes:    "Pack everything the night before",
				},
				models.Activity{
					Title:    "Airport Transfer",
					Time:     "13:00",
					Category: models.CategoryTransport,
					Notes:    "Flight at 16:30",
				},
			),
		},
	}
}
