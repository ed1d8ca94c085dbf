package trip

import (
	"wanderlust/internal/logger"
	"wanderlust/internal/models"
)

// OnDragEnd reconciles a finished drag against the current trip. A nil
// destination means the drop was abandoned and nothing changes. Moves within
// a day reorder its activity sequence; moves across days transfer ownership
// of the activity in a single state transition.
func (s *Store) OnDragEnd(result models.DragResult) {
	if result.Destination == nil {
		return
	}
	src := result.Source
	dst := *result.Destination

	if src.ContainerID == dst.ContainerID && src.Index == dst.Index {
		return
	}

	s.mu.Lock()
	t := s.currentTripLocked()
	if t == nil {
		s.mu.Unlock()
		return
	}

	if src.ContainerID == dst.ContainerID {
		day := findDay(t, src.ContainerID)
		if day == nil {
			s.mu.Unlock()
			logger.Debug("OnDragEnd: day not found", "id", src.ContainerID)
			return
		}
		day.Activities = moveWithin(day.Activities, src.Index, dst.Index)
	} else {
		sourceDay := findDay(t, src.ContainerID)
		destDay := findDay(t, dst.ContainerID)
		if sourceDay == nil || destDay == nil {
			s.mu.Unlock()
			logger.Debug("OnDragEnd: day not found", "source", src.ContainerID, "destination", dst.ContainerID)
			return
		}

		moved := sourceDay.Activities[src.Index]
		sourceDay.Activities = append(sourceDay.Activities[:src.Index], sourceDay.Activities[src.Index+1:]...)
		destDay.Activities = insertAt(destDay.Activities, dst.Index, moved)
	}

	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// moveWithin removes the element at from and reinserts it at to.
func moveWithin(activities []models.Activity, from, to int) []models.Activity {
	moved := activities[from]
	activities = append(activities[:from], activities[from+1:]...)
	return insertAt(activities, to, moved)
}

// insertAt inserts a at index i, appending when i is past the end.
func insertAt(activities []models.Activity, i int, a models.Activity) []models.Activity {
	if i > len(activities) {
		i = len(activities)
	}
	activities = append(activities, models.Activity{})
	copy(activities[i+1:], activities[i:])
	activities[i] = a
	return activities
}
