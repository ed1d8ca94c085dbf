package trip

import (
	"testing"

	"wanderlust/internal/models"
)

// twoDayStore builds a store whose current trip has two days: the first with
// activities A, B, C and the second with D, E.
func twoDayStore(t *testing.T) (*Store, *memProvider) {
	t.Helper()
	p := &memProvider{
		trips: []models.Trip{{
			ID: "t1",
			Days: []models.Day{
				{ID: "d1", Date: "2026-03-10", Activities: []models.Activity{
					{ID: "A", Title: "A"},
					{ID: "B", Title: "B"},
					{ID: "C", Title: "C"},
				}},
				{ID: "d2", Date: "2026-03-11", Activities: []models.Activity{
					{ID: "D", Title: "D"},
					{ID: "E", Title: "E"},
				}},
			},
		}},
		currentID: "t1",
	}
	return NewStore(p), p
}

func activityIDs(day models.Day) []string {
	ids := make([]string, len(day.Activities))
	for i, a := range day.Activities {
		ids[i] = a.ID
	}
	return ids
}

func assertIDs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestOnDragEnd_ReorderWithinDay(t *testing.T) {
	s, _ := twoDayStore(t)

	s.OnDragEnd(models.DragResult{
		Source:      models.DragLocation{ContainerID: "d1", Index: 0},
		Destination: &models.DragLocation{ContainerID: "d1", Index: 2},
	})

	current, _ := s.CurrentTrip()
	assertIDs(t, activityIDs(current.Days[0]), []string{"B", "C", "A"})
}

func TestOnDragEnd_MoveAcrossDays(t *testing.T) {
	s, _ := twoDayStore(t)

	s.OnDragEnd(models.DragResult{
		Source:      models.DragLocation{ContainerID: "d1", Index: 2},
		Destination: &models.DragLocation{ContainerID: "d2", Index: 1},
	})

	current, _ := s.CurrentTrip()
	assertIDs(t, activityIDs(current.Days[0]), []string{"A", "B"})
	assertIDs(t, activityIDs(current.Days[1]), []string{"D", "C", "E"})
}

func TestOnDragEnd_AbandonedDropChangesNothing(t *testing.T) {
	s, p := twoDayStore(t)
	saves := p.saves
	notified := 0
	s.Subscribe(func() { notified++ })

	s.OnDragEnd(models.DragResult{
		Source: models.DragLocation{ContainerID: "d1", Index: 0},
	})

	current, _ := s.CurrentTrip()
	assertIDs(t, activityIDs(current.Days[0]), []string{"A", "B", "C"})
	if p.saves != saves {
		t.Error("abandoned drop should not persist")
	}
	if notified != 0 {
		t.Error("abandoned drop should not notify")
	}
}

func TestOnDragEnd_SamePositionIsNoOp(t *testing.T) {
	s, p := twoDayStore(t)
	saves := p.saves

	s.OnDragEnd(models.DragResult{
		Source:      models.DragLocation{ContainerID: "d1", Index: 1},
		Destination: &models.DragLocation{ContainerID: "d1", Index: 1},
	})

	current, _ := s.CurrentTrip()
	assertIDs(t, activityIDs(current.Days[0]), []string{"A", "B", "C"})
	if p.saves != saves {
		t.Error("no-op drop should not persist")
	}
}

func TestOnDragEnd_IndexPastEndAppends(t *testing.T) {
	s, _ := twoDayStore(t)

	s.OnDragEnd(models.DragResult{
		Source:      models.DragLocation{ContainerID: "d1", Index: 0},
		Destination: &models.DragLocation{ContainerID: "d2", Index: 99},
	})

	current, _ := s.CurrentTrip()
	assertIDs(t, activityIDs(current.Days[1]), []string{"D", "E", "A"})
}

func TestOnDragEnd_UnknownDayIsNoOp(t *testing.T) {
	s, p := twoDayStore(t)
	saves := p.saves

	s.OnDragEnd(models.DragResult{
		Source:      models.DragLocation{ContainerID: "d1", Index: 0},
		Destination: &models.DragLocation{ContainerID: "missing", Index: 0},
	})

	current, _ := s.CurrentTrip()
	assertIDs(t, activityIDs(current.Days[0]), []string{"A", "B", "C"})
	if p.saves != saves {
		t.Error("unknown destination should not persist")
	}
}

func TestOnDragEnd_SingleTransition(t *testing.T) {
	s, _ := twoDayStore(t)
	notified := 0
	s.Subscribe(func() { notified++ })

	s.OnDragEnd(models.DragResult{
		Source:      models.DragLocation{ContainerID: "d1", Index: 0},
		Destination: &models.DragLocation{ContainerID: "d2", Index: 0},
	})

	if notified != 1 {
		t.Errorf("cross-day move should notify exactly once, got %d", notified)
	}
}
