package metrics

import (
	"testing"
	"time"

	"hexnav/internal/event"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// Коллекторы глобальные, поэтому тесты сравнивают приращения
func TestRecorderCountsEvents(t *testing.T) {
	d := event.NewDispatcher()
	NewRecorder().Subscribe(d)

	found := testutil.ToFloat64(pathRequests.WithLabelValues("found"))
	notFound := testutil.ToFloat64(pathRequests.WithLabelValues("not_found"))
	blocked := testutil.ToFloat64(cellToggles.WithLabelValues("blocked"))
	walkable := testutil.ToFloat64(cellToggles.WithLabelValues("walkable"))
	completed := testutil.ToFloat64(legs.WithLabelValues("completed"))
	abandoned := testutil.ToFloat64(legs.WithLabelValues("abandoned"))
	rejected := testutil.ToFloat64(movesRejected)

	d.Dispatch(event.Event{Type: event.PathPlanned, Data: event.PathData{Length: 3, Expanded: 12}})
	d.Dispatch(event.Event{Type: event.PathNotFound, Data: event.PathData{Expanded: 40}})
	d.Dispatch(event.Event{Type: event.CellToggled, Data: event.ToggleData{Blocked: true}})
	d.Dispatch(event.Event{Type: event.CellToggled, Data: event.ToggleData{Blocked: false}})
	d.Dispatch(event.Event{Type: event.LegCompleted, Data: event.LegData{}})
	d.Dispatch(event.Event{Type: event.LegCompleted, Data: event.LegData{}})
	d.Dispatch(event.Event{Type: event.LegAbandoned, Data: event.LegData{}})
	d.Dispatch(event.Event{Type: event.MoveRejected, Data: event.RejectData{}})

	checks := []struct {
		name   string
		before float64
		after  float64
		delta  float64
	}{
		{"found", found, testutil.ToFloat64(pathRequests.WithLabelValues("found")), 1},
		{"not_found", notFound, testutil.ToFloat64(pathRequests.WithLabelValues("not_found")), 1},
		{"blocked", blocked, testutil.ToFloat64(cellToggles.WithLabelValues("blocked")), 1},
		{"walkable", walkable, testutil.ToFloat64(cellToggles.WithLabelValues("walkable")), 1},
		{"completed", completed, testutil.ToFloat64(legs.WithLabelValues("completed")), 2},
		{"abandoned", abandoned, testutil.ToFloat64(legs.WithLabelValues("abandoned")), 1},
		{"rejected", rejected, testutil.ToFloat64(movesRejected), 1},
	}
	for _, c := range checks {
		if got := c.after - c.before; got != c.delta {
			t.Fatalf("%s: delta %v, want %v", c.name, got, c.delta)
		}
	}
}

func TestObserveFrameSetsGauges(t *testing.T) {
	ObserveFrame(2*time.Millisecond, 5, 3)
	if got := testutil.ToFloat64(blockedCells); got != 5 {
		t.Fatalf("blocked cells gauge = %v", got)
	}
	if got := testutil.ToFloat64(queuedSteps); got != 3 {
		t.Fatalf("queue gauge = %v", got)
	}
}
