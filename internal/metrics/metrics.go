// internal/metrics/metrics.go
package metrics

import (
	"time"

	"hexnav/internal/event"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Метки ограничены фиксированным набором значений
var (
	pathRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hexnav_path_requests_total",
		Help: "Path requests by result",
	}, []string{"result"}) // "found", "not_found"

	pathLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hexnav_path_length_cells",
		Help:    "Number of steps in planned paths",
		Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
	})

	nodesExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hexnav_path_nodes_expanded",
		Help:    "Nodes expanded by a single A* search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	cellToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hexnav_cell_toggles_total",
		Help: "Cell block toggles by resulting state",
	}, []string{"state"}) // "blocked", "walkable"

	legs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hexnav_legs_total",
		Help: "Path legs by outcome",
	}, []string{"outcome"}) // "completed", "abandoned"

	movesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hexnav_moves_rejected_total",
		Help: "Direct moves rejected by a blocked cell",
	})

	frameDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hexnav_frame_duration_seconds",
		Help:    "Time spent in one simulation frame",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.02},
	})

	blockedCells = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hexnav_blocked_cells",
		Help: "Currently blocked cells",
	})

	queuedSteps = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hexnav_path_queue_length",
		Help: "Waypoints left in the active path",
	})
)

// Recorder переводит события симуляции в метрики Prometheus.
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Subscribe подписывает рекордер на все события диспетчера
func (r *Recorder) Subscribe(d *event.Dispatcher) {
	d.Subscribe(r, event.All()...)
}

func (r *Recorder) OnEvent(e event.Event) {
	switch e.Type {
	case event.PathPlanned:
		pathRequests.WithLabelValues("found").Inc()
		if data, ok := e.Data.(event.PathData); ok {
			pathLength.Observe(float64(data.Length))
			nodesExpanded.Observe(float64(data.Expanded))
		}
	case event.PathNotFound:
		pathRequests.WithLabelValues("not_found").Inc()
		if data, ok := e.Data.(event.PathData); ok {
			nodesExpanded.Observe(float64(data.Expanded))
		}
	case event.CellToggled:
		state := "walkable"
		if data, ok := e.Data.(event.ToggleData); ok && data.Blocked {
			state = "blocked"
		}
		cellToggles.WithLabelValues(state).Inc()
	case event.LegCompleted:
		legs.WithLabelValues("completed").Inc()
	case event.LegAbandoned:
		legs.WithLabelValues("abandoned").Inc()
	case event.MoveRejected:
		movesRejected.Inc()
	}
}

// ObserveFrame записывает длительность кадра и состояние карты после него
func ObserveFrame(d time.Duration, blocked, queued int) {
	frameDuration.Observe(d.Seconds())
	blockedCells.Set(float64(blocked))
	queuedSteps.Set(float64(queued))
}
