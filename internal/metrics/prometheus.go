// Package metrics provides Prometheus metrics for the dial and its
// evaluation list.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/phanxgames/dualdial"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the application's Prometheus metrics. It implements
// dualdial.SelectionSink so it can be attached to a dial directly.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	drags            *prometheus.CounterVec
	dragDuration     *prometheus.HistogramVec
	selectionChanges prometheus.Counter
	selected         *prometheus.GaugeVec
	saved            prometheus.Counter
	deleted          prometheus.Counter
	stored           prometheus.Gauge

	mu        sync.Mutex
	dragStart map[dualdial.Ring]time.Time
	current   dualdial.Selection
	now       func() time.Time
}

var _ dualdial.SelectionSink = (*Manager)(nil)

// NewManager creates a metrics manager. Without WithPrometheusRegistry it
// registers on a fresh private registry, so several managers can coexist.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "dualdial",
		subsystem:        "dial",
		histogramBuckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
		dragStart:        make(map[dualdial.Ring]time.Time),
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.drags = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "drags_total",
		Help:      "Number of completed ring drags",
	}, []string{"ring"})

	m.dragDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "drag_duration_seconds",
		Help:      "Time from press to release for ring drags",
		Buckets:   m.histogramBuckets,
	}, []string{"ring"})

	m.selectionChanges = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "selection_changes_total",
		Help:      "Number of times the resolved selection changed",
	})

	m.selected = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "selected",
		Help:      "1 for the category currently under the pointer on each ring",
	}, []string{"ring", "category"})

	m.saved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "evaluations",
		Name:      "saved_total",
		Help:      "Number of evaluations saved",
	})

	m.deleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "evaluations",
		Name:      "deleted_total",
		Help:      "Number of evaluations deleted",
	})

	m.stored = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "evaluations",
		Name:      "stored",
		Help:      "Number of evaluations currently held",
	})
}

// EmitSelection records a dial event.
func (m *Manager) EmitSelection(e dualdial.SelectionEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch e.Type {
	case dualdial.EventDragStart:
		m.dragStart[e.Ring] = m.now()
	case dualdial.EventDragEnd:
		ring := e.Ring.String()
		m.drags.WithLabelValues(ring).Inc()
		if start, ok := m.dragStart[e.Ring]; ok {
			m.dragDuration.WithLabelValues(ring).Observe(m.now().Sub(start).Seconds())
			delete(m.dragStart, e.Ring)
		}
	case dualdial.EventSelectionChange:
		next := dualdial.Selection{Outer: e.Outer, Inner: e.Inner}
		if m.current != (dualdial.Selection{}) {
			m.selectionChanges.Inc()
			m.selected.WithLabelValues("outer", m.current.Outer).Set(0)
			m.selected.WithLabelValues("inner", m.current.Inner).Set(0)
		}
		m.selected.WithLabelValues("outer", next.Outer).Set(1)
		m.selected.WithLabelValues("inner", next.Inner).Set(1)
		m.current = next
	}
}

// EvaluationSaved records a save and the new list size.
func (m *Manager) EvaluationSaved(stored int) {
	m.saved.Inc()
	m.stored.Set(float64(stored))
}

// EvaluationDeleted records a delete and the new list size.
func (m *Manager) EvaluationDeleted(stored int) {
	m.deleted.Inc()
	m.stored.Set(float64(stored))
}

// Registry returns the registry the metrics live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
