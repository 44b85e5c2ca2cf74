package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phanxgames/dualdial"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Manager) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestManagerDefaults(t *testing.T) {
	m := NewManager()
	assert.Equal(t, "dualdial", m.namespace)
	assert.Equal(t, "dial", m.subsystem)
	assert.NotNil(t, m.Registry())

	// Two managers on private registries do not collide.
	assert.NotPanics(t, func() { NewManager() })
}

func TestManagerOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewManager(
		WithNamespace("test"),
		WithSubsystem("ui"),
		WithHistogramBuckets([]float64{1, 2}),
		WithPrometheusRegistry(reg),
	)
	assert.Same(t, reg, m.Registry())
	assert.Equal(t, []float64{1, 2}, m.histogramBuckets)

	m.EmitSelection(dualdial.SelectionEvent{Type: dualdial.EventSelectionChange, Outer: "boring", Inner: "active"})
	assert.Contains(t, scrape(t, m), `test_ui_selected{category="boring",ring="outer"} 1`)
}

func TestManagerRecordsDrags(t *testing.T) {
	m := NewManager()
	clock := time.Unix(1000, 0)
	m.now = func() time.Time { return clock }

	m.EmitSelection(dualdial.SelectionEvent{Type: dualdial.EventDragStart, Ring: dualdial.RingOuter})
	clock = clock.Add(300 * time.Millisecond)
	m.EmitSelection(dualdial.SelectionEvent{Type: dualdial.EventDragEnd, Ring: dualdial.RingOuter})
	m.EmitSelection(dualdial.SelectionEvent{Type: dualdial.EventDragEnd, Ring: dualdial.RingInner})

	body := scrape(t, m)
	assert.Contains(t, body, `dualdial_dial_drags_total{ring="outer"} 1`)
	assert.Contains(t, body, `dualdial_dial_drags_total{ring="inner"} 1`)
	assert.Contains(t, body, `dualdial_dial_drag_duration_seconds_count{ring="outer"} 1`)
	assert.Contains(t, body, `dualdial_dial_drag_duration_seconds_bucket{ring="outer",le="0.5"} 1`)
	assert.NotContains(t, body, `dualdial_dial_drag_duration_seconds_count{ring="inner"}`)
}

func TestManagerTracksSelection(t *testing.T) {
	m := NewManager()

	m.EmitSelection(dualdial.SelectionEvent{Type: dualdial.EventSelectionChange, Outer: "boring", Inner: "unpleasant"})
	m.EmitSelection(dualdial.SelectionEvent{Type: dualdial.EventSelectionChange, Outer: "stressing", Inner: "unpleasant"})

	body := scrape(t, m)
	// The mount notification is not a change.
	assert.Contains(t, body, "dualdial_dial_selection_changes_total 1")
	assert.Contains(t, body, `dualdial_dial_selected{category="boring",ring="outer"} 0`)
	assert.Contains(t, body, `dualdial_dial_selected{category="stressing",ring="outer"} 1`)
	assert.Contains(t, body, `dualdial_dial_selected{category="unpleasant",ring="inner"} 1`)
}

func TestManagerAsDialSink(t *testing.T) {
	m := NewManager()
	d := dualdial.NewDial(dualdial.DialConfig{Input: dualdial.NewInput(), Sink: m})
	d.SetCenter(240, 240)

	in := d.Input()
	in.InjectPress(390, 240)
	in.InjectMove(240, 390)
	in.InjectRelease(240, 390)
	for in.Pending() > 0 {
		in.Process()
	}

	body := scrape(t, m)
	assert.Contains(t, body, `dualdial_dial_drags_total{ring="outer"} 1`)
	assert.Contains(t, body, "dualdial_dial_selection_changes_total 1")
	assert.Contains(t, body, `dualdial_dial_selected{category="stressing",ring="outer"} 1`)
}

func TestManagerEvaluations(t *testing.T) {
	m := NewManager()
	m.EvaluationSaved(1)
	m.EvaluationSaved(2)
	m.EvaluationDeleted(1)

	body := scrape(t, m)
	assert.Contains(t, body, "dualdial_evaluations_saved_total 2")
	assert.Contains(t, body, "dualdial_evaluations_deleted_total 1")
	assert.Contains(t, body, "dualdial_evaluations_stored 1")
}
