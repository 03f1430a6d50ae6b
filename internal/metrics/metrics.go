package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder receives editor events worth counting.
type Recorder interface {
	MoveCommitted(mode, kind string)
	MoveRejected(mode, reason string)
	EditApplied(action string)
	SaveFinished(outcome string)
}

// NoOp returns a recorder that drops every event.
func NoOp() Recorder {
	return noopRecorder{}
}

type noopRecorder struct{}

func (noopRecorder) MoveCommitted(string, string) {}
func (noopRecorder) MoveRejected(string, string)  {}
func (noopRecorder) EditApplied(string)           {}
func (noopRecorder) SaveFinished(string)          {}

// IncrementalCounter is a labelled counter.
type IncrementalCounter interface {
	Increment(val ...string)
}

// Counter wraps a prometheus counter vector.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// NewCounterWithRegistry registers a counter vector on reg.
func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) *Counter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "menu_editor",
		Name:      name,
		Help:      help,
	}, labels)

	reg.MustRegister(counter)

	return &Counter{
		Name: name,
		Help: help,
		vec:  counter,
	}
}

// PrometheusRecorder counts editor events on a prometheus registry.
type PrometheusRecorder struct {
	moves    *Counter
	rejected *Counter
	edits    *Counter
	saves    *Counter
}

// NewPrometheusRecorder registers the editor counters on reg. A nil reg uses
// the default registerer.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &PrometheusRecorder{
		moves:    NewCounterWithRegistry(reg, "moves_total", "Committed node moves.", "mode", "kind"),
		rejected: NewCounterWithRegistry(reg, "moves_rejected_total", "Moves rejected by structural checks.", "mode", "reason"),
		edits:    NewCounterWithRegistry(reg, "edits_total", "Add, edit and delete operations applied to the tree.", "action"),
		saves:    NewCounterWithRegistry(reg, "saves_total", "Save attempts by outcome.", "outcome"),
	}
}

func (r *PrometheusRecorder) MoveCommitted(mode, kind string) { r.moves.Increment(mode, kind) }
func (r *PrometheusRecorder) MoveRejected(mode, reason string) {
	r.rejected.Increment(mode, reason)
}
func (r *PrometheusRecorder) EditApplied(action string)   { r.edits.Increment(action) }
func (r *PrometheusRecorder) SaveFinished(outcome string) { r.saves.Increment(outcome) }

var (
	_ Recorder           = (*PrometheusRecorder)(nil)
	_ IncrementalCounter = (*Counter)(nil)
)
