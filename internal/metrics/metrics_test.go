package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusRecorderCountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := NewPrometheusRecorder(reg)

	recorder.MoveCommitted("drag", "nest")
	recorder.MoveCommitted("drag", "nest")
	recorder.MoveRejected("drag", "depth_exceeded")
	recorder.EditApplied("add")
	recorder.SaveFinished("failed")

	if got := testutil.ToFloat64(recorder.moves.vec.WithLabelValues("drag", "nest")); got != 2 {
		t.Fatalf("expected 2 committed moves, got %v", got)
	}
	if got := testutil.ToFloat64(recorder.rejected.vec.WithLabelValues("drag", "depth_exceeded")); got != 1 {
		t.Fatalf("expected 1 rejected move, got %v", got)
	}
	if got := testutil.ToFloat64(recorder.saves.vec.WithLabelValues("failed")); got != 1 {
		t.Fatalf("expected 1 failed save, got %v", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, family := range families {
		if family.GetName() == "menu_editor_edits_total" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected namespaced edits counter to be registered")
	}
}

func TestNoOpRecorder(t *testing.T) {
	recorder := NoOp()
	recorder.MoveCommitted("drag", "nest")
	recorder.MoveRejected("manual", "out_of_bounds")
	recorder.EditApplied("delete")
	recorder.SaveFinished("ok")
}
