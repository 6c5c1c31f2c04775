package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "property_list",
			duration:   0.5,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "property_list",
			duration:   1.0,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordRequest(tt.tool, tt.duration, tt.success)

			counter, err := RequestsTotal.GetMetricWithLabelValues(tt.tool, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordCacheAccess(t *testing.T) {
	RecordCacheAccess(true)
	RecordCacheAccess(false)

	var m dto.Metric
	if err := CacheHits.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if m.Counter.GetValue() < 1 {
		t.Error("expected cache hit counter to be incremented")
	}

	if err := CacheMisses.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if m.Counter.GetValue() < 1 {
		t.Error("expected cache miss counter to be incremented")
	}
}

func TestSetCacheSize(t *testing.T) {
	SetCacheSize(42)

	var m dto.Metric
	if err := CacheSize.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if m.Gauge.GetValue() != 42 {
		t.Errorf("cache size gauge = %v, want 42", m.Gauge.GetValue())
	}
}

func TestRecordWorkflowOutcome(t *testing.T) {
	RecordWorkflowOutcome("dns-changelist-submit", true)
	RecordWorkflowOutcome("dns-changelist-submit", false)

	for _, result := range []string{"success", "failure"} {
		counter, err := WorkflowOutcomes.GetMetricWithLabelValues("dns-changelist-submit", result)
		if err != nil {
			t.Fatalf("failed to get metric: %v", err)
		}
		var m dto.Metric
		if err := counter.Write(&m); err != nil {
			t.Fatalf("failed to write metric: %v", err)
		}
		if m.Counter.GetValue() < 1 {
			t.Errorf("expected %s outcome counter to be incremented", result)
		}
	}
}
