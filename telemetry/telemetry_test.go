package telemetry

import (
	"context"
	"testing"
)

func TestEnabled(t *testing.T) {
	t.Setenv(EndpointVar, "")
	if Enabled() {
		t.Error("enabled: expected tracing disabled without endpoint")
	}

	t.Setenv(EndpointVar, "http://localhost:4318")
	if !Enabled() {
		t.Error("enabled: expected tracing enabled with endpoint")
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "episode")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Error("noopTracer: expected invalid span context")
	}
	if span.IsRecording() {
		t.Error("noopTracer: expected span not to record")
	}
}
