package trace

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"headlessui/internal/modal"
	"headlessui/internal/store"
)

func newRecorded(t *testing.T) (*Observer, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewObserver(tp.Tracer(instrumentationName)), sr
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestObserver_RecordsTransitionSpan(t *testing.T) {
	obs, sr := newRecorded(t)

	obs.OnTransition(store.Transition{
		Widget:  "modal",
		ID:      "ui-modal-1",
		Action:  "open",
		From:    modal.State{Open: false},
		To:      modal.State{Open: true},
		Changed: true,
	})

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name() != "modal.open" {
		t.Errorf("span name = %q, want modal.open", spans[0].Name())
	}
	attrs := attrMap(spans[0].Attributes())
	if got := attrs[KeyID].AsString(); got != "ui-modal-1" {
		t.Errorf("id attribute = %q", got)
	}
	if got := attrs[KeyFrom].AsString(); got != "open=false" {
		t.Errorf("from attribute = %q", got)
	}
	if got := attrs[KeyTo].AsString(); got != "open=true" {
		t.Errorf("to attribute = %q", got)
	}
	if !attrs[KeyChanged].AsBool() {
		t.Error("changed attribute should be true")
	}
}

func TestObserver_NilIsNoop(t *testing.T) {
	var obs *Observer
	obs.OnTransition(store.Transition{Widget: "tabs", Action: "next"})
	if obs.WithContext(context.Background()) != nil {
		t.Error("WithContext on nil should stay nil")
	}
}

func TestObserver_WithContextParentsSpans(t *testing.T) {
	obs, sr := newRecorded(t)
	ctx, parent := obs.tracer.Start(context.Background(), "session")

	obs.WithContext(ctx).OnTransition(store.Transition{Widget: "tabs", Action: "next"})
	parent.End()

	var child sdktrace.ReadOnlySpan
	for _, s := range sr.Ended() {
		if s.Name() == "tabs.next" {
			child = s
		}
	}
	if child == nil {
		t.Fatal("expected tabs.next span")
	}
	if child.Parent().SpanID() != parent.SpanContext().SpanID() {
		t.Error("transition span should be a child of the context span")
	}
}

func TestSpanName(t *testing.T) {
	if got := SpanName(store.Transition{Action: "open"}); got != "open" {
		t.Errorf("SpanName without widget = %q", got)
	}
	if got := SpanName(store.Transition{Widget: "dropdown", Action: "toggle"}); got != "dropdown.toggle" {
		t.Errorf("SpanName = %q", got)
	}
}

func TestDescribe(t *testing.T) {
	if got := describe(nil); got != "" {
		t.Errorf("describe(nil) = %q", got)
	}
	if got := describe(struct{ N int }{3}); got != "{N:3}" {
		t.Errorf("describe(struct) = %q", got)
	}
}

func TestObserver_WithContextOutlivesCancellation(t *testing.T) {
	obs, sr := newRecorded(t)
	ctx, parent := obs.tracer.Start(context.Background(), "session")
	ctx, cancel := context.WithCancel(ctx)
	child := obs.WithContext(ctx)
	cancel()
	parent.End()

	child.OnTransition(store.Transition{Widget: "modal", Action: "close"})

	var got sdktrace.ReadOnlySpan
	for _, s := range sr.Ended() {
		if s.Name() == "modal.close" {
			got = s
		}
	}
	if got == nil {
		t.Fatal("expected modal.close span")
	}
	if got.Parent().TraceID() != parent.SpanContext().TraceID() {
		t.Error("span should stay in the parent trace after ctx is cancelled")
	}
}

func TestObserver_WithoutParentStartsRootSpan(t *testing.T) {
	obs, sr := newRecorded(t)
	obs.OnTransition(store.Transition{Widget: "tabs", Action: "next"})

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Parent().IsValid() {
		t.Error("span without a parent context should be a root span")
	}
}
