// Package trace turns widget transitions into OpenTelemetry spans.
//
// Each adapter action produces one short span named "<widget>.<action>"
// carrying the widget id, the states before and after, and whether the
// action changed anything. Export is enabled by OTEL_EXPORTER_OTLP_ENDPOINT.
package trace

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"headlessui/internal/store"
)

const instrumentationName = "headlessui/widgets"

// Attribute keys set on transition spans.
const (
	KeyWidget  = attribute.Key("headlessui.widget")
	KeyID      = attribute.Key("headlessui.widget.id")
	KeyAction  = attribute.Key("headlessui.action")
	KeyFrom    = attribute.Key("headlessui.state.from")
	KeyTo      = attribute.Key("headlessui.state.to")
	KeyChanged = attribute.Key("headlessui.state.changed")
)

// Observer records transitions as spans.
type Observer struct {
	tracer oteltrace.Tracer
	parent oteltrace.SpanContext
}

// Ensure Observer implements store.Observer.
var _ store.Observer = (*Observer)(nil)

// NewObserver creates an observer that starts spans on tracer.
func NewObserver(tracer oteltrace.Tracer) *Observer {
	return &Observer{tracer: tracer}
}

// WithContext returns a copy whose spans are children of the span in ctx.
// Only the span context is kept, not ctx itself.
func (o *Observer) WithContext(ctx context.Context) *Observer {
	if o == nil {
		return nil
	}
	cp := *o
	cp.parent = oteltrace.SpanContextFromContext(ctx)
	return &cp
}

// OnTransition implements store.Observer. A nil Observer records nothing.
func (o *Observer) OnTransition(t store.Transition) {
	if o == nil || o.tracer == nil {
		return
	}
	ctx := context.Background()
	if o.parent.IsValid() {
		ctx = oteltrace.ContextWithSpanContext(ctx, o.parent)
	}
	_, span := o.tracer.Start(ctx, SpanName(t))
	span.SetAttributes(
		KeyWidget.String(t.Widget),
		KeyID.String(t.ID),
		KeyAction.String(t.Action),
		KeyFrom.String(describe(t.From)),
		KeyTo.String(describe(t.To)),
		KeyChanged.Bool(t.Changed),
	)
	span.End()
}

// SpanName returns the span name for t, e.g. "dropdown.highlight_next".
func SpanName(t store.Transition) string {
	if t.Widget == "" {
		return t.Action
	}
	return t.Widget + "." + t.Action
}

func describe(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%+v", v)
}
