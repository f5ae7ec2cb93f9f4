package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/neomorfeo/hostiq/internal/domain"
)

const tracerName = "github.com/neomorfeo/hostiq/internal/adapter/otel"

// TracingNotifier wraps a domain.DaemonNotifier with OpenTelemetry tracing.
type TracingNotifier struct {
	next   domain.DaemonNotifier
	tracer trace.Tracer
}

// Compile-time check: TracingNotifier implements domain.DaemonNotifier.
var _ domain.DaemonNotifier = (*TracingNotifier)(nil)

// NewTracingNotifier creates a tracing decorator around the given notifier.
func NewTracingNotifier(next domain.DaemonNotifier) *TracingNotifier {
	return &TracingNotifier{
		next:   next,
		tracer: otel.Tracer(tracerName),
	}
}

func (n *TracingNotifier) Notify(ctx context.Context) domain.WakeHint {
	ctx, span := n.tracer.Start(ctx, "DaemonNotifier.Notify")
	defer span.End()

	hint := n.next.Notify(ctx)
	span.SetAttributes(attribute.Bool("daemon.delivered", hint.Delivered))
	return hint
}
