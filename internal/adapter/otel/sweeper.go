package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/neomorfeo/hostiq/internal/domain"
)

// TracingSweeper wraps a domain.Sweeper with OpenTelemetry tracing. Each
// method creates a span with semantic attributes and records errors.
type TracingSweeper struct {
	next   domain.Sweeper
	tracer trace.Tracer
}

// Compile-time check: TracingSweeper implements domain.Sweeper.
var _ domain.Sweeper = (*TracingSweeper)(nil)

// NewTracingSweeper creates a tracing decorator around the given sweeper.
func NewTracingSweeper(next domain.Sweeper) *TracingSweeper {
	return &TracingSweeper{
		next:   next,
		tracer: otel.Tracer(tracerName),
	}
}

func (s *TracingSweeper) StuckRows(ctx context.Context) ([]domain.StuckRow, error) {
	ctx, span := s.tracer.Start(ctx, "Sweeper.StuckRows")
	defer span.End()

	rows, err := s.next.StuckRows(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("result.count", len(rows)))
	}
	return rows, err
}

func (s *TracingSweeper) PendingRequests(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "Sweeper.PendingRequests")
	defer span.End()

	n, err := s.next.PendingRequests(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("result.count", n))
	}
	return n, err
}

func (s *TracingSweeper) ForceRetry(ctx context.Context, kind domain.EntityKind, id string) error {
	ctx, span := s.tracer.Start(ctx, "Sweeper.ForceRetry",
		trace.WithAttributes(
			attribute.String("entity.kind", string(kind)),
			attribute.String("entity.id", id),
		),
	)
	defer span.End()

	err := s.next.ForceRetry(ctx, kind, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
