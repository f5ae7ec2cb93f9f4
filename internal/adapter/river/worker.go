package river

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riverqueue/river"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/neomorfeo/hostiq/internal/domain"
)

// SweepJobArgs is the (empty) payload of a reconciliation sweep run; the
// sweep always scans every entity table.
type SweepJobArgs struct{}

// Kind returns the unique job type identifier used by River's job routing.
func (SweepJobArgs) Kind() string { return "reconciliation.sweep" }

// SweepWorker runs the reconciliation sweep: it logs every stuck row for
// the operator and records the pending-request backlog as a gauge.
type SweepWorker struct {
	river.WorkerDefaults[SweepJobArgs]

	sweeper domain.Sweeper
	pending metric.Int64Gauge
}

// NewSweepWorker creates a worker over the given sweeper.
func NewSweepWorker(sweeper domain.Sweeper) *SweepWorker {
	meter := otel.Meter("github.com/neomorfeo/hostiq/internal/adapter/river")
	pending, err := meter.Int64Gauge("hostiq.provisioning.pending_requests",
		metric.WithDescription("Rows awaiting daemon pickup across all entity tables"))
	if err != nil {
		otel.Handle(err)
	}
	return &SweepWorker{sweeper: sweeper, pending: pending}
}

// Work processes a single sweep job.
func (w *SweepWorker) Work(ctx context.Context, job *river.Job[SweepJobArgs]) error {
	stuck, err := w.sweeper.StuckRows(ctx)
	if err != nil {
		return fmt.Errorf("scanning for stuck rows: %w", err)
	}
	for _, row := range stuck {
		slog.WarnContext(ctx, "stuck provisioning row",
			"kind", string(row.Kind),
			"id", row.ID,
			"name", row.Name,
			"status", string(row.Status),
			"job_id", job.ID,
		)
	}

	pending, err := w.sweeper.PendingRequests(ctx)
	if err != nil {
		return fmt.Errorf("counting pending requests: %w", err)
	}
	w.pending.Record(ctx, int64(pending))

	slog.InfoContext(ctx, "reconciliation sweep complete",
		"stuck", len(stuck),
		"pending", pending,
		"job_id", job.ID,
	)
	return nil
}
