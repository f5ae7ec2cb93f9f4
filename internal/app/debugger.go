package app

import (
	"context"

	"github.com/neomorfeo/hostiq/internal/domain"
)

// DebuggerService is the operator-facing reconciliation surface: it
// exposes what the sweep found and the two manual recovery actions.
type DebuggerService struct {
	sweeper  domain.Sweeper
	notifier domain.DaemonNotifier
}

// NewDebuggerService creates a service with the given adapters.
func NewDebuggerService(sweeper domain.Sweeper, notifier domain.DaemonNotifier) *DebuggerService {
	return &DebuggerService{sweeper: sweeper, notifier: notifier}
}

// StuckRows lists every row whose status is outside the expected set for
// its table.
func (s *DebuggerService) StuckRows(ctx context.Context) ([]domain.StuckRow, error) {
	return s.sweeper.StuckRows(ctx)
}

// PendingRequests counts rows awaiting daemon pickup.
func (s *DebuggerService) PendingRequests(ctx context.Context) (int, error) {
	return s.sweeper.PendingRequests(ctx)
}

// ForceRetry rewrites one stuck row's status to tochange. The row then
// shows up as a pending request; waking the daemon is a separate action.
func (s *DebuggerService) ForceRetry(ctx context.Context, kind domain.EntityKind, id string) error {
	return s.sweeper.ForceRetry(ctx, kind, id)
}

// RunNow wakes the daemon immediately. With nothing pending there is
// nothing to run and the wake-up is refused.
func (s *DebuggerService) RunNow(ctx context.Context) (domain.WakeHint, error) {
	n, err := s.sweeper.PendingRequests(ctx)
	if err != nil {
		return domain.WakeHint{}, err
	}
	if n == 0 {
		return domain.WakeHint{}, domain.ErrNoPendingRequests
	}
	return s.notifier.Notify(ctx), nil
}
