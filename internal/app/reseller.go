package app

import (
	"context"

	"github.com/neomorfeo/hostiq/internal/domain"
)

// ResellerService maintains the reseller consumption counters.
type ResellerService struct {
	store domain.ProvisioningStore
}

// NewResellerService creates a service over the given store.
func NewResellerService(store domain.ProvisioningStore) *ResellerService {
	return &ResellerService{store: store}
}

// Limits returns the current and maximum counters for a reseller.
func (s *ResellerService) Limits(ctx context.Context, resellerID int64) (domain.ResellerLimits, error) {
	return s.store.ResellerLimits(ctx, resellerID)
}

// UpdateLimits rewrites the reseller's maximums and recomputes the
// current counters in the same transaction, so the pair is never observed
// inconsistent.
func (s *ResellerService) UpdateLimits(ctx context.Context, resellerID int64, max domain.ResourceCounts) error {
	if _, err := s.store.ResellerLimits(ctx, resellerID); err != nil {
		return err
	}
	return s.store.RunProvisioningMutation(ctx, domain.OpUpdateReseller, func(tx domain.MutationTx) error {
		if err := tx.UpdateResellerMax(ctx, resellerID, max); err != nil {
			return err
		}
		return tx.RecalculateResellerAssignments(ctx, resellerID)
	})
}

// Recalculate recomputes the current counters from the live domain table.
// The recomputation is a pure function of that table, so running it twice
// without intervening mutations yields identical counters.
func (s *ResellerService) Recalculate(ctx context.Context, resellerID int64) error {
	if _, err := s.store.ResellerLimits(ctx, resellerID); err != nil {
		return err
	}
	return s.store.RunProvisioningMutation(ctx, domain.OpUpdateReseller, func(tx domain.MutationTx) error {
		return tx.RecalculateResellerAssignments(ctx, resellerID)
	})
}
