package app

import (
	"context"

	"github.com/neomorfeo/hostiq/internal/domain"
)

// AliasService handles domain alias lifecycle: deletion of live aliases
// and the approval flow for ordered ones.
type AliasService struct {
	store     domain.ProvisioningStore
	notifier  domain.DaemonNotifier
	validator domain.TransitionValidator
}

// NewAliasService creates a service with the given adapters.
func NewAliasService(store domain.ProvisioningStore, notifier domain.DaemonNotifier, validator domain.TransitionValidator) *AliasService {
	return &AliasService{store: store, notifier: notifier, validator: validator}
}

// Delete schedules an alias and its descendants (subdomain aliases, their
// mailboxes, their certificates) for deletion and recomputes the owning
// reseller's counters in the same transaction.
func (s *AliasService) Delete(ctx context.Context, aliasID int64) error {
	alias, err := s.store.Alias(ctx, aliasID)
	if err != nil {
		return err
	}
	st, err := s.validator.Apply(ctx, alias.Status, domain.EventDelete)
	if err != nil {
		return err
	}
	dom, err := s.store.Domain(ctx, alias.DomainID)
	if err != nil {
		return err
	}
	cust, err := s.store.Customer(ctx, dom.AccountID)
	if err != nil {
		return err
	}

	err = s.store.RunProvisioningMutation(ctx, domain.OpDeleteAlias, func(tx domain.MutationTx) error {
		if err := tx.ScheduleCertsByAlias(ctx, alias.ID, st); err != nil {
			return err
		}
		if err := tx.ScheduleMailByAlias(ctx, alias.ID, st); err != nil {
			return err
		}
		if err := tx.ScheduleSubdomainAliasesByAlias(ctx, alias.ID, st); err != nil {
			return err
		}
		if err := tx.ScheduleAliasStatus(ctx, alias.ID, st); err != nil {
			return err
		}
		return tx.RecalculateResellerAssignments(ctx, cust.CreatedBy)
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(ctx)
	return nil
}

// Approve moves an ordered alias into provisioning.
func (s *AliasService) Approve(ctx context.Context, aliasID int64) error {
	alias, err := s.store.Alias(ctx, aliasID)
	if err != nil {
		return err
	}
	st, err := s.validator.Apply(ctx, alias.Status, domain.EventApprove)
	if err != nil {
		return err
	}

	err = s.store.RunProvisioningMutation(ctx, domain.OpApproveAlias, func(tx domain.MutationTx) error {
		return tx.ScheduleAliasStatus(ctx, alias.ID, st)
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(ctx)
	return nil
}

// Reject removes an ordered alias outright. The daemon never provisioned
// anything for it, so the row is deleted and no wake-up is sent.
func (s *AliasService) Reject(ctx context.Context, aliasID int64) error {
	alias, err := s.store.Alias(ctx, aliasID)
	if err != nil {
		return err
	}
	if alias.Status != domain.StatusOrdered {
		return domain.ErrAliasNotOrdered
	}

	return s.store.RunProvisioningMutation(ctx, domain.OpRejectAlias, func(tx domain.MutationTx) error {
		return tx.DeleteAliasRow(ctx, alias.ID)
	})
}
