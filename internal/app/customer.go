package app

import (
	"context"

	"github.com/neomorfeo/hostiq/internal/domain"
)

// CustomerService handles customer lifecycle operations: deletion and
// activation/deactivation, both fanning out to the customer's whole
// entity subtree in one transaction.
type CustomerService struct {
	store     domain.ProvisioningStore
	sql       *SQLService
	notifier  domain.DaemonNotifier
	validator domain.TransitionValidator

	// hardMailSuspension schedules suspended mailboxes for the daemon so
	// SMTP delivery stops too, instead of only switching IMAP/POP off.
	hardMailSuspension bool
}

// NewCustomerService creates a service with the given adapters.
func NewCustomerService(store domain.ProvisioningStore, sql *SQLService, notifier domain.DaemonNotifier, validator domain.TransitionValidator, hardMailSuspension bool) *CustomerService {
	return &CustomerService{
		store:              store,
		sql:                sql,
		notifier:           notifier,
		validator:          validator,
		hardMailSuspension: hardMailSuspension,
	}
}

// Delete schedules a customer and every entity under it for deletion.
// SQL objects are torn down synchronously first; everything else is
// flagged todelete in a single transaction, leaves before the domain and
// the account itself, with the reseller counters recomputed in the same
// transaction. The daemon is woken once the commit is through.
func (s *CustomerService) Delete(ctx context.Context, customerID int64) error {
	cust, err := s.store.Customer(ctx, customerID)
	if err != nil {
		return err
	}
	dom, err := s.store.MainDomain(ctx, cust.ID)
	if err != nil {
		return err
	}
	st, err := s.validator.Apply(ctx, cust.Status, domain.EventDelete)
	if err != nil {
		return err
	}

	if err := s.sql.DeleteAllForDomain(ctx, dom.ID); err != nil {
		return err
	}

	err = s.store.RunProvisioningMutation(ctx, domain.OpDeleteCustomer, func(tx domain.MutationTx) error {
		if err := tx.DeleteDomainTraffic(ctx, dom.ID); err != nil {
			return err
		}
		if err := tx.DeleteFTPGroup(ctx, cust.Name); err != nil {
			return err
		}
		if err := tx.DeleteQuotaEntries(ctx, cust.Name); err != nil {
			return err
		}
		if err := tx.ScheduleFTPUsersByAccount(ctx, cust.ID, st); err != nil {
			return err
		}
		if err := tx.ScheduleMailByDomain(ctx, dom.ID, st); err != nil {
			return err
		}
		if err := tx.ScheduleHtaccessByDomain(ctx, dom.ID, st); err != nil {
			return err
		}
		if err := tx.ScheduleDNSByDomain(ctx, dom.ID, st); err != nil {
			return err
		}
		if err := tx.ScheduleCertsByDomain(ctx, dom.ID, st); err != nil {
			return err
		}
		if err := tx.ScheduleSubdomainAliasesByDomain(ctx, dom.ID, st); err != nil {
			return err
		}
		if err := tx.ScheduleAliasesByDomain(ctx, dom.ID, st); err != nil {
			return err
		}
		if err := tx.ScheduleSubdomainsByDomain(ctx, dom.ID, st); err != nil {
			return err
		}
		if err := tx.ScheduleDomainStatus(ctx, dom.ID, st); err != nil {
			return err
		}
		if err := tx.ScheduleAccountStatus(ctx, cust.ID, st); err != nil {
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

// Deactivate schedules the customer's subtree for disablement.
func (s *CustomerService) Deactivate(ctx context.Context, customerID int64) error {
	return s.changeStatus(ctx, customerID, domain.EventDisable)
}

// Activate schedules a disabled customer's subtree for re-enablement.
func (s *CustomerService) Activate(ctx context.Context, customerID int64) error {
	return s.changeStatus(ctx, customerID, domain.EventEnable)
}

func (s *CustomerService) changeStatus(ctx context.Context, customerID int64, event domain.Event) error {
	cust, err := s.store.Customer(ctx, customerID)
	if err != nil {
		return err
	}
	dom, err := s.store.MainDomain(ctx, cust.ID)
	if err != nil {
		return err
	}
	st, err := s.validator.Apply(ctx, dom.Status, event)
	if err != nil {
		return err
	}

	err = s.store.RunProvisioningMutation(ctx, domain.OpChangeCustomerStatus, func(tx domain.MutationTx) error {
		// Mail is handled apart from the plain cascade: suspension may be
		// soft (po_active only), and resuming must only reschedule the
		// mailboxes the disablement touched.
		if event == domain.EventDisable {
			if err := tx.SuspendMailboxes(ctx, dom.ID, s.hardMailSuspension); err != nil {
				return err
			}
		} else {
			if err := tx.ResumeMailboxes(ctx, dom.ID); err != nil {
				return err
			}
		}
		if err := tx.ScheduleFTPUsersByAccount(ctx, cust.ID, st); err != nil {
			return err
		}
		if err := tx.ScheduleHtaccessByDomain(ctx, dom.ID, st); err != nil {
			return err
		}
		if err := tx.ScheduleDNSByDomain(ctx, dom.ID, st); err != nil {
			return err
		}
		if err := tx.ScheduleSubdomainAliasesByDomain(ctx, dom.ID, st); err != nil {
			return err
		}
		if err := tx.ScheduleAliasesByDomain(ctx, dom.ID, st); err != nil {
			return err
		}
		if err := tx.ScheduleSubdomainsByDomain(ctx, dom.ID, st); err != nil {
			return err
		}
		return tx.ScheduleDomainStatus(ctx, dom.ID, st)
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(ctx)
	return nil
}
