package domain

import "context"

// MutationOp names one logical administrative operation wrapped by the
// mutation transaction coordinator. Extension hooks are registered per op.
type MutationOp string

const (
	OpDeleteCustomer       MutationOp = "customer.delete"
	OpChangeCustomerStatus MutationOp = "customer.change_status"
	OpDeleteAlias          MutationOp = "alias.delete"
	OpApproveAlias         MutationOp = "alias.approve"
	OpRejectAlias          MutationOp = "alias.reject"
	OpDeleteSQLUser        MutationOp = "sql_user.delete"
	OpDeleteSQLDatabase    MutationOp = "sql_database.delete"
	OpUpdateReseller       MutationOp = "reseller.update"
	OpForceRetry           MutationOp = "debugger.force_retry"
	OpCreateEntity         MutationOp = "entity.create"
)

// MutationTx is the write surface available inside one coordinator-managed
// transaction. Every status write in the system goes through it; no
// repository writes a status column outside a transaction.
type MutationTx interface {
	// Status scheduling. The ByDomain/ByAlias forms are cascade writes:
	// they update every matching child row unconditionally, in the same
	// transaction as the parent's own transition.
	ScheduleAccountStatus(ctx context.Context, accountID int64, st Status) error
	ScheduleDomainStatus(ctx context.Context, domainID int64, st Status) error
	ScheduleSubdomainsByDomain(ctx context.Context, domainID int64, st Status) error
	ScheduleAliasStatus(ctx context.Context, aliasID int64, st Status) error
	ScheduleAliasesByDomain(ctx context.Context, domainID int64, st Status) error
	ScheduleSubdomainAliasesByDomain(ctx context.Context, domainID int64, st Status) error
	ScheduleSubdomainAliasesByAlias(ctx context.Context, aliasID int64, st Status) error
	ScheduleDNSByDomain(ctx context.Context, domainID int64, st Status) error
	ScheduleFTPUsersByAccount(ctx context.Context, accountID int64, st Status) error
	ScheduleMailByDomain(ctx context.Context, domainID int64, st Status) error
	ScheduleMailByAlias(ctx context.Context, aliasID int64, st Status) error
	ScheduleHtaccessByDomain(ctx context.Context, domainID int64, st Status) error
	ScheduleCertsByDomain(ctx context.Context, domainID int64, st Status) error
	ScheduleCertsByAlias(ctx context.Context, aliasID int64, st Status) error

	// Mailbox suspension. Soft suspension only switches IMAP/POP off;
	// hard suspension also schedules the mailboxes for the daemon.
	SuspendMailboxes(ctx context.Context, domainID int64, hard bool) error
	ResumeMailboxes(ctx context.Context, domainID int64) error

	// Hard deletes for rows with no daemon-side resources.
	DeleteDomainTraffic(ctx context.Context, domainID int64) error
	DeleteFTPGroup(ctx context.Context, group string) error
	DeleteQuotaEntries(ctx context.Context, name string) error
	DeleteAliasRow(ctx context.Context, aliasID int64) error

	// SQL catalog. These rows are removed outright, never status-flagged.
	SQLDatabase(ctx context.Context, domainID, databaseID int64) (SQLDatabase, error)
	SQLDatabasesByDomain(ctx context.Context, domainID int64) ([]SQLDatabase, error)
	SQLUsersByDatabase(ctx context.Context, databaseID int64) ([]SQLUser, error)
	SQLUserDetails(ctx context.Context, domainID, userID int64) (SQLUserGrant, error)
	CountSQLUserRefs(ctx context.Context, name, host string) (int64, error)
	DeleteSQLUserRow(ctx context.Context, userID int64) error
	DeleteSQLDatabaseRow(ctx context.Context, databaseID int64) error

	// Reseller aggregates.
	UpdateResellerMax(ctx context.Context, resellerID int64, max ResourceCounts) error
	RecalculateResellerAssignments(ctx context.Context, resellerID int64) error
}

// SQLUserGrant is the grant-relevant view of one sql user row.
type SQLUserGrant struct {
	UserID     int64
	DatabaseID int64
	Name       string
	Host       string
	Database   string
}

// MutationHook is an extension callback invoked by the coordinator inside
// the transaction, before or after the operation's own writes. A hook
// error rolls the whole operation back.
type MutationHook func(ctx context.Context, tx MutationTx, op MutationOp) error

// ProvisioningStore is the persistence contract for provisioning
// operations: coordinator-managed mutations plus the read side the
// services need before opening a transaction.
type ProvisioningStore interface {
	RunProvisioningMutation(ctx context.Context, op MutationOp, work func(MutationTx) error) error

	Customer(ctx context.Context, customerID int64) (Account, error)
	MainDomain(ctx context.Context, customerID int64) (HostingDomain, error)
	Domain(ctx context.Context, domainID int64) (HostingDomain, error)
	Alias(ctx context.Context, aliasID int64) (DomainAlias, error)
	ResellerLimits(ctx context.Context, resellerID int64) (ResellerLimits, error)
}

// Sweeper is the reconciliation read/repair surface.
type Sweeper interface {
	// StuckRows returns every row, across all entity tables, whose status
	// is outside the expected set for its table.
	StuckRows(ctx context.Context) ([]StuckRow, error)
	// PendingRequests counts rows in a requestable in-progress status.
	PendingRequests(ctx context.Context) (int, error)
	// ForceRetry rewrites a row's status to tochange so the daemon will
	// re-attempt it. It is deliberately unconditional: the row is stuck
	// precisely because its status is outside the vocabulary.
	ForceRetry(ctx context.Context, kind EntityKind, id string) error
}

// WakeHint is the result of a daemon wake-up. It is a distinct type rather
// than a bool or error so callers cannot mistake "the hint was delivered"
// for "provisioning completed"; the reconciliation sweep is the only
// authoritative completion-recovery path.
type WakeHint struct {
	Delivered bool
}

// DaemonNotifier sends a best-effort wake-up to the provisioning daemon
// after a transaction commits. It carries no payload: the daemon re-scans
// all status columns. Failures are logged by the implementation and must
// never affect the already-committed mutation.
type DaemonNotifier interface {
	Notify(ctx context.Context) WakeHint
}

// TransitionValidator checks an administrative event against a row's
// current status and yields the in-progress status to schedule.
type TransitionValidator interface {
	Apply(ctx context.Context, current Status, event Event) (Status, error)
}

// ServerAdmin performs the physical RDBMS-level work the web tier is
// privileged to do synchronously: dropping databases and revoking access.
// The catalog rows are handled by MutationTx; this port only touches the
// database server itself.
type ServerAdmin interface {
	DropDatabase(ctx context.Context, name string) error
	DropLogin(ctx context.Context, name, host string) error
	RevokeAccess(ctx context.Context, name, host, database string) error
}
