package sqlite_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/neomorfeo/hostiq/internal/adapter/sqlite"
	"github.com/neomorfeo/hostiq/internal/domain"
)

// newTestStore creates an in-memory SQLite store for testing.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// fixture holds the ids of one fully populated customer subtree.
type fixture struct {
	resellerID int64
	customerID int64
	domainID   int64
	subID      int64
	aliasID    int64
	alssubID   int64

	dnsID        int64
	mailDomID    int64
	mailAliasID  int64
	mailAlssubID int64
	htID         int64
	htgID        int64
	htuID        int64

	certDmnID    int64
	certAlsID    int64
	certSubID    int64
	certAlssubID int64

	sqldID  int64
	sqlu1ID int64
	sqlu2ID int64
}

func mustID(t *testing.T) func(id int64, err error) int64 {
	t.Helper()
	return func(id int64, err error) int64 {
		t.Helper()
		if err != nil {
			t.Fatalf("seeding fixture: %v", err)
		}
		return id
	}
}

// seedCustomer populates a reseller with one customer carrying every
// dependent entity kind, all in the ok status.
func seedCustomer(t *testing.T, s *sqlite.Store) fixture {
	t.Helper()
	ctx := context.Background()
	var f fixture

	f.resellerID = mustID(t)(s.CreateAccount(ctx, domain.Account{
		Name: "res1", Type: domain.AccountReseller, CreatedBy: 1, Status: domain.StatusOK,
	}))
	if err := s.EnsureResellerProps(ctx, f.resellerID, domain.ResourceCounts{Domains: 50}); err != nil {
		t.Fatalf("seeding reseller props: %v", err)
	}

	f.customerID = mustID(t)(s.CreateAccount(ctx, domain.Account{
		Name: "cust1", Type: domain.AccountUser, CreatedBy: f.resellerID, Status: domain.StatusOK,
	}))
	f.domainID = mustID(t)(s.CreateDomain(ctx, domain.HostingDomain{
		Name: "example.com", AccountID: f.customerID, Status: domain.StatusOK,
		Limits: domain.DomainLimits{Subdomains: 5, Aliases: 2, Mailboxes: 10, FTPUsers: 2, SQLDatabases: 3, SQLUsers: 6, Disk: 1024, Traffic: 4096},
	}))
	f.subID = mustID(t)(s.CreateSubdomain(ctx, domain.Subdomain{
		DomainID: f.domainID, Name: "www", Status: domain.StatusOK,
	}))
	f.aliasID = mustID(t)(s.CreateAlias(ctx, domain.DomainAlias{
		DomainID: f.domainID, Name: "example.net", Status: domain.StatusOK,
	}))
	f.alssubID = mustID(t)(s.CreateSubdomainAlias(ctx, domain.SubdomainAlias{
		AliasID: f.aliasID, Name: "mail", Status: domain.StatusOK,
	}))
	f.dnsID = mustID(t)(s.CreateDNSRecord(ctx, domain.DNSRecord{
		DomainID: f.domainID, Name: "ftp.example.com.", Data: "192.0.2.10", Status: domain.StatusOK,
	}))

	f.mailDomID = mustID(t)(s.CreateMailAccount(ctx, domain.MailAccount{
		DomainID: f.domainID, Address: "info@example.com",
		OwnerKind: domain.MailOwnerDomain, POActive: true, Status: domain.StatusOK,
	}))
	f.mailAliasID = mustID(t)(s.CreateMailAccount(ctx, domain.MailAccount{
		DomainID: f.domainID, SubID: f.aliasID, Address: "info@example.net",
		OwnerKind: domain.MailOwnerAlias, POActive: true, Status: domain.StatusOK,
	}))
	f.mailAlssubID = mustID(t)(s.CreateMailAccount(ctx, domain.MailAccount{
		DomainID: f.domainID, SubID: f.alssubID, Address: "info@mail.example.net",
		OwnerKind: domain.MailOwnerSubdomainAlias, POActive: true, Status: domain.StatusOK,
	}))

	if err := s.CreateFTPUser(ctx, domain.FTPUser{
		UserID: "cust1-ftp", AccountID: f.customerID, Status: domain.StatusOK,
	}); err != nil {
		t.Fatalf("seeding ftp user: %v", err)
	}
	if err := s.CreateFTPGroup(ctx, "cust1", "cust1-ftp"); err != nil {
		t.Fatalf("seeding ftp group: %v", err)
	}
	if err := s.AddQuotaEntries(ctx, "cust1", 1<<30); err != nil {
		t.Fatalf("seeding quota: %v", err)
	}
	if err := s.AddDomainTraffic(ctx, f.domainID, 1700000000, 2048); err != nil {
		t.Fatalf("seeding traffic: %v", err)
	}

	f.htID = mustID(t)(s.CreateHtaccessRule(ctx, domain.HtaccessRule{
		DomainID: f.domainID, AuthName: "private", Status: domain.StatusOK,
	}))
	f.htgID = mustID(t)(s.CreateHtaccessGroup(ctx, domain.HtaccessGroup{
		DomainID: f.domainID, Group: "staff", Status: domain.StatusOK,
	}))
	f.htuID = mustID(t)(s.CreateHtaccessUser(ctx, domain.HtaccessUser{
		DomainID: f.domainID, Name: "alice", Status: domain.StatusOK,
	}))

	f.certDmnID = mustID(t)(s.CreateSSLCert(ctx, domain.SSLCert{
		OwnerID: f.domainID, OwnerKind: domain.CertOwnerDomain, Status: domain.StatusOK,
	}))
	f.certAlsID = mustID(t)(s.CreateSSLCert(ctx, domain.SSLCert{
		OwnerID: f.aliasID, OwnerKind: domain.CertOwnerAlias, Status: domain.StatusOK,
	}))
	f.certSubID = mustID(t)(s.CreateSSLCert(ctx, domain.SSLCert{
		OwnerID: f.subID, OwnerKind: domain.CertOwnerSubdomain, Status: domain.StatusOK,
	}))
	f.certAlssubID = mustID(t)(s.CreateSSLCert(ctx, domain.SSLCert{
		OwnerID: f.alssubID, OwnerKind: domain.CertOwnerSubdomainAlias, Status: domain.StatusOK,
	}))

	f.sqldID = mustID(t)(s.CreateSQLDatabase(ctx, domain.SQLDatabase{
		DomainID: f.domainID, Name: "cust1_shop",
	}))
	f.sqlu1ID = mustID(t)(s.CreateSQLUser(ctx, domain.SQLUser{
		DatabaseID: f.sqldID, Name: "cust1_web", Host: "localhost",
	}))
	f.sqlu2ID = mustID(t)(s.CreateSQLUser(ctx, domain.SQLUser{
		DatabaseID: f.sqldID, Name: "cust1_batch", Host: "localhost",
	}))

	return f
}

// statusOf reads one status column directly; tests also use it to
// simulate daemon-side writes via store.DB().
func statusOf(t *testing.T, s *sqlite.Store, kind domain.EntityKind, id int64) domain.Status {
	t.Helper()
	st, err := s.EntityStatus(context.Background(), kind, strconv.FormatInt(id, 10))
	if err != nil {
		t.Fatalf("reading %s %d status: %v", kind, id, err)
	}
	return st
}

func setStatus(t *testing.T, s *sqlite.Store, table, column, idColumn string, id any, status string) {
	t.Helper()
	if _, err := s.DB().Exec("UPDATE "+table+" SET "+column+" = ? WHERE "+idColumn+" = ?", status, id); err != nil {
		t.Fatalf("setting %s status: %v", table, err)
	}
}

func TestRunProvisioningMutation_RollbackOnWorkError(t *testing.T) {
	store := newTestStore(t)
	f := seedCustomer(t, store)
	ctx := context.Background()

	boom := errors.New("boom")
	err := store.RunProvisioningMutation(ctx, domain.OpDeleteCustomer, func(tx domain.MutationTx) error {
		if err := tx.ScheduleDomainStatus(ctx, f.domainID, domain.StatusToDelete); err != nil {
			return err
		}
		if err := tx.ScheduleSubdomainsByDomain(ctx, f.domainID, domain.StatusToDelete); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}

	// Nothing from the failed transaction may be visible.
	if st := statusOf(t, store, domain.KindDomain, f.domainID); st != domain.StatusOK {
		t.Errorf("domain status = %q, want %q", st, domain.StatusOK)
	}
	if st := statusOf(t, store, domain.KindSubdomain, f.subID); st != domain.StatusOK {
		t.Errorf("subdomain status = %q, want %q", st, domain.StatusOK)
	}
}

func TestRunProvisioningMutation_HookErrorRollsBack(t *testing.T) {
	store := newTestStore(t)
	f := seedCustomer(t, store)
	ctx := context.Background()

	hookErr := errors.New("plugin veto")
	store.After(domain.OpDeleteAlias, func(ctx context.Context, tx domain.MutationTx, op domain.MutationOp) error {
		return hookErr
	})

	err := store.RunProvisioningMutation(ctx, domain.OpDeleteAlias, func(tx domain.MutationTx) error {
		return tx.ScheduleAliasStatus(ctx, f.aliasID, domain.StatusToDelete)
	})
	if !errors.Is(err, hookErr) {
		t.Fatalf("expected hook error, got %v", err)
	}
	if st := statusOf(t, store, domain.KindAlias, f.aliasID); st != domain.StatusOK {
		t.Errorf("alias status = %q, want %q", st, domain.StatusOK)
	}
}

func TestHooks_RunInsideTransaction(t *testing.T) {
	store := newTestStore(t)
	f := seedCustomer(t, store)
	ctx := context.Background()

	var order []string
	store.Before(domain.OpApproveAlias, func(ctx context.Context, tx domain.MutationTx, op domain.MutationOp) error {
		order = append(order, "before")
		return nil
	})
	store.After(domain.OpApproveAlias, func(ctx context.Context, tx domain.MutationTx, op domain.MutationOp) error {
		order = append(order, "after")
		return nil
	})

	err := store.RunProvisioningMutation(ctx, domain.OpApproveAlias, func(tx domain.MutationTx) error {
		order = append(order, "work")
		return tx.ScheduleAliasStatus(ctx, f.aliasID, domain.StatusToChange)
	})
	if err != nil {
		t.Fatalf("mutation failed: %v", err)
	}

	want := []string{"before", "work", "after"}
	if len(order) != len(want) {
		t.Fatalf("hook order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("hook order = %v, want %v", order, want)
		}
	}
	if st := statusOf(t, store, domain.KindAlias, f.aliasID); st != domain.StatusToChange {
		t.Errorf("alias status = %q, want %q", st, domain.StatusToChange)
	}
}

func TestScheduleMailByAlias_LeavesDomainMailAlone(t *testing.T) {
	store := newTestStore(t)
	f := seedCustomer(t, store)
	ctx := context.Background()

	err := store.RunProvisioningMutation(ctx, domain.OpDeleteAlias, func(tx domain.MutationTx) error {
		return tx.ScheduleMailByAlias(ctx, f.aliasID, domain.StatusToDelete)
	})
	if err != nil {
		t.Fatalf("mutation failed: %v", err)
	}

	if st := statusOf(t, store, domain.KindMail, f.mailAliasID); st != domain.StatusToDelete {
		t.Errorf("alias mail = %q, want todelete", st)
	}
	if st := statusOf(t, store, domain.KindMail, f.mailAlssubID); st != domain.StatusToDelete {
		t.Errorf("subdomain alias mail = %q, want todelete", st)
	}
	if st := statusOf(t, store, domain.KindMail, f.mailDomID); st != domain.StatusOK {
		t.Errorf("domain mail = %q, want ok", st)
	}
}

func TestScheduleCertsByDomain_AllOwnerKinds(t *testing.T) {
	store := newTestStore(t)
	f := seedCustomer(t, store)
	ctx := context.Background()

	err := store.RunProvisioningMutation(ctx, domain.OpDeleteCustomer, func(tx domain.MutationTx) error {
		return tx.ScheduleCertsByDomain(ctx, f.domainID, domain.StatusToDelete)
	})
	if err != nil {
		t.Fatalf("mutation failed: %v", err)
	}

	for _, certID := range []int64{f.certDmnID, f.certAlsID, f.certSubID, f.certAlssubID} {
		var st string
		if err := store.DB().QueryRow(`SELECT status FROM ssl_certs WHERE cert_id = ?`, certID).Scan(&st); err != nil {
			t.Fatalf("reading cert %d: %v", certID, err)
		}
		if st != string(domain.StatusToDelete) {
			t.Errorf("cert %d status = %q, want todelete", certID, st)
		}
	}
}

func TestSuspendMailboxes_SoftOnlyTogglesPO(t *testing.T) {
	store := newTestStore(t)
	f := seedCustomer(t, store)
	ctx := context.Background()

	err := store.RunProvisioningMutation(ctx, domain.OpChangeCustomerStatus, func(tx domain.MutationTx) error {
		return tx.SuspendMailboxes(ctx, f.domainID, false)
	})
	if err != nil {
		t.Fatalf("mutation failed: %v", err)
	}

	var po, st string
	if err := store.DB().QueryRow(`SELECT po_active, status FROM mail_users WHERE mail_id = ?`, f.mailDomID).Scan(&po, &st); err != nil {
		t.Fatalf("reading mail: %v", err)
	}
	if po != "no" {
		t.Errorf("po_active = %q, want no", po)
	}
	if st != string(domain.StatusOK) {
		t.Errorf("status = %q, want ok (soft suspension)", st)
	}
}

func TestSuspendMailboxes_HardSchedulesDaemon(t *testing.T) {
	store := newTestStore(t)
	f := seedCustomer(t, store)
	ctx := context.Background()

	err := store.RunProvisioningMutation(ctx, domain.OpChangeCustomerStatus, func(tx domain.MutationTx) error {
		return tx.SuspendMailboxes(ctx, f.domainID, true)
	})
	if err != nil {
		t.Fatalf("mutation failed: %v", err)
	}

	var po, st string
	if err := store.DB().QueryRow(`SELECT po_active, status FROM mail_users WHERE mail_id = ?`, f.mailDomID).Scan(&po, &st); err != nil {
		t.Fatalf("reading mail: %v", err)
	}
	if po != "no" {
		t.Errorf("po_active = %q, want no", po)
	}
	if st != string(domain.StatusToDisable) {
		t.Errorf("status = %q, want todisable (hard suspension)", st)
	}
}

func TestResumeMailboxes_RestoresDisabledOnly(t *testing.T) {
	store := newTestStore(t)
	f := seedCustomer(t, store)
	ctx := context.Background()

	// Daemon has converged the domain mailbox to disabled; the alias
	// mailbox stayed ok with IMAP/POP switched off.
	setStatus(t, store, "mail_users", "status", "mail_id", f.mailDomID, string(domain.StatusDisabled))
	if _, err := store.DB().Exec(`UPDATE mail_users SET po_active = 'no' WHERE domain_id = ?`, f.domainID); err != nil {
		t.Fatalf("preparing mail rows: %v", err)
	}

	err := store.RunProvisioningMutation(ctx, domain.OpChangeCustomerStatus, func(tx domain.MutationTx) error {
		return tx.ResumeMailboxes(ctx, f.domainID)
	})
	if err != nil {
		t.Fatalf("mutation failed: %v", err)
	}

	var po, st string
	if err := store.DB().QueryRow(`SELECT po_active, status FROM mail_users WHERE mail_id = ?`, f.mailDomID).Scan(&po, &st); err != nil {
		t.Fatalf("reading mail: %v", err)
	}
	if st != string(domain.StatusToEnable) {
		t.Errorf("disabled mailbox status = %q, want toenable", st)
	}
	if po != "yes" {
		t.Errorf("disabled mailbox po_active = %q, want yes", po)
	}

	if err := store.DB().QueryRow(`SELECT po_active, status FROM mail_users WHERE mail_id = ?`, f.mailAliasID).Scan(&po, &st); err != nil {
		t.Fatalf("reading mail: %v", err)
	}
	if st != string(domain.StatusOK) {
		t.Errorf("ok mailbox status = %q, want ok", st)
	}
	if po != "yes" {
		t.Errorf("ok mailbox po_active = %q, want yes", po)
	}
}

func TestStuckRows_SurfacesErrorStatuses(t *testing.T) {
	store := newTestStore(t)
	f := seedCustomer(t, store)
	ctx := context.Background()

	// The daemon left an error message behind on one mailbox; an ordered
	// alias and a toadd subdomain are legitimate states.
	setStatus(t, store, "mail_users", "status", "mail_id", f.mailDomID, "error: disk full")
	setStatus(t, store, "domain_aliases", "alias_status", "alias_id", f.aliasID, string(domain.StatusOrdered))
	setStatus(t, store, "subdomain", "subdomain_status", "subdomain_id", f.subID, string(domain.StatusToAdd))

	stuck, err := store.StuckRows(ctx)
	if err != nil {
		t.Fatalf("StuckRows failed: %v", err)
	}
	if len(stuck) != 1 {
		t.Fatalf("stuck rows = %d, want 1 (%v)", len(stuck), stuck)
	}
	row := stuck[0]
	if row.Kind != domain.KindMail {
		t.Errorf("kind = %q, want mail", row.Kind)
	}
	if row.ID != strconv.FormatInt(f.mailDomID, 10) {
		t.Errorf("id = %q, want %d", row.ID, f.mailDomID)
	}
	if row.Status != "error: disk full" {
		t.Errorf("status = %q, want the daemon error", row.Status)
	}
}

func TestStuckRows_OrderedFTPIsStuck(t *testing.T) {
	store := newTestStore(t)
	seedCustomer(t, store)
	ctx := context.Background()

	// ordered is only legitimate for aliases and mail.
	setStatus(t, store, "ftp_users", "status", "userid", "cust1-ftp", string(domain.StatusOrdered))

	stuck, err := store.StuckRows(ctx)
	if err != nil {
		t.Fatalf("StuckRows failed: %v", err)
	}
	if len(stuck) != 1 || stuck[0].Kind != domain.KindFTP {
		t.Fatalf("stuck rows = %v, want one ftp row", stuck)
	}
}

func TestPendingRequests_CountsAcrossTables(t *testing.T) {
	store := newTestStore(t)
	f := seedCustomer(t, store)
	ctx := context.Background()

	n, err := store.PendingRequests(ctx)
	if err != nil {
		t.Fatalf("PendingRequests failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("pending = %d, want 0 on a converged fixture", n)
	}

	setStatus(t, store, "subdomain", "subdomain_status", "subdomain_id", f.subID, string(domain.StatusToAdd))
	setStatus(t, store, "mail_users", "status", "mail_id", f.mailDomID, string(domain.StatusToDelete))
	setStatus(t, store, "plugin", "plugin_status", "plugin_id",
		mustID(t)(store.CreatePlugin(ctx, domain.Plugin{Name: "spamfilter"})), string(domain.StatusToInstall))
	// ordered rows are not daemon work.
	setStatus(t, store, "domain_aliases", "alias_status", "alias_id", f.aliasID, string(domain.StatusOrdered))

	n, err = store.PendingRequests(ctx)
	if err != nil {
		t.Fatalf("PendingRequests failed: %v", err)
	}
	if n != 3 {
		t.Errorf("pending = %d, want 3", n)
	}
}

func TestForceRetry_RewritesToChange(t *testing.T) {
	store := newTestStore(t)
	f := seedCustomer(t, store)
	ctx := context.Background()

	setStatus(t, store, "mail_users", "status", "mail_id", f.mailDomID, "error: maildir creation failed")

	id := strconv.FormatInt(f.mailDomID, 10)
	if err := store.ForceRetry(ctx, domain.KindMail, id); err != nil {
		t.Fatalf("ForceRetry failed: %v", err)
	}
	if st := statusOf(t, store, domain.KindMail, f.mailDomID); st != domain.StatusToChange {
		t.Errorf("status = %q, want tochange", st)
	}

	// The retried row now counts as pending work.
	n, err := store.PendingRequests(ctx)
	if err != nil {
		t.Fatalf("PendingRequests failed: %v", err)
	}
	if n != 1 {
		t.Errorf("pending = %d, want 1", n)
	}
}

func TestForceRetry_UnknownKind(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.ForceRetry(ctx, domain.EntityKind("bogus"), "1")
	var kindErr *domain.UnknownKindError
	if !errors.As(err, &kindErr) {
		t.Fatalf("expected UnknownKindError, got %v", err)
	}
}

func recalc(t *testing.T, store *sqlite.Store, resellerID int64) {
	t.Helper()
	ctx := context.Background()
	err := store.RunProvisioningMutation(ctx, domain.OpUpdateReseller, func(tx domain.MutationTx) error {
		return tx.RecalculateResellerAssignments(ctx, resellerID)
	})
	if err != nil {
		t.Fatalf("recalculating: %v", err)
	}
}

func TestRecalculate_ExcludesDeletedAndNegativeLimits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	resellerID := mustID(t)(store.CreateAccount(ctx, domain.Account{
		Name: "res1", Type: domain.AccountReseller, CreatedBy: 1, Status: domain.StatusOK,
	}))
	if err := store.EnsureResellerProps(ctx, resellerID, domain.ResourceCounts{}); err != nil {
		t.Fatalf("seeding reseller props: %v", err)
	}

	custA := mustID(t)(store.CreateAccount(ctx, domain.Account{
		Name: "alice", Type: domain.AccountUser, CreatedBy: resellerID, Status: domain.StatusOK,
	}))
	mustID(t)(store.CreateDomain(ctx, domain.HostingDomain{
		Name: "alice.example", AccountID: custA, Status: domain.StatusOK,
		Limits: domain.DomainLimits{Subdomains: 5, Mailboxes: -1},
	}))

	custB := mustID(t)(store.CreateAccount(ctx, domain.Account{
		Name: "bob", Type: domain.AccountUser, CreatedBy: resellerID, Status: domain.StatusOK,
	}))
	mustID(t)(store.CreateDomain(ctx, domain.HostingDomain{
		Name: "bob.example", AccountID: custB, Status: domain.StatusToDelete,
		Limits: domain.DomainLimits{Subdomains: 10, Mailboxes: 20},
	}))

	recalc(t, store, resellerID)

	limits, err := store.ResellerLimits(ctx, resellerID)
	if err != nil {
		t.Fatalf("reading limits: %v", err)
	}
	if limits.Current.Subdomains != 5 {
		t.Errorf("current_sub_cnt = %d, want 5 (todelete domain excluded)", limits.Current.Subdomains)
	}
	if limits.Current.Mailboxes != 0 {
		t.Errorf("current_mail_cnt = %d, want 0 (-1 contributes nothing)", limits.Current.Mailboxes)
	}
	if limits.Current.Domains != 1 {
		t.Errorf("current_dmn_cnt = %d, want 1", limits.Current.Domains)
	}
}

func TestRecalculate_Idempotent(t *testing.T) {
	store := newTestStore(t)
	f := seedCustomer(t, store)
	ctx := context.Background()

	recalc(t, store, f.resellerID)
	first, err := store.ResellerLimits(ctx, f.resellerID)
	if err != nil {
		t.Fatalf("reading limits: %v", err)
	}

	recalc(t, store, f.resellerID)
	second, err := store.ResellerLimits(ctx, f.resellerID)
	if err != nil {
		t.Fatalf("reading limits: %v", err)
	}

	if first != second {
		t.Errorf("recalculation not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestReads_NotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Customer(ctx, 999); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Errorf("Customer: expected ErrCustomerNotFound, got %v", err)
	}
	if _, err := store.Alias(ctx, 999); !errors.Is(err, domain.ErrAliasNotFound) {
		t.Errorf("Alias: expected ErrAliasNotFound, got %v", err)
	}
	if _, err := store.ResellerLimits(ctx, 999); !errors.Is(err, domain.ErrResellerNotFound) {
		t.Errorf("ResellerLimits: expected ErrResellerNotFound, got %v", err)
	}
}

func TestCustomer_RejectsNonCustomerAccounts(t *testing.T) {
	store := newTestStore(t)
	f := seedCustomer(t, store)
	ctx := context.Background()

	if _, err := store.Customer(ctx, f.resellerID); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound for a reseller id, got %v", err)
	}
}
