package app_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/neomorfeo/hostiq/internal/adapter/sqlite"
	"github.com/neomorfeo/hostiq/internal/domain"
)

// mockNotifier records wake-ups without touching the network.
type mockNotifier struct {
	notified int
	hint     domain.WakeHint
}

func (m *mockNotifier) Notify(_ context.Context) domain.WakeHint {
	m.notified++
	return m.hint
}

// mockAdmin records physical RDBMS work.
type mockAdmin struct {
	droppedDBs    []string
	droppedLogins []string
	revoked       []string
	err           error
}

func (m *mockAdmin) DropDatabase(_ context.Context, name string) error {
	if m.err != nil {
		return m.err
	}
	m.droppedDBs = append(m.droppedDBs, name)
	return nil
}

func (m *mockAdmin) DropLogin(_ context.Context, name, host string) error {
	if m.err != nil {
		return m.err
	}
	m.droppedLogins = append(m.droppedLogins, name+"@"+host)
	return nil
}

func (m *mockAdmin) RevokeAccess(_ context.Context, name, host, database string) error {
	if m.err != nil {
		return m.err
	}
	m.revoked = append(m.revoked, name+"@"+host+":"+database)
	return nil
}

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

	dnsID       int64
	mailDomID   int64
	mailAliasID int64
	htID        int64

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
	mustID(t)(s.CreateSSLCert(ctx, domain.SSLCert{
		OwnerID: f.domainID, OwnerKind: domain.CertOwnerDomain, Status: domain.StatusOK,
	}))
	mustID(t)(s.CreateSSLCert(ctx, domain.SSLCert{
		OwnerID: f.aliasID, OwnerKind: domain.CertOwnerAlias, Status: domain.StatusOK,
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

func statusOf(t *testing.T, s *sqlite.Store, kind domain.EntityKind, id int64) domain.Status {
	t.Helper()
	st, err := s.EntityStatus(context.Background(), kind, strconv.FormatInt(id, 10))
	if err != nil {
		t.Fatalf("reading %s %d status: %v", kind, id, err)
	}
	return st
}

func ftpStatusOf(t *testing.T, s *sqlite.Store, userID string) domain.Status {
	t.Helper()
	st, err := s.EntityStatus(context.Background(), domain.KindFTP, userID)
	if err != nil {
		t.Fatalf("reading ftp %s status: %v", userID, err)
	}
	return st
}

func countRows(t *testing.T, s *sqlite.Store, query string, args ...any) int {
	t.Helper()
	var n int
	if err := s.DB().QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	return n
}

func setStatus(t *testing.T, s *sqlite.Store, table, column, idColumn string, id any, status string) {
	t.Helper()
	if _, err := s.DB().Exec("UPDATE "+table+" SET "+column+" = ? WHERE "+idColumn+" = ?", status, id); err != nil {
		t.Fatalf("setting %s status: %v", table, err)
	}
}
