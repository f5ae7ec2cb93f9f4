package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/neomorfeo/hostiq/internal/domain"
)

// sweepTable maps one entity kind to its table layout. The extra clause
// narrows the scan where a table mixes kinds (the admin table holds
// administrators and resellers alongside customers).
type sweepTable struct {
	kind   domain.EntityKind
	table  string
	status string
	id     string
	name   string
	extra  string
}

var sweepTables = []sweepTable{
	{kind: domain.KindUser, table: "admin", status: "admin_status", id: "admin_id", name: "admin_name", extra: "AND admin_type = 'user'"},
	{kind: domain.KindDomain, table: "domain", status: "domain_status", id: "domain_id", name: "domain_name"},
	{kind: domain.KindAlias, table: "domain_aliases", status: "alias_status", id: "alias_id", name: "alias_name"},
	{kind: domain.KindSubdomain, table: "subdomain", status: "subdomain_status", id: "subdomain_id", name: "subdomain_name"},
	{kind: domain.KindSubdomainAlias, table: "subdomain_alias", status: "subdomain_alias_status", id: "subdomain_alias_id", name: "subdomain_alias_name"},
	{kind: domain.KindCustomDNS, table: "domain_dns", status: "domain_dns_status", id: "domain_dns_id", name: "domain_dns"},
	{kind: domain.KindFTP, table: "ftp_users", status: "status", id: "userid", name: "userid"},
	{kind: domain.KindMail, table: "mail_users", status: "status", id: "mail_id", name: "mail_acc"},
	{kind: domain.KindHtaccess, table: "htaccess", status: "status", id: "id", name: "auth_name"},
	{kind: domain.KindHtgroup, table: "htaccess_groups", status: "status", id: "id", name: "ugroup"},
	{kind: domain.KindHtpasswd, table: "htaccess_users", status: "status", id: "id", name: "uname"},
	{kind: domain.KindServerIP, table: "server_ips", status: "ip_status", id: "ip_id", name: "ip_number"},
	{kind: domain.KindPlugin, table: "plugin", status: "plugin_status", id: "plugin_id", name: "plugin_name"},
}

func tableFor(kind domain.EntityKind) (sweepTable, error) {
	for _, t := range sweepTables {
		if t.kind == kind {
			return t, nil
		}
	}
	return sweepTable{}, &domain.UnknownKindError{Kind: kind}
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// StuckRows scans every entity table for rows whose status is outside the
// expected set for that table: neither terminal nor a value the daemon (or
// an approval flow) legitimately leaves in place. What remains is almost
// always a daemon-reported error string.
func (s *Store) StuckRows(ctx context.Context) ([]domain.StuckRow, error) {
	var stuck []domain.StuckRow
	for _, t := range sweepTables {
		rows, err := s.stuckRowsIn(ctx, t)
		if err != nil {
			return nil, err
		}
		stuck = append(stuck, rows...)
	}
	return stuck, nil
}

func (s *Store) stuckRowsIn(ctx context.Context, t sweepTable) ([]domain.StuckRow, error) {
	expected := domain.ExpectedStatuses(t.kind)
	args := make([]any, 0, len(expected))
	for _, st := range expected {
		args = append(args, string(st))
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s NOT IN (%s) %s`,
		t.id, t.name, t.status, t.table, t.status, placeholders(len(expected)), t.extra)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("scanning %s for stuck rows: %w", t.table, err)
	}
	defer rows.Close()

	var stuck []domain.StuckRow
	for rows.Next() {
		var id, name, status string
		if err := rows.Scan(&id, &name, &status); err != nil {
			return nil, fmt.Errorf("scanning stuck %s row: %w", t.table, err)
		}
		stuck = append(stuck, domain.StuckRow{
			Kind:   t.kind,
			ID:     id,
			Name:   name,
			Status: domain.Status(status),
		})
	}
	return stuck, rows.Err()
}

// PendingRequests counts rows across all entity tables whose status is in
// the requestable in-progress subset: work the daemon has yet to pick up.
func (s *Store) PendingRequests(ctx context.Context) (int, error) {
	args := make([]any, 0, len(domain.Requestable))
	for _, st := range domain.Requestable {
		args = append(args, string(st))
	}

	total := 0
	for _, t := range sweepTables {
		query := fmt.Sprintf(`SELECT COUNT(%s) FROM %s WHERE %s IN (%s)`,
			t.id, t.table, t.status, placeholders(len(domain.Requestable)))

		var n int
		if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
			return 0, fmt.Errorf("counting pending %s rows: %w", t.table, err)
		}
		total += n
	}
	return total, nil
}

// ForceRetry unconditionally rewrites a row's status to tochange so the
// daemon re-attempts it on its next pass. This is the only supported
// recovery path for a permanently stuck row; there is no timeout-based
// retry.
func (s *Store) ForceRetry(ctx context.Context, kind domain.EntityKind, id string) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}

	return s.RunProvisioningMutation(ctx, domain.OpForceRetry, func(mtx domain.MutationTx) error {
		m := mtx.(*mutationTx)
		query := fmt.Sprintf(`UPDATE %s SET %s = ? WHERE %s = ?`, t.table, t.status, t.id)
		return m.exec(ctx, query, string(domain.StatusToChange), id)
	})
}

// EntityStatus reads one row's current status; used by the debugger
// surface and by tests asserting on cascade results.
func (s *Store) EntityStatus(ctx context.Context, kind domain.EntityKind, id string) (domain.Status, error) {
	t, err := tableFor(kind)
	if err != nil {
		return "", err
	}

	var status string
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`, t.status, t.table, t.id)
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", sql.ErrNoRows
		}
		return "", fmt.Errorf("reading %s status: %w", t.table, err)
	}
	return domain.Status(status), nil
}
