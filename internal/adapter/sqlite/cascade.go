package sqlite

import (
	"context"

	"github.com/neomorfeo/hostiq/internal/domain"
)

// Status scheduling writes. The ByDomain/ByAlias forms update every
// matching child row unconditionally; ordering between sibling cascades is
// irrelevant, atomicity with the parent write is what matters and is
// provided by the enclosing transaction.

func (m *mutationTx) ScheduleAccountStatus(ctx context.Context, accountID int64, st domain.Status) error {
	return m.exec(ctx, `UPDATE admin SET admin_status = ? WHERE admin_id = ?`, string(st), accountID)
}

func (m *mutationTx) ScheduleDomainStatus(ctx context.Context, domainID int64, st domain.Status) error {
	return m.exec(ctx, `UPDATE domain SET domain_status = ? WHERE domain_id = ?`, string(st), domainID)
}

func (m *mutationTx) ScheduleSubdomainsByDomain(ctx context.Context, domainID int64, st domain.Status) error {
	return m.exec(ctx, `UPDATE subdomain SET subdomain_status = ? WHERE domain_id = ?`, string(st), domainID)
}

func (m *mutationTx) ScheduleAliasStatus(ctx context.Context, aliasID int64, st domain.Status) error {
	return m.exec(ctx, `UPDATE domain_aliases SET alias_status = ? WHERE alias_id = ?`, string(st), aliasID)
}

func (m *mutationTx) ScheduleAliasesByDomain(ctx context.Context, domainID int64, st domain.Status) error {
	return m.exec(ctx, `UPDATE domain_aliases SET alias_status = ? WHERE domain_id = ?`, string(st), domainID)
}

func (m *mutationTx) ScheduleSubdomainAliasesByDomain(ctx context.Context, domainID int64, st domain.Status) error {
	return m.exec(ctx,
		`UPDATE subdomain_alias SET subdomain_alias_status = ?
		 WHERE alias_id IN (SELECT alias_id FROM domain_aliases WHERE domain_id = ?)`,
		string(st), domainID)
}

func (m *mutationTx) ScheduleSubdomainAliasesByAlias(ctx context.Context, aliasID int64, st domain.Status) error {
	return m.exec(ctx,
		`UPDATE subdomain_alias SET subdomain_alias_status = ? WHERE alias_id = ?`,
		string(st), aliasID)
}

func (m *mutationTx) ScheduleDNSByDomain(ctx context.Context, domainID int64, st domain.Status) error {
	return m.exec(ctx, `UPDATE domain_dns SET domain_dns_status = ? WHERE domain_id = ?`, string(st), domainID)
}

func (m *mutationTx) ScheduleFTPUsersByAccount(ctx context.Context, accountID int64, st domain.Status) error {
	return m.exec(ctx, `UPDATE ftp_users SET status = ? WHERE admin_id = ?`, string(st), accountID)
}

func (m *mutationTx) ScheduleMailByDomain(ctx context.Context, domainID int64, st domain.Status) error {
	return m.exec(ctx, `UPDATE mail_users SET status = ? WHERE domain_id = ?`, string(st), domainID)
}

// ScheduleMailByAlias covers mailboxes on the alias itself and on any of
// its subdomain aliases; mail_type prefixes select the owner kind since
// sub_id is polymorphic.
func (m *mutationTx) ScheduleMailByAlias(ctx context.Context, aliasID int64, st domain.Status) error {
	return m.exec(ctx,
		`UPDATE mail_users SET status = ?
		 WHERE (sub_id = ? AND mail_type LIKE 'alias_%')
		    OR (mail_type LIKE 'alssub_%'
		        AND sub_id IN (SELECT subdomain_alias_id FROM subdomain_alias WHERE alias_id = ?))`,
		string(st), aliasID, aliasID)
}

func (m *mutationTx) ScheduleHtaccessByDomain(ctx context.Context, domainID int64, st domain.Status) error {
	for _, table := range []string{"htaccess", "htaccess_groups", "htaccess_users"} {
		if err := m.exec(ctx, `UPDATE `+table+` SET status = ? WHERE dmn_id = ?`, string(st), domainID); err != nil {
			return err
		}
	}
	return nil
}

// ScheduleCertsByDomain reaches certificates through all four owner kinds:
// the domain itself, its aliases, its subdomains, and the subdomain
// aliases under its aliases.
func (m *mutationTx) ScheduleCertsByDomain(ctx context.Context, domainID int64, st domain.Status) error {
	if err := m.exec(ctx,
		`UPDATE ssl_certs SET status = ? WHERE domain_type = 'dmn' AND domain_id = ?`,
		string(st), domainID); err != nil {
		return err
	}
	if err := m.exec(ctx,
		`UPDATE ssl_certs SET status = ? WHERE domain_type = 'als'
		 AND domain_id IN (SELECT alias_id FROM domain_aliases WHERE domain_id = ?)`,
		string(st), domainID); err != nil {
		return err
	}
	if err := m.exec(ctx,
		`UPDATE ssl_certs SET status = ? WHERE domain_type = 'sub'
		 AND domain_id IN (SELECT subdomain_id FROM subdomain WHERE domain_id = ?)`,
		string(st), domainID); err != nil {
		return err
	}
	return m.exec(ctx,
		`UPDATE ssl_certs SET status = ? WHERE domain_type = 'alssub'
		 AND domain_id IN (
		     SELECT subdomain_alias_id FROM subdomain_alias
		     WHERE alias_id IN (SELECT alias_id FROM domain_aliases WHERE domain_id = ?))`,
		string(st), domainID)
}

func (m *mutationTx) ScheduleCertsByAlias(ctx context.Context, aliasID int64, st domain.Status) error {
	if err := m.exec(ctx,
		`UPDATE ssl_certs SET status = ? WHERE domain_type = 'als' AND domain_id = ?`,
		string(st), aliasID); err != nil {
		return err
	}
	return m.exec(ctx,
		`UPDATE ssl_certs SET status = ? WHERE domain_type = 'alssub'
		 AND domain_id IN (SELECT subdomain_alias_id FROM subdomain_alias WHERE alias_id = ?)`,
		string(st), aliasID)
}

// SuspendMailboxes switches IMAP/POP off for every mailbox of the domain.
// Hard suspension also schedules the mailboxes for the daemon so SMTP
// delivery stops; soft suspension leaves the provisioning status alone.
func (m *mutationTx) SuspendMailboxes(ctx context.Context, domainID int64, hard bool) error {
	if hard {
		return m.exec(ctx,
			`UPDATE mail_users SET status = ?, po_active = 'no' WHERE domain_id = ?`,
			string(domain.StatusToDisable), domainID)
	}
	return m.exec(ctx, `UPDATE mail_users SET po_active = 'no' WHERE domain_id = ?`, domainID)
}

// ResumeMailboxes schedules disabled mailboxes for re-enablement and
// restores IMAP/POP access on real mailboxes (forward-only entries keep
// po_active as-is).
func (m *mutationTx) ResumeMailboxes(ctx context.Context, domainID int64) error {
	if err := m.exec(ctx,
		`UPDATE mail_users
		 SET status = ?, po_active = CASE WHEN mail_type LIKE '%_mail%' THEN 'yes' ELSE po_active END
		 WHERE domain_id = ? AND status = ?`,
		string(domain.StatusToEnable), domainID, string(domain.StatusDisabled)); err != nil {
		return err
	}
	return m.exec(ctx,
		`UPDATE mail_users
		 SET po_active = CASE WHEN mail_type LIKE '%_mail%' THEN 'yes' ELSE po_active END
		 WHERE domain_id = ? AND status <> ?`,
		domainID, string(domain.StatusDisabled))
}

// Hard deletes for rows that have no daemon-side resources to tear down.

func (m *mutationTx) DeleteDomainTraffic(ctx context.Context, domainID int64) error {
	return m.exec(ctx, `DELETE FROM domain_traffic WHERE domain_id = ?`, domainID)
}

func (m *mutationTx) DeleteFTPGroup(ctx context.Context, group string) error {
	return m.exec(ctx, `DELETE FROM ftp_group WHERE groupname = ?`, group)
}

func (m *mutationTx) DeleteQuotaEntries(ctx context.Context, name string) error {
	if err := m.exec(ctx, `DELETE FROM quotalimits WHERE name = ?`, name); err != nil {
		return err
	}
	return m.exec(ctx, `DELETE FROM quotatallies WHERE name = ?`, name)
}

func (m *mutationTx) DeleteAliasRow(ctx context.Context, aliasID int64) error {
	return m.exec(ctx, `DELETE FROM domain_aliases WHERE alias_id = ?`, aliasID)
}
