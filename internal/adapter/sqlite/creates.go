package sqlite

import (
	"context"
	"fmt"

	"github.com/neomorfeo/hostiq/internal/domain"
)

// Entity creation. Rows enter the system in the toadd status (toinstall
// for plugins) unless the caller sets one explicitly, e.g. ordered for an
// alias awaiting approval. Creation runs through the coordinator like any
// other status write.

func defaultStatus(st domain.Status, fallback domain.Status) string {
	if st == "" {
		return string(fallback)
	}
	return string(st)
}

// insert runs a single INSERT inside a coordinator-managed transaction and
// returns the new row id.
func (s *Store) insert(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	err := s.RunProvisioningMutation(ctx, domain.OpCreateEntity, func(mtx domain.MutationTx) error {
		m := mtx.(*mutationTx)
		res, err := m.tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("inserting row: %w", err)
		}
		id, err = res.LastInsertId()
		return err
	})
	return id, err
}

func (s *Store) CreateAccount(ctx context.Context, a domain.Account) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO admin (admin_name, admin_type, created_by, admin_status) VALUES (?, ?, ?, ?)`,
		a.Name, string(a.Type), a.CreatedBy, defaultStatus(a.Status, domain.StatusToAdd))
}

func (s *Store) CreateDomain(ctx context.Context, d domain.HostingDomain) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO domain (domain_name, domain_admin_id, domain_status,
		     domain_subd_limit, domain_alias_limit, domain_mailacc_limit, domain_ftpacc_limit,
		     domain_sqld_limit, domain_sqlu_limit, domain_disk_limit, domain_traffic_limit)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.Name, d.AccountID, defaultStatus(d.Status, domain.StatusToAdd),
		d.Limits.Subdomains, d.Limits.Aliases, d.Limits.Mailboxes, d.Limits.FTPUsers,
		d.Limits.SQLDatabases, d.Limits.SQLUsers, d.Limits.Disk, d.Limits.Traffic)
}

func (s *Store) CreateAlias(ctx context.Context, a domain.DomainAlias) (int64, error) {
	mount := a.Mount
	if mount == "" {
		mount = "/"
	}
	return s.insert(ctx,
		`INSERT INTO domain_aliases (domain_id, alias_name, alias_mount, alias_status) VALUES (?, ?, ?, ?)`,
		a.DomainID, a.Name, mount, defaultStatus(a.Status, domain.StatusToAdd))
}

func (s *Store) CreateSubdomain(ctx context.Context, sub domain.Subdomain) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO subdomain (domain_id, subdomain_name, subdomain_status) VALUES (?, ?, ?)`,
		sub.DomainID, sub.Name, defaultStatus(sub.Status, domain.StatusToAdd))
}

func (s *Store) CreateSubdomainAlias(ctx context.Context, sub domain.SubdomainAlias) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO subdomain_alias (alias_id, subdomain_alias_name, subdomain_alias_status) VALUES (?, ?, ?)`,
		sub.AliasID, sub.Name, defaultStatus(sub.Status, domain.StatusToAdd))
}

func (s *Store) CreateDNSRecord(ctx context.Context, r domain.DNSRecord) (int64, error) {
	class, typ := r.Class, r.Type
	if class == "" {
		class = "IN"
	}
	if typ == "" {
		typ = "A"
	}
	return s.insert(ctx,
		`INSERT INTO domain_dns (domain_id, domain_dns, domain_class, domain_type, domain_text, domain_dns_status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.DomainID, r.Name, class, typ, r.Data, defaultStatus(r.Status, domain.StatusToAdd))
}

func (s *Store) CreateMailAccount(ctx context.Context, m domain.MailAccount) (int64, error) {
	kind := m.OwnerKind
	if kind == "" {
		kind = domain.MailOwnerDomain
	}
	mailType := string(kind) + "_mail"
	if m.Forward {
		mailType = string(kind) + "_forward"
	}
	poActive := "no"
	if m.POActive {
		poActive = "yes"
	}
	return s.insert(ctx,
		`INSERT INTO mail_users (domain_id, sub_id, mail_acc, mail_type, po_active, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.DomainID, m.SubID, m.Address, mailType, poActive, defaultStatus(m.Status, domain.StatusToAdd))
}

func (s *Store) CreateFTPUser(ctx context.Context, u domain.FTPUser) error {
	_, err := s.insert(ctx,
		`INSERT INTO ftp_users (userid, admin_id, status) VALUES (?, ?, ?)`,
		u.UserID, u.AccountID, defaultStatus(u.Status, domain.StatusToAdd))
	return err
}

func (s *Store) CreateFTPGroup(ctx context.Context, group, members string) error {
	_, err := s.insert(ctx,
		`INSERT INTO ftp_group (groupname, members) VALUES (?, ?)`, group, members)
	return err
}

func (s *Store) CreateHtaccessRule(ctx context.Context, h domain.HtaccessRule) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO htaccess (dmn_id, auth_name, status) VALUES (?, ?, ?)`,
		h.DomainID, h.AuthName, defaultStatus(h.Status, domain.StatusToAdd))
}

func (s *Store) CreateHtaccessGroup(ctx context.Context, h domain.HtaccessGroup) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO htaccess_groups (dmn_id, ugroup, status) VALUES (?, ?, ?)`,
		h.DomainID, h.Group, defaultStatus(h.Status, domain.StatusToAdd))
}

func (s *Store) CreateHtaccessUser(ctx context.Context, h domain.HtaccessUser) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO htaccess_users (dmn_id, uname, status) VALUES (?, ?, ?)`,
		h.DomainID, h.Name, defaultStatus(h.Status, domain.StatusToAdd))
}

func (s *Store) CreateSSLCert(ctx context.Context, c domain.SSLCert) (int64, error) {
	kind := c.OwnerKind
	if kind == "" {
		kind = domain.CertOwnerDomain
	}
	return s.insert(ctx,
		`INSERT INTO ssl_certs (domain_id, domain_type, status) VALUES (?, ?, ?)`,
		c.OwnerID, string(kind), defaultStatus(c.Status, domain.StatusToAdd))
}

func (s *Store) CreateServerIP(ctx context.Context, ip domain.ServerIP) (int64, error) {
	card := ip.Card
	if card == "" {
		card = "eth0"
	}
	return s.insert(ctx,
		`INSERT INTO server_ips (ip_number, ip_card, ip_status) VALUES (?, ?, ?)`,
		ip.Number, card, defaultStatus(ip.Status, domain.StatusToAdd))
}

func (s *Store) CreatePlugin(ctx context.Context, p domain.Plugin) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO plugin (plugin_name, plugin_status) VALUES (?, ?)`,
		p.Name, defaultStatus(p.Status, domain.StatusToInstall))
}

func (s *Store) CreateSQLDatabase(ctx context.Context, db domain.SQLDatabase) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO sql_database (domain_id, sqld_name) VALUES (?, ?)`,
		db.DomainID, db.Name)
}

func (s *Store) CreateSQLUser(ctx context.Context, u domain.SQLUser) (int64, error) {
	host := u.Host
	if host == "" {
		host = "localhost"
	}
	return s.insert(ctx,
		`INSERT INTO sql_user (sqld_id, sqlu_name, sqlu_host) VALUES (?, ?, ?)`,
		u.DatabaseID, u.Name, host)
}

// EnsureResellerProps creates (or replaces) the counter row for a
// reseller with the given maximums; current counters start at zero until
// the first recomputation.
func (s *Store) EnsureResellerProps(ctx context.Context, resellerID int64, max domain.ResourceCounts) error {
	_, err := s.insert(ctx,
		`INSERT OR REPLACE INTO reseller_props (reseller_id,
		     max_dmn_cnt, max_sub_cnt, max_als_cnt, max_mail_cnt, max_ftp_cnt,
		     max_sql_db_cnt, max_sql_user_cnt, max_disk_amnt, max_traff_amnt)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		resellerID,
		max.Domains, max.Subdomains, max.Aliases, max.Mailboxes, max.FTPUsers,
		max.SQLDatabases, max.SQLUsers, max.Disk, max.Traffic)
	return err
}

// AddDomainTraffic records one traffic accounting row.
func (s *Store) AddDomainTraffic(ctx context.Context, domainID, at, bytes int64) error {
	_, err := s.insert(ctx,
		`INSERT INTO domain_traffic (domain_id, dtraff_time, dtraff_bytes) VALUES (?, ?, ?)`,
		domainID, at, bytes)
	return err
}

// AddQuotaEntries seeds the FTP quota bookkeeping rows for a user.
func (s *Store) AddQuotaEntries(ctx context.Context, name string, avail int64) error {
	return s.RunProvisioningMutation(ctx, domain.OpCreateEntity, func(mtx domain.MutationTx) error {
		m := mtx.(*mutationTx)
		if err := m.exec(ctx, `INSERT INTO quotalimits (name, bytes_in_avail) VALUES (?, ?)`, name, avail); err != nil {
			return err
		}
		return m.exec(ctx, `INSERT INTO quotatallies (name, bytes_in_used) VALUES (?, 0)`, name)
	})
}
