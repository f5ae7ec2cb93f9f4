package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/neomorfeo/hostiq/internal/domain"
)

// Customer returns a customer account by id.
func (s *Store) Customer(ctx context.Context, customerID int64) (domain.Account, error) {
	var a domain.Account
	var typ, status string
	err := s.db.QueryRowContext(ctx,
		`SELECT admin_id, admin_name, admin_type, created_by, admin_status
		 FROM admin WHERE admin_id = ? AND admin_type = 'user'`,
		customerID,
	).Scan(&a.ID, &a.Name, &typ, &a.CreatedBy, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrCustomerNotFound
		}
		return domain.Account{}, fmt.Errorf("scanning customer: %w", err)
	}
	a.Type = domain.AccountType(typ)
	a.Status = domain.Status(status)
	return a, nil
}

// MainDomain returns the customer's main domain, the root of the cascade
// subtree.
func (s *Store) MainDomain(ctx context.Context, customerID int64) (domain.HostingDomain, error) {
	return s.scanDomain(s.db.QueryRowContext(ctx,
		domainColumns+` FROM domain WHERE domain_admin_id = ?`, customerID))
}

// Domain returns a domain by id.
func (s *Store) Domain(ctx context.Context, domainID int64) (domain.HostingDomain, error) {
	return s.scanDomain(s.db.QueryRowContext(ctx,
		domainColumns+` FROM domain WHERE domain_id = ?`, domainID))
}

const domainColumns = `SELECT domain_id, domain_admin_id, domain_name, domain_status,
    domain_subd_limit, domain_alias_limit, domain_mailacc_limit, domain_ftpacc_limit,
    domain_sqld_limit, domain_sqlu_limit, domain_disk_limit, domain_traffic_limit`

func (s *Store) scanDomain(row *sql.Row) (domain.HostingDomain, error) {
	var d domain.HostingDomain
	var status string
	err := row.Scan(&d.ID, &d.AccountID, &d.Name, &status,
		&d.Limits.Subdomains, &d.Limits.Aliases, &d.Limits.Mailboxes, &d.Limits.FTPUsers,
		&d.Limits.SQLDatabases, &d.Limits.SQLUsers, &d.Limits.Disk, &d.Limits.Traffic)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.HostingDomain{}, domain.ErrCustomerNotFound
		}
		return domain.HostingDomain{}, fmt.Errorf("scanning domain: %w", err)
	}
	d.Status = domain.Status(status)
	return d, nil
}

// Alias returns a domain alias by id.
func (s *Store) Alias(ctx context.Context, aliasID int64) (domain.DomainAlias, error) {
	var a domain.DomainAlias
	var status string
	err := s.db.QueryRowContext(ctx,
		`SELECT alias_id, domain_id, alias_name, alias_mount, alias_status
		 FROM domain_aliases WHERE alias_id = ?`,
		aliasID,
	).Scan(&a.ID, &a.DomainID, &a.Name, &a.Mount, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DomainAlias{}, domain.ErrAliasNotFound
		}
		return domain.DomainAlias{}, fmt.Errorf("scanning alias: %w", err)
	}
	a.Status = domain.Status(status)
	return a, nil
}

// ResellerLimits returns the current/max counter pairs for a reseller.
func (s *Store) ResellerLimits(ctx context.Context, resellerID int64) (domain.ResellerLimits, error) {
	var l domain.ResellerLimits
	err := s.db.QueryRowContext(ctx,
		`SELECT reseller_id,
		     current_dmn_cnt, max_dmn_cnt, current_sub_cnt, max_sub_cnt,
		     current_als_cnt, max_als_cnt, current_mail_cnt, max_mail_cnt,
		     current_ftp_cnt, max_ftp_cnt, current_sql_db_cnt, max_sql_db_cnt,
		     current_sql_user_cnt, max_sql_user_cnt, current_disk_amnt, max_disk_amnt,
		     current_traff_amnt, max_traff_amnt
		 FROM reseller_props WHERE reseller_id = ?`,
		resellerID,
	).Scan(&l.ResellerID,
		&l.Current.Domains, &l.Max.Domains, &l.Current.Subdomains, &l.Max.Subdomains,
		&l.Current.Aliases, &l.Max.Aliases, &l.Current.Mailboxes, &l.Max.Mailboxes,
		&l.Current.FTPUsers, &l.Max.FTPUsers, &l.Current.SQLDatabases, &l.Max.SQLDatabases,
		&l.Current.SQLUsers, &l.Max.SQLUsers, &l.Current.Disk, &l.Max.Disk,
		&l.Current.Traffic, &l.Max.Traffic)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ResellerLimits{}, domain.ErrResellerNotFound
		}
		return domain.ResellerLimits{}, fmt.Errorf("scanning reseller props: %w", err)
	}
	return l, nil
}
