package sqlite

import (
	"context"

	"github.com/neomorfeo/hostiq/internal/domain"
)

func (m *mutationTx) UpdateResellerMax(ctx context.Context, resellerID int64, max domain.ResourceCounts) error {
	return m.exec(ctx,
		`UPDATE reseller_props SET
		     max_dmn_cnt = ?, max_sub_cnt = ?, max_als_cnt = ?, max_mail_cnt = ?,
		     max_ftp_cnt = ?, max_sql_db_cnt = ?, max_sql_user_cnt = ?,
		     max_disk_amnt = ?, max_traff_amnt = ?
		 WHERE reseller_id = ?`,
		max.Domains, max.Subdomains, max.Aliases, max.Mailboxes,
		max.FTPUsers, max.SQLDatabases, max.SQLUsers,
		max.Disk, max.Traffic, resellerID)
}

// RecalculateResellerAssignments recomputes every current_* counter from
// the live assignments: the sum, over the reseller's customers' domains
// not scheduled for deletion, of each per-domain limit. A limit of -1
// (resource disabled) contributes 0, not -1. The statement is a pure
// function of the domain table, so re-running it without intervening data
// changes is a no-op.
func (m *mutationTx) RecalculateResellerAssignments(ctx context.Context, resellerID int64) error {
	return m.exec(ctx,
		`UPDATE reseller_props SET
		     current_dmn_cnt = agg.dmn_count,
		     current_sub_cnt = agg.sub_limit,
		     current_als_cnt = agg.als_limit,
		     current_mail_cnt = agg.mail_limit,
		     current_ftp_cnt = agg.ftp_limit,
		     current_sql_db_cnt = agg.sqld_limit,
		     current_sql_user_cnt = agg.sqlu_limit,
		     current_disk_amnt = agg.disk_limit,
		     current_traff_amnt = agg.traffic_limit
		 FROM (
		     SELECT COUNT(domain_id) AS dmn_count,
		         COALESCE(SUM(CASE WHEN domain_subd_limit >= 0 THEN domain_subd_limit ELSE 0 END), 0) AS sub_limit,
		         COALESCE(SUM(CASE WHEN domain_alias_limit >= 0 THEN domain_alias_limit ELSE 0 END), 0) AS als_limit,
		         COALESCE(SUM(CASE WHEN domain_mailacc_limit >= 0 THEN domain_mailacc_limit ELSE 0 END), 0) AS mail_limit,
		         COALESCE(SUM(CASE WHEN domain_ftpacc_limit >= 0 THEN domain_ftpacc_limit ELSE 0 END), 0) AS ftp_limit,
		         COALESCE(SUM(CASE WHEN domain_sqld_limit >= 0 THEN domain_sqld_limit ELSE 0 END), 0) AS sqld_limit,
		         COALESCE(SUM(CASE WHEN domain_sqlu_limit >= 0 THEN domain_sqlu_limit ELSE 0 END), 0) AS sqlu_limit,
		         COALESCE(SUM(domain_disk_limit), 0) AS disk_limit,
		         COALESCE(SUM(domain_traffic_limit), 0) AS traffic_limit
		     FROM admin
		     JOIN domain ON (domain_admin_id = admin_id)
		     WHERE created_by = ?
		     AND domain_status <> 'todelete'
		 ) AS agg
		 WHERE reseller_id = ?`,
		resellerID, resellerID)
}
