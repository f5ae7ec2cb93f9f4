package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/neomorfeo/hostiq/internal/domain"
)

// SQL catalog rows are deleted outright rather than status-flagged: the
// web tier holds database-administrator credentials and tears the physical
// objects down synchronously, so there is nothing for the daemon to do.

func (m *mutationTx) SQLDatabase(ctx context.Context, domainID, databaseID int64) (domain.SQLDatabase, error) {
	var db domain.SQLDatabase
	err := m.tx.QueryRowContext(ctx,
		`SELECT sqld_id, domain_id, sqld_name FROM sql_database WHERE domain_id = ? AND sqld_id = ?`,
		domainID, databaseID,
	).Scan(&db.ID, &db.DomainID, &db.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SQLDatabase{}, domain.ErrSQLDatabaseNotFound
		}
		return domain.SQLDatabase{}, fmt.Errorf("scanning sql database: %w", err)
	}
	return db, nil
}

func (m *mutationTx) SQLDatabasesByDomain(ctx context.Context, domainID int64) ([]domain.SQLDatabase, error) {
	rows, err := m.tx.QueryContext(ctx,
		`SELECT sqld_id, domain_id, sqld_name FROM sql_database WHERE domain_id = ? ORDER BY sqld_id`,
		domainID)
	if err != nil {
		return nil, fmt.Errorf("listing sql databases: %w", err)
	}
	defer rows.Close()

	var dbs []domain.SQLDatabase
	for rows.Next() {
		var db domain.SQLDatabase
		if err := rows.Scan(&db.ID, &db.DomainID, &db.Name); err != nil {
			return nil, fmt.Errorf("scanning sql database row: %w", err)
		}
		dbs = append(dbs, db)
	}
	return dbs, rows.Err()
}

func (m *mutationTx) SQLUsersByDatabase(ctx context.Context, databaseID int64) ([]domain.SQLUser, error) {
	rows, err := m.tx.QueryContext(ctx,
		`SELECT sqlu_id, sqld_id, sqlu_name, sqlu_host FROM sql_user WHERE sqld_id = ? ORDER BY sqlu_id`,
		databaseID)
	if err != nil {
		return nil, fmt.Errorf("listing sql users: %w", err)
	}
	defer rows.Close()

	var users []domain.SQLUser
	for rows.Next() {
		var u domain.SQLUser
		if err := rows.Scan(&u.ID, &u.DatabaseID, &u.Name, &u.Host); err != nil {
			return nil, fmt.Errorf("scanning sql user row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (m *mutationTx) SQLUserDetails(ctx context.Context, domainID, userID int64) (domain.SQLUserGrant, error) {
	var g domain.SQLUserGrant
	err := m.tx.QueryRowContext(ctx,
		`SELECT sqlu_id, sql_user.sqld_id, sqlu_name, sqlu_host, sqld_name
		 FROM sql_user JOIN sql_database USING (sqld_id)
		 WHERE sqlu_id = ? AND domain_id = ?`,
		userID, domainID,
	).Scan(&g.UserID, &g.DatabaseID, &g.Name, &g.Host, &g.Database)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SQLUserGrant{}, domain.ErrSQLUserNotFound
		}
		return domain.SQLUserGrant{}, fmt.Errorf("scanning sql user grant: %w", err)
	}
	return g, nil
}

// CountSQLUserRefs counts catalog rows sharing one (name, host) login. The
// physical login may only be dropped when the last reference goes.
func (m *mutationTx) CountSQLUserRefs(ctx context.Context, name, host string) (int64, error) {
	var n int64
	err := m.tx.QueryRowContext(ctx,
		`SELECT COUNT(sqlu_id) FROM sql_user WHERE sqlu_name = ? AND sqlu_host = ?`,
		name, host,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting sql user refs: %w", err)
	}
	return n, nil
}

func (m *mutationTx) DeleteSQLUserRow(ctx context.Context, userID int64) error {
	return m.exec(ctx, `DELETE FROM sql_user WHERE sqlu_id = ?`, userID)
}

func (m *mutationTx) DeleteSQLDatabaseRow(ctx context.Context, databaseID int64) error {
	return m.exec(ctx, `DELETE FROM sql_database WHERE sqld_id = ?`, databaseID)
}
