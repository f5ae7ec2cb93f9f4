package app

import (
	"context"
	"fmt"

	"github.com/neomorfeo/hostiq/internal/domain"
)

// SQLService tears down SQL databases and users synchronously. The web
// tier holds database-administrator credentials, so unlike every other
// entity kind there is no status column and no daemon involvement: the
// catalog rows and the physical objects go in the same operation.
type SQLService struct {
	store domain.ProvisioningStore
	admin domain.ServerAdmin
}

// NewSQLService creates a service with the given adapters.
func NewSQLService(store domain.ProvisioningStore, admin domain.ServerAdmin) *SQLService {
	return &SQLService{store: store, admin: admin}
}

// DeleteUser removes one sql user. The physical login is dropped only
// when this was its last catalog reference; otherwise access to this one
// database is revoked and the login survives for its other grants.
func (s *SQLService) DeleteUser(ctx context.Context, domainID, userID int64) error {
	return s.store.RunProvisioningMutation(ctx, domain.OpDeleteSQLUser, func(tx domain.MutationTx) error {
		grant, err := tx.SQLUserDetails(ctx, domainID, userID)
		if err != nil {
			return err
		}
		return s.deleteUserTx(ctx, tx, grant)
	})
}

// DeleteDatabase removes one sql database together with every user
// granted on it.
func (s *SQLService) DeleteDatabase(ctx context.Context, domainID, databaseID int64) error {
	return s.store.RunProvisioningMutation(ctx, domain.OpDeleteSQLDatabase, func(tx domain.MutationTx) error {
		db, err := tx.SQLDatabase(ctx, domainID, databaseID)
		if err != nil {
			return err
		}
		return s.deleteDatabaseTx(ctx, tx, db)
	})
}

// DeleteAllForDomain removes every sql database of a domain. Customer
// deletion runs this before the status cascade so the daemon never sees
// SQL objects at all.
func (s *SQLService) DeleteAllForDomain(ctx context.Context, domainID int64) error {
	return s.store.RunProvisioningMutation(ctx, domain.OpDeleteSQLDatabase, func(tx domain.MutationTx) error {
		dbs, err := tx.SQLDatabasesByDomain(ctx, domainID)
		if err != nil {
			return err
		}
		for _, db := range dbs {
			if err := s.deleteDatabaseTx(ctx, tx, db); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLService) deleteDatabaseTx(ctx context.Context, tx domain.MutationTx, db domain.SQLDatabase) error {
	users, err := tx.SQLUsersByDatabase(ctx, db.ID)
	if err != nil {
		return err
	}
	for _, u := range users {
		grant := domain.SQLUserGrant{
			UserID:     u.ID,
			DatabaseID: u.DatabaseID,
			Name:       u.Name,
			Host:       u.Host,
			Database:   db.Name,
		}
		if err := s.deleteUserTx(ctx, tx, grant); err != nil {
			return err
		}
	}
	if err := tx.DeleteSQLDatabaseRow(ctx, db.ID); err != nil {
		return err
	}
	if err := s.admin.DropDatabase(ctx, db.Name); err != nil {
		return fmt.Errorf("dropping database %q: %w", db.Name, err)
	}
	return nil
}

// deleteUserTx removes one catalog row, then does the physical work. The
// refcount is taken before the row goes so "last reference" counts the
// row being deleted.
func (s *SQLService) deleteUserTx(ctx context.Context, tx domain.MutationTx, g domain.SQLUserGrant) error {
	refs, err := tx.CountSQLUserRefs(ctx, g.Name, g.Host)
	if err != nil {
		return err
	}
	if err := tx.DeleteSQLUserRow(ctx, g.UserID); err != nil {
		return err
	}
	if refs < 2 {
		if err := s.admin.DropLogin(ctx, g.Name, g.Host); err != nil {
			return fmt.Errorf("dropping login %s@%s: %w", g.Name, g.Host, err)
		}
		return nil
	}
	if err := s.admin.RevokeAccess(ctx, g.Name, g.Host, g.Database); err != nil {
		return fmt.Errorf("revoking %s@%s on %q: %w", g.Name, g.Host, g.Database, err)
	}
	return nil
}
