package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/neomorfeo/hostiq/internal/domain"
)

// Before registers extension hooks to run inside the transaction before
// the operation's own writes. Registration happens at startup and is not
// synchronized with concurrent mutations.
func (s *Store) Before(op domain.MutationOp, hooks ...domain.MutationHook) {
	s.before[op] = append(s.before[op], hooks...)
}

// After registers extension hooks to run inside the transaction after the
// operation's own writes, before commit.
func (s *Store) After(op domain.MutationOp, hooks ...domain.MutationHook) {
	s.after[op] = append(s.after[op], hooks...)
}

// RunProvisioningMutation wraps one logical administrative operation in a
// single transaction: pre-hooks, work, post-hooks, commit. On any error
// the transaction is rolled back and the error is propagated unchanged, so
// no other connection ever observes a half-applied operation. Notifying
// the daemon is the caller's business, strictly after this returns nil.
func (s *Store) RunProvisioningMutation(ctx context.Context, op domain.MutationOp, work func(domain.MutationTx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	mtx := &mutationTx{tx: tx}

	run := func() error {
		for _, hook := range s.before[op] {
			if err := hook(ctx, mtx, op); err != nil {
				return err
			}
		}
		if err := work(mtx); err != nil {
			return err
		}
		for _, hook := range s.after[op] {
			if err := hook(ctx, mtx, op); err != nil {
				return err
			}
		}
		return nil
	}

	if err := run(); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", op, err)
	}
	return nil
}

// mutationTx implements domain.MutationTx over one open transaction.
type mutationTx struct {
	tx *sql.Tx
}

var _ domain.MutationTx = (*mutationTx)(nil)

func (m *mutationTx) exec(ctx context.Context, query string, args ...any) error {
	if _, err := m.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("executing mutation: %w", err)
	}
	return nil
}
