// Package sqladmin performs the physical database-server work behind
// customer SQL objects.
package sqladmin

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/neomorfeo/hostiq/internal/domain"
)

// FileServer administers file-backed sqlite customer databases under one
// data directory. Dropping a database removes its file; logins and grants
// have no server-side representation in this backend, so DropLogin and
// RevokeAccess only record that the catalog reference is gone.
type FileServer struct {
	dataDir string
	log     *slog.Logger
}

var _ domain.ServerAdmin = (*FileServer)(nil)

// New creates a server admin over dataDir.
func New(dataDir string, log *slog.Logger) *FileServer {
	return &FileServer{dataDir: dataDir, log: log}
}

// DropDatabase removes the database file. A missing file is not an
// error: the catalog row is authoritative and the file may never have
// been materialized.
func (f *FileServer) DropDatabase(ctx context.Context, name string) error {
	path := filepath.Join(f.dataDir, name+".db")
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing database file %s: %w", path, err)
	}
	f.log.Info("dropped database", "name", name)
	return nil
}

// DropLogin removes the last reference to a login. File-backed databases
// carry no accounts, so there is nothing to remove server-side.
func (f *FileServer) DropLogin(ctx context.Context, name, host string) error {
	f.log.Info("dropped login", "name", name, "host", host)
	return nil
}

// RevokeAccess withdraws one login's grant on one database.
func (f *FileServer) RevokeAccess(ctx context.Context, name, host, database string) error {
	f.log.Info("revoked access", "name", name, "host", host, "database", database)
	return nil
}
