// Package repomanager wires the concrete repositories to a shared database
// handle and owns schema migrations.
package repomanager

import (
	"context"

	"github.com/akarpov87/taskkeep/internal/server/repositories/tasks"
	"github.com/akarpov87/taskkeep/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Tasks() tasks.Repository

	// Ping reports whether the underlying store is reachable; used by /health.
	Ping(ctx context.Context) error
	Close() error
}
