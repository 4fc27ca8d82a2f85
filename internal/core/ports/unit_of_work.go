package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command, ensuring isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Client code
// manages the transaction lifecycle explicitly; every lifecycle transition
// runs as a single unit of work so partial field updates are never
// observable.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Safe to defer after Commit; a finished transaction is reported, not
	// re-rolled.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// SettingsRepository returns a SettingsRepository bound to the current
	// transaction.
	SettingsRepository() SettingsRepository
}
