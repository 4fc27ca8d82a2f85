// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// authorization, transaction management, persistence, and (for staff
// decisions) post-commit notification.
package commands

import (
	"context"

	"foodbank/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions keep each lifecycle transition atomic.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SettingsRepoFactory provides access to the settings repository within
	// a transaction.
	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions for operations that read settings while
	// writing orders, such as order creation.
	UoW interface {
		TxManager
		OrderRepoFactory
		SettingsRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
