// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS layout.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and event publication after commit.
package commands

import (
	"context"

	"appraise/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest unit of work that covers the aggregates
// they touch.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ReportRepoFactory provides access to the report repository within a transaction.
	ReportRepoFactory interface {
		ReportRepository() ports.ReportRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
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

	// ReportUoW manages transactions spanning the report and order aggregates.
	// Report creation commits the new report and the order's terminal
	// transition atomically.
	ReportUoW interface {
		TxManager
		OrderRepoFactory
		ReportRepoFactory
	}

	// ReportUoWFactory creates new report unit of work instances.
	ReportUoWFactory interface {
		Create() ReportUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
