// Package commands contains the business operations that modify order state.
// Implements the Command pattern for the write side of the CQRS split: every
// command is a constructor-guarded value, and every handler validates the
// command before mutating the aggregate inside a transaction.
package commands

import (
	"context"

	"orders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
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

	// OrderUoW manages a transaction around order persistence.
	// Every mutating use case performs one read and one write inside it.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates a fresh OrderUoW per use-case invocation.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
