package database

import "context"

// Transactor runs fn with every repository call inside one transaction.
// The postgresql package provides the production implementation; the
// inmemory package provides a pass-through for tests.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
