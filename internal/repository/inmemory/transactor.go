package inmemory

import "context"

// Transactor is a pass-through database.Transactor. The map-backed
// repositories have no transaction concept, so fn runs directly.
type Transactor struct{}

func NewTransactor() Transactor {
	return Transactor{}
}

func (Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
