package repository

import "context"

// TxRunner runs a function inside a single database transaction. Every
// repository call made with the context passed to fn joins that
// transaction; if fn returns an error the whole batch rolls back.
//
// Finalizing a sale and allocating a payment across sales both depend on
// this: a partially applied batch would leave totals and balances
// inconsistent.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
