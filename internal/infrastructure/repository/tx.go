package repository

import (
	"context"

	domainRepo "github.com/tillpoint/tillpoint-api/internal/domain/repository"
	"gorm.io/gorm"
)

type ctxKey string

// txKey is the context key carrying the per-operation transaction handle
const txKey ctxKey = "db_tx"

// withTx returns a context carrying the given transaction
func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// dbFromContext resolves the connection to use: the transaction bound to
// the context if one is open, otherwise the shared connection. Every
// repository method goes through this, so calls made inside
// TxRunner.InTx automatically join the surrounding transaction.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}

type txRunner struct {
	db *gorm.DB
}

// NewTxRunner creates a TxRunner backed by gorm transactions
func NewTxRunner(db *gorm.DB) domainRepo.TxRunner {
	return &txRunner{db: db}
}

func (r *txRunner) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}
