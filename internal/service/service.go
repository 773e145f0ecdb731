// Package service implements the ledger-consistency workflows. Every entry
// operation runs inside exactly one database transaction; any failure rolls
// back all mutations performed since it began, ledger inserts included.
package service

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

const fechaISO = "2006-01-02T15:04:05Z"

func formatFecha(t time.Time) string { return t.UTC().Format(fechaISO) }
