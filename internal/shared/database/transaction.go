package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// WithTransaction runs fn inside a transaction with the context already
// attached to the tx handle, so repository methods can take it as their db
// argument unchanged. An error from fn rolls back; nil commits.
//
// Usage:
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    return repo.Save(ctx, tx, entity)
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errors.New("database: transaction function is nil")
	}

	return db.WithContext(ctx).Transaction(fn)
}
