package stor

import (
	"gorm.io/gorm"
)

// WithTx runs fn in a single transaction. Failures are returned to the caller as is;
// nothing is retried.
func WithTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn)
}
