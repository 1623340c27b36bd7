package services

import (
	"strings"

	"gorm.io/gorm"
)

// runInTx executes fn inside one transaction, retrying store-level aborts a
// bounded number of times. Exhausted retries surface as ErrStoreConflict so
// the handler can answer 503 instead of leaking a driver error.
func runInTx(db *gorm.DB, retries int, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 0; attempt <= retries; attempt++ {
		err = db.Transaction(fn)
		if err == nil || !isRetryable(err) {
			return err
		}
	}
	return ErrStoreConflict
}

// Matched by message: the postgres and sqlite drivers report transient aborts
// with different concrete types but stable wording.
func isRetryable(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "serialization") ||
		strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "busy")
}
