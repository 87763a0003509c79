package service

import "gorm.io/gorm"

// runTx executes fn inside a database transaction. A nil db runs fn directly
// with a nil handle, which is how stub-backed unit tests exercise service
// logic without a database.
func runTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.Transaction(fn)
}
