package postgres

import (
	"supplychain/internal/adapters/out/postgres/itemrepo"
	"supplychain/internal/adapters/out/postgres/notifyrepo"
	"supplychain/internal/adapters/out/postgres/ownershiprepo"

	"gorm.io/gorm"
)

// Migrate creates the ledger schema: the item and transaction-log tables,
// the ownership table, the notification feed, and the item id sequence.
// Ids handed out by the sequence start at 1 and are never reused.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&itemrepo.ItemDTO{},
		&itemrepo.TransactionDTO{},
		&ownershiprepo.RecordDTO{},
		&notifyrepo.NotificationDTO{},
	)
	if err != nil {
		return err
	}

	return db.Exec("CREATE SEQUENCE IF NOT EXISTS item_ids START 1").Error
}
