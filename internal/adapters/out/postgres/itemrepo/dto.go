// Package itemrepo provides data transfer objects and mapping functions for
// item persistence. This package implements the repository pattern for the
// item domain aggregate, handling the conversion between domain entities and
// database representations.
package itemrepo

import (
	"supplychain/internal/core/domain/model/item"
	"supplychain/internal/core/domain/model/kernel"
)

// ItemDTO represents the database structure for persisting item aggregates.
// The transaction log lives in its own table keyed by (item_id, recorded_at)
// so that a re-recorded timestamp overwrites the stored note.
type ItemDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement:false"`
	Name           string
	Quantity       int
	Sender         string
	Receiver       string
	Status         int `gorm:"index"`
	AdditionalInfo string
	Transactions   []TransactionDTO `gorm:"foreignKey:ItemID;references:ID"`
}

// TableName specifies the database table name for item entities.
func (ItemDTO) TableName() string {
	return "items"
}

// TransactionDTO represents one entry of an item's transaction log.
// RecordedAt is a unix-second timestamp; together with the item id it forms
// the primary key.
type TransactionDTO struct {
	ItemID     int64 `gorm:"primaryKey;autoIncrement:false"`
	RecordedAt int64 `gorm:"primaryKey;autoIncrement:false"`
	Note       string
}

// TableName specifies the database table name for transaction log entries.
func (TransactionDTO) TableName() string {
	return "item_transactions"
}

// fromDomain converts an item domain aggregate to its database representation.
func fromDomain(aggregate *item.Item) ItemDTO {
	transactions := aggregate.Transactions()
	transactionDTOs := make([]TransactionDTO, 0, len(transactions))
	for recordedAt, note := range transactions {
		transactionDTOs = append(transactionDTOs, TransactionDTO{
			ItemID:     aggregate.ID().Int64(),
			RecordedAt: recordedAt,
			Note:       note,
		})
	}

	return ItemDTO{
		ID:             aggregate.ID().Int64(),
		Name:           aggregate.Name(),
		Quantity:       aggregate.Quantity(),
		Sender:         aggregate.Sender().String(),
		Receiver:       aggregate.Receiver().String(),
		Status:         int(aggregate.Status()),
		AdditionalInfo: aggregate.AdditionalInfo(),
		Transactions:   transactionDTOs,
	}
}

// toDomain converts a database DTO to an item domain aggregate.
// Reconstructs the complete aggregate including the transaction log using
// RestoreItem.
func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.NewItemID(dto.ID)
	if err != nil {
		return nil, err
	}

	sender, err := kernel.NewIdentity(dto.Sender)
	if err != nil {
		return nil, err
	}

	receiver, err := kernel.NewIdentity(dto.Receiver)
	if err != nil {
		return nil, err
	}

	transactions := make(map[int64]string, len(dto.Transactions))
	for _, transactionDTO := range dto.Transactions {
		transactions[transactionDTO.RecordedAt] = transactionDTO.Note
	}

	return item.RestoreItem(
		id,
		dto.Name,
		dto.Quantity,
		sender,
		receiver,
		item.Status(dto.Status),
		dto.AdditionalInfo,
		transactions,
	)
}
