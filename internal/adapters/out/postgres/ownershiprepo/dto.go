// Package ownershiprepo provides data transfer objects and mapping functions
// for ownership record persistence. A row's presence is what makes an
// ownership live; transfers delete the old row and insert the new one.
package ownershiprepo

import (
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/ownership"
)

// RecordDTO represents the database structure for persisting ownership
// grants, keyed by (item_id, owner).
type RecordDTO struct {
	ItemID    int64  `gorm:"primaryKey;autoIncrement:false"`
	Owner     string `gorm:"primaryKey"`
	GrantedAt time.Time
}

// TableName specifies the database table name for ownership grants.
func (RecordDTO) TableName() string {
	return "ownership_records"
}

// fromDomain converts an ownership record to its database representation.
func fromDomain(record *ownership.Record) RecordDTO {
	return RecordDTO{
		ItemID:    record.ItemID().Int64(),
		Owner:     record.Owner().String(),
		GrantedAt: record.GrantedAt(),
	}
}

// toDomain converts a database DTO to an ownership record.
func toDomain(dto RecordDTO) (*ownership.Record, error) {
	itemID, err := kernel.NewItemID(dto.ItemID)
	if err != nil {
		return nil, err
	}

	owner, err := kernel.NewIdentity(dto.Owner)
	if err != nil {
		return nil, err
	}

	return ownership.NewRecord(itemID, owner, dto.GrantedAt)
}
