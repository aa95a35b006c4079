package ownershiprepo

import (
	"context"
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/ownership"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOwnershipRepository implements OwnershipRepository using GORM.
type GormOwnershipRepository struct {
	db *gorm.DB
}

// NewGormOwnershipRepository creates a new GORM ownership repository.
func NewGormOwnershipRepository(db *gorm.DB) *GormOwnershipRepository {
	return &GormOwnershipRepository{db: db}
}

// Add saves an ownership grant. A grant re-issued to the same (item, owner)
// pair refreshes the stored timestamp.
func (r *GormOwnershipRepository) Add(ctx context.Context, record *ownership.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_id"}, {Name: "owner"}},
			DoUpdates: clause.AssignmentColumns([]string{"granted_at"}),
		}).
		Create(&dto).Error
}

// Delete removes the grant keyed by (itemID, owner).
func (r *GormOwnershipRepository) Delete(ctx context.Context, itemID kernel.ItemID, owner kernel.Identity) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	if err := owner.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("item_id = ? AND owner = ?", itemID.Int64(), owner.String()).
		Delete(&RecordDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ownership", grantKey(itemID, owner))
	}

	return nil
}

// Get retrieves the grant keyed by (itemID, owner).
func (r *GormOwnershipRepository) Get(
	ctx context.Context,
	itemID kernel.ItemID,
	owner kernel.Identity,
) (*ownership.Record, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	var dto RecordDTO
	err := r.db.WithContext(ctx).
		First(&dto, "item_id = ? AND owner = ?", itemID.Int64(), owner.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ownership", grantKey(itemID, owner))
		}
		return nil, err
	}

	return toDomain(dto)
}

func grantKey(itemID kernel.ItemID, owner kernel.Identity) string {
	return fmt.Sprintf("%s/%s", itemID, owner)
}
