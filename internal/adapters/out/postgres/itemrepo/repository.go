package itemrepo

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/item"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ItemID, aggregate any)
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextID reserves the next value of the item id sequence. Reserved ids are
// never reused, even when the transaction that reserved one rolls back.
func (r *GormItemRepository) NextID(ctx context.Context) (kernel.ItemID, error) {
	var value int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval('item_ids')").Scan(&value).Error; err != nil {
		return kernel.ItemID{}, err
	}

	return kernel.NewItemID(value)
}

// Add saves a new item to the database.
func (r *GormItemRepository) Add(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing item to the database. Columns are selected
// explicitly so that zero values (an empty name, quantity zero) are written
// too. Transaction log entries are upserted on (item_id, recorded_at), which
// makes a re-recorded timestamp overwrite the stored note.
func (r *GormItemRepository) Update(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "quantity", "status", "additional_info").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(dto.Transactions) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "item_id"}, {Name: "recorded_at"}},
				DoUpdates: clause.AssignmentColumns([]string{"note"}),
			}).
			Create(&dto.Transactions).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an item by id, including its transaction log.
func (r *GormItemRepository) Get(ctx context.Context, id kernel.ItemID) (*item.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	err := r.db.WithContext(ctx).
		Preload("Transactions").
		First(&dto, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
