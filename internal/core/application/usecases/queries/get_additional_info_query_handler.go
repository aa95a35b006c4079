package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAdditionalInfoQueryHandler retrieves an item's free-form description
// from the database.
type GetAdditionalInfoQueryHandler struct {
	db *gorm.DB
}

// NewGetAdditionalInfoQueryHandler creates a handler for description
// queries. Requires a GORM database connection for query execution.
func NewGetAdditionalInfoQueryHandler(db *gorm.DB) GetAdditionalInfoQueryHandler {
	return GetAdditionalInfoQueryHandler{db: db}
}

// Handle executes the query. An unknown item id yields the empty string.
func (h GetAdditionalInfoQueryHandler) Handle(ctx context.Context, query GetAdditionalInfoQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var additionalInfo string

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT additional_info
		FROM items
		WHERE id = ?
	`, query.ItemID().Int64()).Rows()
	if err != nil {
		return "", err
	}
	defer rows.Close()

	if rows.Next() {
		if err = rows.Scan(&additionalInfo); err != nil {
			return "", err
		}
	}

	if err = rows.Err(); err != nil {
		return "", err
	}

	return additionalInfo, nil
}
