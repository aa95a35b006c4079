package queries

import (
	"context"

	"supplychain/internal/core/domain/model/item"

	"gorm.io/gorm"
)

// GetItemDetailsQueryHandler retrieves one item's full record from the
// database. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type GetItemDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetItemDetailsQueryHandler creates a handler for item detail queries.
// Requires a GORM database connection for query execution.
func NewGetItemDetailsQueryHandler(db *gorm.DB) GetItemDetailsQueryHandler {
	return GetItemDetailsQueryHandler{db: db}
}

// Handle executes the query. An unknown item id is not an error: the zero
// response is returned instead.
func (h GetItemDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetItemDetailsQuery,
) (GetItemDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetItemDetailsQueryResponse{}, err
	}

	var details GetItemDetailsQueryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			quantity,
			sender,
			receiver,
			status,
			additional_info
		FROM items
		WHERE id = ?
	`, query.ItemID().Int64()).Rows()
	if err != nil {
		return GetItemDetailsQueryResponse{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var status int

		err = rows.Scan(
			&details.ID,
			&details.Name,
			&details.Quantity,
			&details.Sender,
			&details.Receiver,
			&status,
			&details.AdditionalInfo,
		)
		if err != nil {
			return GetItemDetailsQueryResponse{}, err
		}

		details.Status = item.Status(status).String()
	}

	if err = rows.Err(); err != nil {
		return GetItemDetailsQueryResponse{}, err
	}

	return details, nil
}
