package queries

import (
	"context"

	"supplychain/internal/core/domain/model/item"

	"gorm.io/gorm"
)

// GetUndeliveredItemsQueryHandler retrieves all items that have not been
// delivered yet. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type GetUndeliveredItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetUndeliveredItemsQueryHandler creates a handler for undelivered item
// queries. Requires a GORM database connection for query execution.
func NewGetUndeliveredItemsQueryHandler(db *gorm.DB) GetUndeliveredItemsQueryHandler {
	return GetUndeliveredItemsQueryHandler{db: db}
}

// Handle executes the query. Items are listed in creation order.
func (h GetUndeliveredItemsQueryHandler) Handle(
	ctx context.Context,
	query GetUndeliveredItemsQuery,
) (GetUndeliveredItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUndeliveredItemsQueryResponse{}, err
	}

	var response GetUndeliveredItemsQueryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			quantity,
			status
		FROM items
		WHERE status != ?
		ORDER BY id
	`, int(item.Delivered)).Rows()
	if err != nil {
		return GetUndeliveredItemsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			summary ItemSummaryResponse
			status  int
		)

		err = rows.Scan(&summary.ID, &summary.Name, &summary.Quantity, &status)
		if err != nil {
			return GetUndeliveredItemsQueryResponse{}, err
		}

		summary.Status = item.Status(status).String()
		response.Items = append(response.Items, summary)
	}

	if err = rows.Err(); err != nil {
		return GetUndeliveredItemsQueryResponse{}, err
	}

	return response, nil
}
