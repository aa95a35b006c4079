package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOwnershipQueryHandler retrieves the caller's ownership grant from the
// database.
type GetOwnershipQueryHandler struct {
	db *gorm.DB
}

// NewGetOwnershipQueryHandler creates a handler for ownership queries.
// Requires a GORM database connection for query execution.
func NewGetOwnershipQueryHandler(db *gorm.DB) GetOwnershipQueryHandler {
	return GetOwnershipQueryHandler{db: db}
}

// Handle executes the query. A caller with no live grant gets the zero
// response, never an error.
func (h GetOwnershipQueryHandler) Handle(
	ctx context.Context,
	query GetOwnershipQuery,
) (GetOwnershipQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOwnershipQueryResponse{}, err
	}

	var response GetOwnershipQueryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT granted_at
		FROM ownership_records
		WHERE item_id = ? AND owner = ?
	`, query.ItemID().Int64(), query.Caller().String()).Rows()
	if err != nil {
		return GetOwnershipQueryResponse{}, err
	}
	defer rows.Close()

	if rows.Next() {
		if err = rows.Scan(&response.GrantedAt); err != nil {
			return GetOwnershipQueryResponse{}, err
		}
		response.IsOwner = true
	}

	if err = rows.Err(); err != nil {
		return GetOwnershipQueryResponse{}, err
	}

	return response, nil
}
