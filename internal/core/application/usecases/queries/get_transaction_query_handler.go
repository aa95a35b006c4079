package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetTransactionQueryHandler retrieves a single transaction note from the
// database.
type GetTransactionQueryHandler struct {
	db *gorm.DB
}

// NewGetTransactionQueryHandler creates a handler for transaction note
// queries. Requires a GORM database connection for query execution.
func NewGetTransactionQueryHandler(db *gorm.DB) GetTransactionQueryHandler {
	return GetTransactionQueryHandler{db: db}
}

// Handle executes the query. A timestamp with no note recorded under it
// yields the empty string.
func (h GetTransactionQueryHandler) Handle(ctx context.Context, query GetTransactionQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var note string

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT note
		FROM item_transactions
		WHERE item_id = ? AND recorded_at = ?
	`, query.ItemID().Int64(), query.RecordedAt()).Rows()
	if err != nil {
		return "", err
	}
	defer rows.Close()

	if rows.Next() {
		if err = rows.Scan(&note); err != nil {
			return "", err
		}
	}

	if err = rows.Err(); err != nil {
		return "", err
	}

	return note, nil
}
