package http

import (
	"net/http"

	"supplychain/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetItemDetails handles GET /api/v1/items/:id. An unknown id yields the
// zero-valued read model, not a 404.
func (s *Server) GetItemDetails(ctx echo.Context) error {
	itemID, err := itemIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	query, err := queries.NewGetItemDetailsQuery(itemID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	details, err := s.queries.GetItemDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, "Failed to retrieve item details")
	}

	return ctx.JSON(http.StatusOK, ItemDetails{
		ID:             details.ID,
		Name:           details.Name,
		Quantity:       details.Quantity,
		Sender:         details.Sender,
		Receiver:       details.Receiver,
		Status:         details.Status,
		AdditionalInfo: details.AdditionalInfo,
	})
}

// GetAdditionalInfo handles GET /api/v1/items/:id/additional-info.
func (s *Server) GetAdditionalInfo(ctx echo.Context) error {
	itemID, err := itemIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	query, err := queries.NewGetAdditionalInfoQuery(itemID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	info, err := s.queries.GetAdditionalInfo.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, "Failed to retrieve additional info")
	}

	return ctx.JSON(http.StatusOK, AdditionalInfoResponse{AdditionalInfo: info})
}

// GetOwnership handles GET /api/v1/items/:id/ownership. The view is
// caller-relative, so this route requires the identity header.
func (s *Server) GetOwnership(ctx echo.Context) error {
	callerID, err := caller(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	itemID, err := itemIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	query, err := queries.NewGetOwnershipQuery(itemID, callerID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	ownership, err := s.queries.GetOwnership.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, "Failed to retrieve ownership")
	}

	return ctx.JSON(http.StatusOK, OwnershipResponse{
		IsOwner:   ownership.IsOwner,
		GrantedAt: ownership.GrantedAt,
	})
}

// GetTransaction handles GET /api/v1/items/:id/transactions/:recordedAt.
// A timestamp with no note yields an empty note, not a 404.
func (s *Server) GetTransaction(ctx echo.Context) error {
	itemID, err := itemIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	recordedAt, err := parseRecordedAt(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid timestamp")
	}

	query, err := queries.NewGetTransactionQuery(itemID, recordedAt)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	note, err := s.queries.GetTransaction.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, "Failed to retrieve transaction")
	}

	return ctx.JSON(http.StatusOK, TransactionResponse{
		RecordedAt: recordedAt,
		Note:       note,
	})
}

// GetUndeliveredItems handles GET /api/v1/items - lists every item that has
// not reached the delivered status.
func (s *Server) GetUndeliveredItems(ctx echo.Context) error {
	query := queries.NewGetUndeliveredItemsQuery()

	result, err := s.queries.GetUndeliveredItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, "Failed to retrieve items")
	}

	response := make([]ItemSummary, len(result.Items))
	for i, summary := range result.Items {
		response[i] = ItemSummary{
			ID:       summary.ID,
			Name:     summary.Name,
			Quantity: summary.Quantity,
			Status:   summary.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetItemNotifications handles GET /api/v1/items/:id/notifications.
func (s *Server) GetItemNotifications(ctx echo.Context) error {
	itemID, err := itemIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	query, err := queries.NewGetItemNotificationsQuery(itemID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	feed, err := s.queries.GetItemNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, "Failed to retrieve notifications")
	}

	response := make([]NotificationView, len(feed.Notifications))
	for i, entry := range feed.Notifications {
		response[i] = NotificationView{
			ID:         entry.ID.String(),
			Kind:       entry.Kind,
			OccurredAt: entry.OccurredAt,
			Attributes: entry.Attributes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
