package http

import (
	"net/http"
	"strconv"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateItem handles POST /api/v1/items - registers a new item with the
// caller as sender and initial owner.
func (s *Server) CreateItem(ctx echo.Context) error {
	callerID, err := caller(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var request CreateItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	receiver, err := kernel.NewIdentity(request.Receiver)
	if err != nil {
		return badRequest(ctx, "Invalid receiver: "+err.Error())
	}

	cmd, err := commands.NewCreateItemCommand(
		callerID,
		request.Name,
		request.Quantity,
		receiver,
		request.AdditionalInfo,
	)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	assignedID, err := s.commands.CreateItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateItemResponse{ID: assignedID.Int64()})
}

// MarkInTransit handles POST /api/v1/items/:id/in-transit.
func (s *Server) MarkInTransit(ctx echo.Context) error {
	callerID, err := caller(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	itemID, err := itemIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewMarkInTransitCommand(itemID, callerID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.commands.MarkInTransit.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/items/:id/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	callerID, err := caller(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	itemID, err := itemIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewMarkDeliveredCommand(itemID, callerID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.commands.MarkDelivered.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransferOwnership handles POST /api/v1/items/:id/transfer.
func (s *Server) TransferOwnership(ctx echo.Context) error {
	callerID, err := caller(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	itemID, err := itemIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var request TransferOwnershipRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newOwner, err := kernel.NewIdentity(request.NewOwner)
	if err != nil {
		return badRequest(ctx, "Invalid new owner: "+err.Error())
	}

	cmd, err := commands.NewTransferOwnershipCommand(itemID, callerID, newOwner)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.commands.TransferOwnership.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetName handles PUT /api/v1/items/:id/name.
func (s *Server) SetName(ctx echo.Context) error {
	callerID, err := caller(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	itemID, err := itemIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var request SetNameRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetNameCommand(itemID, callerID, request.Name)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.commands.SetName.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetQuantity handles PUT /api/v1/items/:id/quantity.
func (s *Server) SetQuantity(ctx echo.Context) error {
	callerID, err := caller(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	itemID, err := itemIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var request SetQuantityRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetQuantityCommand(itemID, callerID, request.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity: "+err.Error())
	}

	if err = s.commands.SetQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// IncreaseQuantity handles POST /api/v1/items/:id/quantity/increase.
func (s *Server) IncreaseQuantity(ctx echo.Context) error {
	callerID, err := caller(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	itemID, err := itemIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var request ChangeQuantityRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewIncreaseQuantityCommand(itemID, callerID, request.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	if err = s.commands.IncreaseQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DecreaseQuantity handles POST /api/v1/items/:id/quantity/decrease.
func (s *Server) DecreaseQuantity(ctx echo.Context) error {
	callerID, err := caller(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	itemID, err := itemIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var request ChangeQuantityRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewDecreaseQuantityCommand(itemID, callerID, request.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	if err = s.commands.DecreaseQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetAdditionalInfo handles PUT /api/v1/items/:id/additional-info.
func (s *Server) SetAdditionalInfo(ctx echo.Context) error {
	callerID, err := caller(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	itemID, err := itemIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var request SetAdditionalInfoRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetAdditionalInfoCommand(itemID, callerID, request.AdditionalInfo)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.commands.SetAdditionalInfo.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddTransaction handles POST /api/v1/items/:id/transactions. Responds with
// the unix-second key the note was recorded under; a later note in the same
// second overwrites it.
func (s *Server) AddTransaction(ctx echo.Context) error {
	callerID, err := caller(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	itemID, err := itemIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var request AddTransactionRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddTransactionCommand(itemID, callerID, request.Note)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	recordedAt, err := s.commands.AddTransaction.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AddTransactionResponse{RecordedAt: recordedAt})
}

// parseRecordedAt parses the :recordedAt path parameter of transaction
// lookups.
func parseRecordedAt(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("recordedAt"), 10, 64)
}
