// Package http exposes the item ledger over a REST API built on Echo.
// Every mutating route reads the caller identity from the X-Caller-Id
// header; ownership checks happen in the command handlers, the transport
// only translates their errors to status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/item"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CallerHeader carries the identity a request acts as.
const CallerHeader = "X-Caller-Id"

// CommandHandlers groups the write-side use cases the server dispatches to.
type CommandHandlers struct {
	CreateItem        commands.CreateItemCommandHandler
	MarkInTransit     commands.MarkInTransitCommandHandler
	MarkDelivered     commands.MarkDeliveredCommandHandler
	TransferOwnership commands.TransferOwnershipCommandHandler
	SetName           commands.SetNameCommandHandler
	SetQuantity       commands.SetQuantityCommandHandler
	IncreaseQuantity  commands.IncreaseQuantityCommandHandler
	DecreaseQuantity  commands.DecreaseQuantityCommandHandler
	SetAdditionalInfo commands.SetAdditionalInfoCommandHandler
	AddTransaction    commands.AddTransactionCommandHandler
}

// QueryHandlers groups the read-side use cases the server dispatches to.
type QueryHandlers struct {
	GetItemDetails       queries.GetItemDetailsQueryHandler
	GetAdditionalInfo    queries.GetAdditionalInfoQueryHandler
	GetOwnership         queries.GetOwnershipQueryHandler
	GetTransaction       queries.GetTransactionQueryHandler
	GetUndeliveredItems  queries.GetUndeliveredItemsQueryHandler
	GetItemNotifications queries.GetItemNotificationsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// RegisterRoutes binds every ledger route under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/items", s.CreateItem)
	api.GET("/items", s.GetUndeliveredItems)
	api.GET("/items/:id", s.GetItemDetails)

	api.POST("/items/:id/in-transit", s.MarkInTransit)
	api.POST("/items/:id/delivered", s.MarkDelivered)
	api.POST("/items/:id/transfer", s.TransferOwnership)

	api.PUT("/items/:id/name", s.SetName)
	api.PUT("/items/:id/quantity", s.SetQuantity)
	api.POST("/items/:id/quantity/increase", s.IncreaseQuantity)
	api.POST("/items/:id/quantity/decrease", s.DecreaseQuantity)
	api.PUT("/items/:id/additional-info", s.SetAdditionalInfo)
	api.GET("/items/:id/additional-info", s.GetAdditionalInfo)

	api.POST("/items/:id/transactions", s.AddTransaction)
	api.GET("/items/:id/transactions/:recordedAt", s.GetTransaction)
	api.GET("/items/:id/ownership", s.GetOwnership)
	api.GET("/items/:id/notifications", s.GetItemNotifications)
}

// caller extracts the identity the request acts as from the CallerHeader.
func caller(ctx echo.Context) (kernel.Identity, error) {
	value := ctx.Request().Header.Get(CallerHeader)
	if value == "" {
		return kernel.Identity{}, errs.NewValueIsRequiredError(CallerHeader)
	}

	return kernel.NewIdentity(value)
}

// itemIDParam parses the :id path parameter.
func itemIDParam(ctx echo.Context) (kernel.ItemID, error) {
	value, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return kernel.ItemID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	return kernel.NewItemID(value)
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "Missing or invalid " + CallerHeader + " header",
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// commandError maps a failed command to an HTTP response. Ownership
// rejections come back as 403 and lifecycle violations as 409; everything
// the command constructors reject is a 400.
func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "Caller does not own this item",
		})
	case errors.Is(err, item.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Status transition is not allowed: " + err.Error(),
		})
	case errors.Is(err, item.ErrInsufficientQuantity):
		return badRequest(ctx, "Insufficient quantity: "+err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Item not found",
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return badRequest(ctx, "Invalid request: "+err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}

func queryError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
