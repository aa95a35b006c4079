package cmd

import (
	"log/slog"

	httpserver "supplychain/internal/adapters/in/http"
	"supplychain/internal/adapters/out/observer"
	"supplychain/internal/adapters/out/postgres"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/ports"
	"supplychain/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      ports.SystemClock{},
		logger:     logger,
	}
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateItemCommandHandler() commands.CreateItemCommandHandler {
	return commands.NewCreateItemCommandHandler(c.createUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMarkInTransitCommandHandler() commands.MarkInTransitCommandHandler {
	return commands.NewMarkInTransitCommandHandler(c.createUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.createUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateTransferOwnershipCommandHandler() commands.TransferOwnershipCommandHandler {
	return commands.NewTransferOwnershipCommandHandler(c.createUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSetNameCommandHandler() commands.SetNameCommandHandler {
	return commands.NewSetNameCommandHandler(c.createUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSetQuantityCommandHandler() commands.SetQuantityCommandHandler {
	return commands.NewSetQuantityCommandHandler(c.createUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateIncreaseQuantityCommandHandler() commands.IncreaseQuantityCommandHandler {
	return commands.NewIncreaseQuantityCommandHandler(c.createUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDecreaseQuantityCommandHandler() commands.DecreaseQuantityCommandHandler {
	return commands.NewDecreaseQuantityCommandHandler(c.createUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSetAdditionalInfoCommandHandler() commands.SetAdditionalInfoCommandHandler {
	return commands.NewSetAdditionalInfoCommandHandler(c.createUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAddTransactionCommandHandler() commands.AddTransactionCommandHandler {
	return commands.NewAddTransactionCommandHandler(c.createUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() commands.DispatchNotificationsCommandHandler {
	publisher := observer.NewSlogNotificationPublisher(c.logger)
	return commands.NewDispatchNotificationsCommandHandler(c.createUoWFactory(), publisher)
}

func (c *CompositionRoot) CreateGetItemDetailsQueryHandler() queries.GetItemDetailsQueryHandler {
	return queries.NewGetItemDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAdditionalInfoQueryHandler() queries.GetAdditionalInfoQueryHandler {
	return queries.NewGetAdditionalInfoQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOwnershipQueryHandler() queries.GetOwnershipQueryHandler {
	return queries.NewGetOwnershipQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTransactionQueryHandler() queries.GetTransactionQueryHandler {
	return queries.NewGetTransactionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUndeliveredItemsQueryHandler() queries.GetUndeliveredItemsQueryHandler {
	return queries.NewGetUndeliveredItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetItemNotificationsQueryHandler() queries.GetItemNotificationsQueryHandler {
	return queries.NewGetItemNotificationsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every command and query handler into the REST
// server.
func (c *CompositionRoot) CreateHTTPServer() *httpserver.Server {
	return httpserver.NewServer(
		httpserver.CommandHandlers{
			CreateItem:        c.CreateCreateItemCommandHandler(),
			MarkInTransit:     c.CreateMarkInTransitCommandHandler(),
			MarkDelivered:     c.CreateMarkDeliveredCommandHandler(),
			TransferOwnership: c.CreateTransferOwnershipCommandHandler(),
			SetName:           c.CreateSetNameCommandHandler(),
			SetQuantity:       c.CreateSetQuantityCommandHandler(),
			IncreaseQuantity:  c.CreateIncreaseQuantityCommandHandler(),
			DecreaseQuantity:  c.CreateDecreaseQuantityCommandHandler(),
			SetAdditionalInfo: c.CreateSetAdditionalInfoCommandHandler(),
			AddTransaction:    c.CreateAddTransactionCommandHandler(),
		},
		httpserver.QueryHandlers{
			GetItemDetails:       c.CreateGetItemDetailsQueryHandler(),
			GetAdditionalInfo:    c.CreateGetAdditionalInfoQueryHandler(),
			GetOwnership:         c.CreateGetOwnershipQueryHandler(),
			GetTransaction:       c.CreateGetTransactionQueryHandler(),
			GetUndeliveredItems:  c.CreateGetUndeliveredItemsQueryHandler(),
			GetItemNotifications: c.CreateGetItemNotificationsQueryHandler(),
		},
	)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDispatchNotificationsCommandHandler(), c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
