package cmd

import (
	"atelier/internal/adapters/in/http"
	"atelier/internal/adapters/out/postgres"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/services"
	"atelier/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *zap.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	allocator  services.IdentifierAllocator
	clock      commands.Clock
}

// NewCompositionRoot wires handlers over gormDB. A nil clock uses the UTC
// wall clock.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger, clock commands.Clock) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		allocator:  services.NewIdentifierAllocator(nil, config.IdentifierMaxAttempts),
		clock:      clock,
	}
}

func (c *CompositionRoot) orderingUoWFactory() commands.OrderingUoWFactory {
	return FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) jobOrderUoWFactory() commands.JobOrderUoWFactory {
	return FuncJobOrderUoWFactory(func() commands.JobOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateJobOrderCommandHandler() commands.CreateJobOrderCommandHandler {
	return commands.NewCreateJobOrderCommandHandler(c.orderingUoWFactory(), c.allocator, c.config.DeliveryLeadDays, c.clock)
}

func (c *CompositionRoot) CreateUpdateJobOrderCommandHandler() commands.UpdateJobOrderCommandHandler {
	return commands.NewUpdateJobOrderCommandHandler(c.orderingUoWFactory())
}

func (c *CompositionRoot) CreateUpdateJobOrderStatusCommandHandler() commands.UpdateJobOrderStatusCommandHandler {
	return commands.NewUpdateJobOrderStatusCommandHandler(c.jobOrderUoWFactory())
}

func (c *CompositionRoot) CreateSettleJobOrderDeliveryCommandHandler() commands.SettleJobOrderDeliveryCommandHandler {
	return commands.NewSettleJobOrderDeliveryCommandHandler(c.jobOrderUoWFactory())
}

func (c *CompositionRoot) CreateToggleJobOrderBlockCommandHandler() commands.ToggleJobOrderBlockCommandHandler {
	return commands.NewToggleJobOrderBlockCommandHandler(c.jobOrderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteJobOrderCommandHandler() commands.DeleteJobOrderCommandHandler {
	return commands.NewDeleteJobOrderCommandHandler(c.jobOrderUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f, c.allocator)
}

func (c *CompositionRoot) CreateCreateMaterialCommandHandler() commands.CreateMaterialCommandHandler {
	var f commands.MaterialUoWFactory = FuncMaterialUoWFactory(func() commands.MaterialUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMaterialCommandHandler(f, c.allocator)
}

func (c *CompositionRoot) CreateCreateReceiptCommandHandler() commands.CreateReceiptCommandHandler {
	var f commands.ReceiptUoWFactory = FuncReceiptUoWFactory(func() commands.ReceiptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateReceiptCommandHandler(f, c.allocator, c.clock)
}

func (c *CompositionRoot) CreateCreateSaleCommandHandler() commands.CreateSaleCommandHandler {
	var f commands.SaleUoWFactory = FuncSaleUoWFactory(func() commands.SaleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateSaleCommandHandler(f, c.allocator, c.clock)
}

func (c *CompositionRoot) CreateGetJobOrderQueryHandler() queries.GetJobOrderQueryHandler {
	return queries.NewGetJobOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListJobOrdersQueryHandler() queries.ListJobOrdersQueryHandler {
	return queries.NewListJobOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRecentJobOrdersQueryHandler() queries.GetRecentJobOrdersQueryHandler {
	return queries.NewGetRecentJobOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobOrderStatsQueryHandler() queries.GetJobOrderStatsQueryHandler {
	return queries.NewGetJobOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobOrderItemsQueryHandler() queries.GetJobOrderItemsQueryHandler {
	return queries.NewGetJobOrderItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobOrderMeasurementsQueryHandler() queries.GetJobOrderMeasurementsQueryHandler {
	return queries.NewGetJobOrderMeasurementsQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the HTTP adapter with every handler.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		http.CommandHandlers{
			CreateJobOrder: c.CreateCreateJobOrderCommandHandler(),
			UpdateJobOrder: c.CreateUpdateJobOrderCommandHandler(),
			UpdateStatus:   c.CreateUpdateJobOrderStatusCommandHandler(),
			SettleDelivery: c.CreateSettleJobOrderDeliveryCommandHandler(),
			ToggleBlock:    c.CreateToggleJobOrderBlockCommandHandler(),
			DeleteJobOrder: c.CreateDeleteJobOrderCommandHandler(),
			CreateCustomer: c.CreateCreateCustomerCommandHandler(),
			CreateMaterial: c.CreateCreateMaterialCommandHandler(),
			CreateReceipt:  c.CreateCreateReceiptCommandHandler(),
			CreateSale:     c.CreateCreateSaleCommandHandler(),
		},
		http.QueryHandlers{
			GetJobOrder:          c.CreateGetJobOrderQueryHandler(),
			ListJobOrders:        c.CreateListJobOrdersQueryHandler(),
			RecentJobOrders:      c.CreateGetRecentJobOrdersQueryHandler(),
			JobOrderStats:        c.CreateGetJobOrderStatsQueryHandler(),
			JobOrderItems:        c.CreateGetJobOrderItemsQueryHandler(),
			JobOrderMeasurements: c.CreateGetJobOrderMeasurementsQueryHandler(),
		},
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewDueDeliveriesJob(c.CreateListJobOrdersQueryHandler(), c.config.DueDeliveriesSchedule, c.clock, c.logger),
	)
}

type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

type FuncJobOrderUoWFactory func() commands.JobOrderUoW

func (f FuncJobOrderUoWFactory) Create() commands.JobOrderUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncMaterialUoWFactory func() commands.MaterialUoW

func (f FuncMaterialUoWFactory) Create() commands.MaterialUoW {
	return f()
}

type FuncReceiptUoWFactory func() commands.ReceiptUoW

func (f FuncReceiptUoWFactory) Create() commands.ReceiptUoW {
	return f()
}

type FuncSaleUoWFactory func() commands.SaleUoW

func (f FuncSaleUoWFactory) Create() commands.SaleUoW {
	return f()
}
