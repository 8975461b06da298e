package cmd

import (
	"log/slog"

	deliveryhttp "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.DeliveryOrderUoWFactory = FuncDeliveryOrderUoWFactory(func() commands.DeliveryOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.DeliveryUserUoWFactory = FuncDeliveryUserUoWFactory(func() commands.DeliveryUserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkPickedUpCommandHandler() commands.MarkPickedUpCommandHandler {
	var f commands.DeliveryOrderUoWFactory = FuncDeliveryOrderUoWFactory(func() commands.DeliveryOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkPickedUpCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	var f commands.DeliveryOrderUoWFactory = FuncDeliveryOrderUoWFactory(func() commands.DeliveryOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveredCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.DeliveryOrderUoWFactory = FuncDeliveryOrderUoWFactory(func() commands.DeliveryOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDeliveryCommandHandler() commands.DeleteDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeCancelledCommandHandler() commands.PurgeCancelledCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeCancelledCommandHandler(f)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryByOrderQueryHandler() queries.GetDeliveryByOrderQueryHandler {
	return queries.NewGetDeliveryByOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesByStatusQueryHandler() queries.GetDeliveriesByStatusQueryHandler {
	return queries.NewGetDeliveriesByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierDeliveriesQueryHandler() queries.GetCourierDeliveriesQueryHandler {
	return queries.NewGetCourierDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateIsCourierAvailableQueryHandler() queries.IsCourierAvailableQueryHandler {
	return queries.NewIsCourierAvailableQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierStatisticsQueryHandler() queries.GetCourierStatisticsQueryHandler {
	return queries.NewGetCourierStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *deliveryhttp.Server {
	return deliveryhttp.NewServer(
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateAssignCourierCommandHandler(),
		c.CreateMarkPickedUpCommandHandler(),
		c.CreateMarkDeliveredCommandHandler(),
		c.CreateCancelDeliveryCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateDeleteDeliveryCommandHandler(),
		c.CreateGetDeliveryQueryHandler(),
		c.CreateGetDeliveryByOrderQueryHandler(),
		c.CreateGetDeliveriesByStatusQueryHandler(),
		c.CreateGetCourierDeliveriesQueryHandler(),
		c.CreateIsCourierAvailableQueryHandler(),
		c.CreateGetCourierStatisticsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePurgeCancelledCommandHandler(),
		c.config.PurgeSchedule,
		c.config.PurgeRetention,
		logger,
	)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncDeliveryOrderUoWFactory func() commands.DeliveryOrderUoW

func (f FuncDeliveryOrderUoWFactory) Create() commands.DeliveryOrderUoW {
	return f()
}

type FuncDeliveryUserUoWFactory func() commands.DeliveryUserUoW

func (f FuncDeliveryUserUoWFactory) Create() commands.DeliveryUserUoW {
	return f()
}
