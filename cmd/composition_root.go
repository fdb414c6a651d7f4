package cmd

import (
	"log/slog"

	"logistics/internal/adapters/out/eventlog"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/outboxrepo"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	config     Config
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		config:     config,
	}
}

func (c *CompositionRoot) agencyUoWFactory() commands.AgencyUoWFactory {
	return FuncAgencyUoWFactory(func() commands.AgencyUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateAgencyCommandHandler() commands.CreateAgencyCommandHandler {
	return commands.NewCreateAgencyCommandHandler(c.agencyUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAgencyCommandHandler() commands.UpdateAgencyCommandHandler {
	return commands.NewUpdateAgencyCommandHandler(c.agencyUoWFactory())
}

func (c *CompositionRoot) CreateSuspendAgencyCommandHandler() commands.SuspendAgencyCommandHandler {
	return commands.NewSuspendAgencyCommandHandler(c.agencyUoWFactory())
}

func (c *CompositionRoot) CreateUnsuspendAgencyCommandHandler() commands.UnsuspendAgencyCommandHandler {
	return commands.NewUnsuspendAgencyCommandHandler(c.agencyUoWFactory())
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerShipmentCommandHandler() commands.CreateCustomerShipmentCommandHandler {
	return commands.NewCreateCustomerShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateConfirmShipmentCommandHandler() commands.ConfirmShipmentCommandHandler {
	return commands.NewConfirmShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateValidateShipmentCommandHandler() commands.ValidateShipmentCommandHandler {
	return commands.NewValidateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateRejectShipmentCommandHandler() commands.RejectShipmentCommandHandler {
	return commands.NewRejectShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateCancelCustomerShipmentCommandHandler() commands.CancelCustomerShipmentCommandHandler {
	return commands.NewCancelCustomerShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateRegisterParcelCommandHandler() commands.RegisterParcelCommandHandler {
	return commands.NewRegisterParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateChangeParcelStatusCommandHandler() commands.ChangeParcelStatusCommandHandler {
	return commands.NewChangeParcelStatusCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateMarkParcelDeliveredCommandHandler() commands.MarkParcelDeliveredCommandHandler {
	return commands.NewMarkParcelDeliveredCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateMarkParcelFailedCommandHandler() commands.MarkParcelFailedCommandHandler {
	return commands.NewMarkParcelFailedCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateGrantRoleCommandHandler() commands.GrantRoleCommandHandler {
	return commands.NewGrantRoleCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgencyShipmentsQueryHandler() queries.GetAgencyShipmentsQueryHandler {
	return queries.NewGetAgencyShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	outbox := outboxrepo.NewGormOutboxRepository(c.gormDB)
	publisher := eventlog.NewPublisher(c.logger)
	return jobs.NewJobManager(outbox, publisher, c.config.OutboxBatchSize, c.logger)
}

type FuncAgencyUoWFactory func() commands.AgencyUoW

func (f FuncAgencyUoWFactory) Create() commands.AgencyUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
