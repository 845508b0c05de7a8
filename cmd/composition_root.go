package cmd

import (
	"orderdesk/internal/adapters/out/extapi"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    ports.SubmissionGateway
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    extapi.NewGateway(config.ExtAPIBaseURL, config.ExtAPITimeout),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderFieldCommandHandler() commands.UpdateOrderFieldCommandHandler {
	return commands.NewUpdateOrderFieldCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddOrderLineCommandHandler() commands.AddOrderLineCommandHandler {
	return commands.NewAddOrderLineCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderLineCommandHandler() commands.RemoveOrderLineCommandHandler {
	return commands.NewRemoveOrderLineCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeDispatchStatusCommandHandler() commands.ChangeDispatchStatusCommandHandler {
	return commands.NewChangeDispatchStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDispatchChangeCommandHandler() commands.ConfirmDispatchChangeCommandHandler {
	return commands.NewConfirmDispatchChangeCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(
		c.orderUoWFactory(),
		services.NewSubmissionValidator(),
		c.gateway,
	)
}

func (c *CompositionRoot) CreateExpireStaleDispatchRequestsCommandHandler() commands.ExpireStaleDispatchRequestsCommandHandler {
	return commands.NewExpireStaleDispatchRequestsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUndeliveredOrdersQueryHandler() queries.GetUndeliveredOrdersQueryHandler {
	return queries.NewGetUndeliveredOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
