package cmd

import (
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	queue      ports.ShipmentQueue
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, queue ports.ShipmentQueue) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		queue:      queue,
	}
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory(), c.queue)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.CreateCreateShipmentCommandHandler())
}

func (c *CompositionRoot) CreateCompleteShipmentCommandHandler() commands.CompleteShipmentCommandHandler {
	return commands.NewCompleteShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateFailShipmentCommandHandler() commands.FailShipmentCommandHandler {
	return commands.NewFailShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateProcessShipmentBatchCommandHandler() commands.ProcessShipmentBatchCommandHandler {
	return commands.NewProcessShipmentBatchCommandHandler(c.shipmentUoWFactory(), c.queue)
}

func (c *CompositionRoot) CreateGetShipmentStatusQueryHandler() queries.GetShipmentStatusQueryHandler {
	return queries.NewGetShipmentStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShippingTypesQueryHandler() queries.ListShippingTypesQueryHandler {
	return queries.NewListShippingTypesQueryHandler()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
