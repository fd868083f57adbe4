package cmd

import (
	"log/slog"
	"time"

	"pedido/internal/adapters/out/catalog"
	"pedido/internal/adapters/out/postgres"
	"pedido/internal/core/application/usecases/commands"
	"pedido/internal/core/application/usecases/queries"
	"pedido/internal/core/ports"

	"gorm.io/gorm"
)

const defaultCatalogTimeout = 5 * time.Second

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.ProductCatalog
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	timeout := defaultCatalogTimeout
	if configs.CatalogTimeout != "" {
		if parsed, err := time.ParseDuration(configs.CatalogTimeout); err == nil {
			timeout = parsed
		}
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalog.NewClient(configs.CatalogServiceURL, timeout),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.catalog, c.logger)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingOrdersCountQueryHandler() queries.GetPendingOrdersCountQueryHandler {
	return queries.NewGetPendingOrdersCountQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
