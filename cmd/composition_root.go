package cmd

import (
	"log/slog"

	"printshop/internal/adapters/in/http"
	"printshop/internal/adapters/in/ws"
	"printshop/internal/adapters/out/postgres"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases, and jobs together.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hub        *ws.Hub
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph for the given configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        ws.NewHub(),
		logger:     logger,
	}

	publishHandler := root.CreatePublishLocationCommandHandler()
	root.hub.SetPublisher(&publishHandler)

	return root
}

// LocationHub returns the WebSocket hub serving live-location rooms.
func (c *CompositionRoot) LocationHub() *ws.Hub {
	return c.hub
}

// NewHTTPServer assembles the REST server with all command and query handlers.
func (c *CompositionRoot) NewHTTPServer() *http.Server {
	return http.NewServer(
		http.Commands{
			CreateOrder:        c.CreateCreateOrderCommandHandler(),
			CancelOrder:        commands.NewCancelOrderCommandHandler(c.orderUoWFactory()),
			AcceptOrder:        commands.NewAcceptPendingOrderCommandHandler(c.orderUoWFactory()),
			AdvanceOrderStatus: commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory()),
			SetItemPrice:       commands.NewSetItemPriceCommandHandler(c.orderUoWFactory()),
			ToggleLiveLocation: commands.NewToggleLiveLocationCommandHandler(c.orderUoWFactory()),
			UpdateDeliveryDays: commands.NewUpdateDeliveryDaysCommandHandler(c.orderUoWFactory()),
			DeleteOrder:        commands.NewDeleteOrderCommandHandler(c.orderUoWFactory()),

			CreatePDFRequest:   commands.NewCreatePDFRequestCommandHandler(c.pdfRequestUoWFactory()),
			SetPDFRequestPrice: commands.NewSetPDFRequestPriceCommandHandler(c.pdfRequestUoWFactory()),
			CancelPDFRequest:   commands.NewCancelPDFRequestCommandHandler(c.pdfRequestUoWFactory()),
			AddRequestToCart:   commands.NewAddRequestToCartCommandHandler(c.requestCartUoWFactory()),
			DeletePDFRequest:   commands.NewDeletePDFRequestCommandHandler(c.pdfRequestUoWFactory()),

			AddCartItem:    commands.NewAddCartItemCommandHandler(c.cartUoWFactory()),
			UpdateCartItem: commands.NewUpdateCartItemCommandHandler(c.cartUoWFactory()),
			RemoveCartItem: commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory()),
			ClearCart:      commands.NewClearCartCommandHandler(c.cartUoWFactory()),

			SetOrderingEnabled: commands.NewSetOrderingEnabledCommandHandler(c.settingsUoWFactory()),
		},
		http.Queries{
			GetMyOrders:        queries.NewGetMyOrdersQueryHandler(c.gormDB),
			GetOrder:           queries.NewGetOrderQueryHandler(c.gormDB),
			GetAllOrders:       queries.NewGetAllOrdersQueryHandler(c.gormDB),
			GetMyPDFRequests:   queries.NewGetMyPDFRequestsQueryHandler(c.gormDB),
			GetAllPDFRequests:  queries.NewGetAllPDFRequestsQueryHandler(c.gormDB),
			GetCart:            queries.NewGetCartQueryHandler(c.gormDB),
			GetOrderingEnabled: queries.NewGetOrderingEnabledQueryHandler(c.gormDB),
		},
	)
}

// NewAuthMiddleware builds the bearer-token middleware from the configured secret.
func (c *CompositionRoot) NewAuthMiddleware() *http.AuthMiddleware {
	return http.NewAuthMiddleware(c.config.JWTSecret)
}

// NewJobManager builds the scheduled-jobs manager.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		commands.NewPurgeStaleDataCommandHandler(c.maintenanceUoWFactory()),
		c.config.RetentionSchedule,
		c.config.RetentionMaxAgeDays,
		c.logger,
	)
}

// CreateCreateOrderCommandHandler builds the checkout handler.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.checkoutUoWFactory())
}

// CreatePublishLocationCommandHandler builds the live-location publish handler.
func (c *CompositionRoot) CreatePublishLocationCommandHandler() commands.PublishLocationCommandHandler {
	return commands.NewPublishLocationCommandHandler(c.orderUoWFactory(), c.hub)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) pdfRequestUoWFactory() commands.PDFRequestUoWFactory {
	return FuncPDFRequestUoWFactory(func() commands.PDFRequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) settingsUoWFactory() commands.SettingsUoWFactory {
	return FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) requestCartUoWFactory() commands.RequestCartUoWFactory {
	return FuncRequestCartUoWFactory(func() commands.RequestCartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) maintenanceUoWFactory() commands.MaintenanceUoWFactory {
	return FuncMaintenanceUoWFactory(func() commands.MaintenanceUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPDFRequestUoWFactory func() commands.PDFRequestUoW

func (f FuncPDFRequestUoWFactory) Create() commands.PDFRequestUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncRequestCartUoWFactory func() commands.RequestCartUoW

func (f FuncRequestCartUoWFactory) Create() commands.RequestCartUoW {
	return f()
}

type FuncMaintenanceUoWFactory func() commands.MaintenanceUoW

func (f FuncMaintenanceUoWFactory) Create() commands.MaintenanceUoW {
	return f()
}
