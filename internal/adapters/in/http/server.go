// Package http exposes the storefront over a REST API built on echo.
// Handlers translate between HTTP and the application's commands and queries.
package http

import (
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Commands bundles the write-side handlers the server depends on.
type Commands struct {
	CreateOrder        commands.CreateOrderCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	AcceptOrder        commands.AcceptPendingOrderCommandHandler
	AdvanceOrderStatus commands.AdvanceOrderStatusCommandHandler
	SetItemPrice       commands.SetItemPriceCommandHandler
	ToggleLiveLocation commands.ToggleLiveLocationCommandHandler
	UpdateDeliveryDays commands.UpdateDeliveryDaysCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler

	CreatePDFRequest   commands.CreatePDFRequestCommandHandler
	SetPDFRequestPrice commands.SetPDFRequestPriceCommandHandler
	CancelPDFRequest   commands.CancelPDFRequestCommandHandler
	AddRequestToCart   commands.AddRequestToCartCommandHandler
	DeletePDFRequest   commands.DeletePDFRequestCommandHandler

	AddCartItem    commands.AddCartItemCommandHandler
	UpdateCartItem commands.UpdateCartItemCommandHandler
	RemoveCartItem commands.RemoveCartItemCommandHandler
	ClearCart      commands.ClearCartCommandHandler

	SetOrderingEnabled commands.SetOrderingEnabledCommandHandler
}

// Queries bundles the read-side handlers the server depends on.
type Queries struct {
	GetMyOrders        queries.GetMyOrdersQueryHandler
	GetOrder           queries.GetOrderQueryHandler
	GetAllOrders       queries.GetAllOrdersQueryHandler
	GetMyPDFRequests   queries.GetMyPDFRequestsQueryHandler
	GetAllPDFRequests  queries.GetAllPDFRequestsQueryHandler
	GetCart            queries.GetCartQueryHandler
	GetOrderingEnabled queries.GetOrderingEnabledQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commands Commands, queries Queries) *Server {
	return &Server{
		commands: commands,
		queries:  queries,
	}
}

// RegisterRoutes wires the storefront routes onto the echo instance.
// Everything except the ordering-enabled read requires authentication; admin
// routes additionally require the admin role.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	e.GET("/api/v1/settings/ordering", s.GetOrderingEnabled)

	api := e.Group("/api/v1", auth.Authenticate)

	orders := api.Group("/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("/my", s.GetMyOrders)
	orders.GET("/:orderId", s.GetOrder)
	orders.POST("/:orderId/cancel", s.CancelOrder)
	orders.POST("/:orderId/accept", s.AcceptOrder)

	adminOrders := api.Group("/orders/admin", auth.RequireAdmin)
	adminOrders.GET("/all", s.GetAllOrders)
	adminOrders.PUT("/:orderId/status", s.UpdateOrderStatus)
	adminOrders.PUT("/:orderId/items/:index/price", s.SetItemPrice)
	adminOrders.PUT("/:orderId/live-location", s.ToggleLiveLocation)
	adminOrders.PUT("/:orderId/delivery-days", s.UpdateDeliveryDays)
	adminOrders.DELETE("/:orderId", s.DeleteOrder)

	requests := api.Group("/pdf-requests")
	requests.POST("", s.CreatePDFRequest)
	requests.GET("/my", s.GetMyPDFRequests)
	requests.POST("/:requestId/cancel", s.CancelPDFRequest)
	requests.POST("/:requestId/add-to-cart", s.AddRequestToCart)

	adminRequests := api.Group("/pdf-requests/admin", auth.RequireAdmin)
	adminRequests.GET("/all", s.GetAllPDFRequests)
	adminRequests.PUT("/:requestId/price", s.SetPDFRequestPrice)
	adminRequests.DELETE("/:requestId", s.DeletePDFRequest)

	cart := api.Group("/cart")
	cart.GET("", s.GetCart)
	cart.POST("/items", s.AddCartItem)
	cart.PUT("/items/:index", s.UpdateCartItem)
	cart.DELETE("/items/:index", s.RemoveCartItem)
	cart.DELETE("", s.ClearCart)

	api.PUT("/settings/ordering", s.SetOrderingEnabled, auth.RequireAdmin)
}
