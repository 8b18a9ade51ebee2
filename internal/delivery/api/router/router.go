// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"servihub/internal/delivery/api/middleware"
	"servihub/internal/delivery/api/router/handler"
	"servihub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler           *handler.AuthHandler
	ProfileHandler        *handler.ProfileHandler
	CatalogHandler        *handler.CatalogHandler
	ServiceRequestHandler *handler.ServiceRequestHandler
	ProductHandler        *handler.ProductHandler
	OrderHandler          *handler.OrderHandler
	DeliveryHandler       *handler.DeliveryHandler
	WalletHandler         *handler.WalletHandler
	SettingsHandler       *handler.SettingsHandler
	TicketHandler         *handler.TicketHandler
	DeviceHandler         *handler.DeviceHandler
	FileHandler           *handler.FileHandler
	RealtimeHandler       *handler.RealtimeHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth           *handler.AuthHandler
	profiles       *handler.ProfileHandler
	catalog        *handler.CatalogHandler
	requests       *handler.ServiceRequestHandler
	products       *handler.ProductHandler
	orders         *handler.OrderHandler
	deliveries     *handler.DeliveryHandler
	wallet         *handler.WalletHandler
	settings       *handler.SettingsHandler
	tickets        *handler.TicketHandler
	devices        *handler.DeviceHandler
	files          *handler.FileHandler
	realtime       *handler.RealtimeHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:           params.AuthHandler,
		profiles:       params.ProfileHandler,
		catalog:        params.CatalogHandler,
		requests:       params.ServiceRequestHandler,
		products:       params.ProductHandler,
		orders:         params.OrderHandler,
		deliveries:     params.DeliveryHandler,
		wallet:         params.WalletHandler,
		settings:       params.SettingsHandler,
		tickets:        params.TicketHandler,
		devices:        params.DeviceHandler,
		files:          params.FileHandler,
		realtime:       params.RealtimeHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.auth.Register)
		authGroup.POST("/login", r.auth.Login)
		authGroup.POST("/refresh", r.auth.Refresh)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	admin := r.authMiddleware.RequireRole(entity.RoleAdmin)
	technician := r.authMiddleware.RequireRole(entity.RoleTechnician)
	client := r.authMiddleware.RequireRole(entity.RoleClient)
	vendor := r.authMiddleware.RequireRole(entity.RoleVendor)
	courier := r.authMiddleware.RequireRole(entity.RoleDelivery)

	meGroup := apiV1.Group("/me")
	{
		meGroup.GET("", r.profiles.GetMe)
		meGroup.PATCH("", r.profiles.UpdateMe)
		meGroup.POST("/onboarding", r.profiles.CompleteOnboarding)
	}

	apiV1.GET("/profiles", r.profiles.ListProfiles, admin)

	techniciansGroup := apiV1.Group("/technicians")
	{
		techniciansGroup.GET("", r.profiles.ListTechnicians)
		techniciansGroup.GET("/:id", r.profiles.GetTechnician)
		techniciansGroup.PATCH("/:id/active", r.profiles.SetTechnicianActive, admin)
	}

	categoriesGroup := apiV1.Group("/categories")
	{
		categoriesGroup.GET("", r.catalog.ListCategories)
		categoriesGroup.POST("", r.catalog.CreateCategory, admin)
		categoriesGroup.PUT("/:id", r.catalog.UpdateCategory, admin)
		categoriesGroup.DELETE("/:id", r.catalog.DeactivateCategory, admin)
	}

	specialtiesGroup := apiV1.Group("/specialties")
	{
		specialtiesGroup.GET("", r.catalog.ListSpecialties)
		specialtiesGroup.POST("", r.catalog.AddSpecialty, technician)
		specialtiesGroup.DELETE("/:categoryId", r.catalog.RemoveSpecialty, technician)
	}

	servicesGroup := apiV1.Group("/services")
	{
		servicesGroup.GET("", r.catalog.ListServices)
		servicesGroup.POST("", r.catalog.CreateService, technician)
		servicesGroup.PUT("/:id", r.catalog.UpdateService)
		servicesGroup.DELETE("/:id", r.catalog.DeleteService)
	}

	requestsGroup := apiV1.Group("/service-requests")
	{
		requestsGroup.POST("", r.requests.Create, client)
		requestsGroup.GET("", r.requests.List)
		requestsGroup.GET("/available", r.requests.ListAvailable, technician)
		requestsGroup.GET("/:id", r.requests.Get)
		requestsGroup.POST("/:id/accept", r.requests.Accept, technician)
		requestsGroup.POST("/:id/arrived", r.requests.MarkArrived, technician)
		requestsGroup.POST("/:id/start", r.requests.Start, technician)
		requestsGroup.POST("/:id/complete", r.requests.Complete, technician)
		requestsGroup.GET("/:id/cancellation-quote", r.requests.CancellationQuote)
		requestsGroup.POST("/:id/cancel", r.requests.Cancel)
	}

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.products.ListPublic)
		productsGroup.GET("/mine", r.products.ListMine, vendor)
		productsGroup.GET("/:id", r.products.Get)
		productsGroup.POST("", r.products.Create, vendor)
		productsGroup.PUT("/:id", r.products.Update, vendor)
		productsGroup.DELETE("/:id", r.products.Delete, vendor)
		productsGroup.POST("/:id/image", r.products.UploadImage, vendor)
	}

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.POST("", r.orders.Create, client)
		ordersGroup.GET("", r.orders.List)
		ordersGroup.GET("/:id", r.orders.Get)
		ordersGroup.PATCH("/:id/status", r.orders.UpdateStatus, vendor)
		ordersGroup.POST("/:id/cancel", r.orders.Cancel)
	}

	deliveriesGroup := apiV1.Group("/deliveries")
	{
		deliveriesGroup.POST("", r.deliveries.Create, vendor)
		deliveriesGroup.GET("", r.deliveries.List)
		deliveriesGroup.GET("/available", r.deliveries.ListAvailable, courier)
		deliveriesGroup.GET("/:id", r.deliveries.Get)
		deliveriesGroup.GET("/:id/pickup-qr", r.deliveries.PickupQR, vendor)
		deliveriesGroup.POST("/:id/accept", r.deliveries.Accept, courier)
		deliveriesGroup.POST("/:id/pickup", r.deliveries.ConfirmPickup, courier)
		deliveriesGroup.POST("/:id/transit", r.deliveries.StartTransit, courier)
		deliveriesGroup.POST("/:id/complete", r.deliveries.Complete, courier)
		deliveriesGroup.POST("/:id/position", r.deliveries.ReportPosition, courier)
	}

	walletGroup := apiV1.Group("/wallet")
	{
		walletGroup.GET("", r.wallet.GetWallet, technician)
		walletGroup.GET("/transactions", r.wallet.ListTransactions, technician)
		walletGroup.POST("/top-up", r.wallet.TopUp, technician)
		walletGroup.POST("/deposits", r.wallet.Deposit, admin)
		walletGroup.GET("/pending-payments", r.wallet.ListPendingPayments, admin)
		walletGroup.GET("/technicians/:id", r.wallet.GetWallet, admin)
		walletGroup.GET("/technicians/:id/transactions", r.wallet.ListTransactions, admin)
	}

	apiV1.GET("/financials", r.wallet.FinancialSummary, admin)

	settingsGroup := apiV1.Group("/settings")
	{
		settingsGroup.GET("", r.settings.Get)
		settingsGroup.PATCH("", r.settings.Update, admin)
	}

	ticketsGroup := apiV1.Group("/tickets")
	{
		ticketsGroup.POST("", r.tickets.Open, client)
		ticketsGroup.GET("", r.tickets.List)
		ticketsGroup.GET("/:id", r.tickets.Get)
		ticketsGroup.POST("/:id/respond", r.tickets.Respond)
		ticketsGroup.POST("/:id/resolve", r.tickets.Resolve, admin)
		ticketsGroup.POST("/:id/attachment", r.tickets.UploadAttachment)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.devices.RegisterDevice)
		devicesGroup.GET("", r.devices.GetProfileDevices)
		devicesGroup.PUT("/:id/token", r.devices.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.devices.DeactivateDevice)
	}

	apiV1.GET("/files/*", r.files.Download)

	realtimeGroup := apiV1.Group("/realtime")
	{
		realtimeGroup.GET("/stream", r.realtime.Stream)
		realtimeGroup.GET("/health", r.realtime.Health, admin)
	}
}
