package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/printhub-api/internal/application/auth"
	"github.com/jhoicas/printhub-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	QuoteUC    *usecase.QuoteUseCase
	OrderUC    *usecase.OrderUseCase
	UserUC     *usecase.UserUseCase
	RuleUC     *usecase.PricingRuleUseCase
	BindingUC  *usecase.BindingTypeUseCase
	DocumentUC *usecase.DocumentUseCase
	ReportUC   *usecase.ReportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/send-otp", authHandler.SendOTP)
	authGroup.Post("/verify-otp", authHandler.VerifyOTP)
	authGroup.Post("/admin/login", authHandler.AdminLogin)

	// Catálogo de precios (lectura pública, para la pantalla de tarifas)
	configHandler := NewConfigHandler(deps.RuleUC, deps.BindingUC)
	config := api.Group("/config")
	config.Get("/pricing", configHandler.ListPricingRules)
	config.Get("/bindings", configHandler.ListBindingTypes)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Documents (protegido)
	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Post("/", documentHandler.Upload)

	// Quotes (protegido)
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	quotes.Post("/", quoteHandler.Quote)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Put("/me", userHandler.UpdateMe)

	// Admin (protegido + rol admin)
	admin := protected.Group("/admin", RequireAdmin())
	admin.Get("/users", userHandler.List)
	admin.Put("/users/:id", userHandler.AdminUpdate)
	admin.Patch("/orders/:id/status", orderHandler.UpdateStatus)
	admin.Post("/config/pricing", configHandler.CreatePricingRule)
	admin.Put("/config/pricing/:id", configHandler.UpdatePricingRule)
	admin.Delete("/config/pricing/:id", configHandler.DeletePricingRule)
	admin.Post("/config/bindings", configHandler.CreateBindingType)
	admin.Put("/config/bindings/:id", configHandler.UpdateBindingType)
	admin.Delete("/config/bindings/:id", configHandler.DeleteBindingType)

	reportHandler := NewReportHandler(deps.ReportUC)
	admin.Get("/reports/orders.xlsx", reportHandler.OrdersXLSX)
}
