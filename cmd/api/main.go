package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appauth "github.com/jhoicas/printhub-api/internal/application/auth"
	"github.com/jhoicas/printhub-api/internal/application/usecase"
	infradoc "github.com/jhoicas/printhub-api/internal/infrastructure/document"
	infraexcel "github.com/jhoicas/printhub-api/internal/infrastructure/excel"
	infraotp "github.com/jhoicas/printhub-api/internal/infrastructure/otp"
	infrapdf "github.com/jhoicas/printhub-api/internal/infrastructure/pdf"
	"github.com/jhoicas/printhub-api/internal/infrastructure/postgres"
	infrastorage "github.com/jhoicas/printhub-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/printhub-api/internal/interfaces/http"
	"github.com/jhoicas/printhub-api/pkg/config"
	"github.com/jhoicas/printhub-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	ruleRepo := postgres.NewPricingRuleRepository(pool)
	bindingRepo := postgres.NewBindingTypeRepository(pool)

	// OTP: Redis en despliegue real, memoria cuando no hay REDIS_ADDR.
	var otpStore appauth.OTPStore
	if cfg.Redis.Addr != "" {
		redisStore, err := infraotp.NewRedisStore(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		otpStore = redisStore
	} else {
		log.Warn().Msg("REDIS_ADDR vacío, usando OTP store en memoria")
		otpStore = infraotp.NewMemoryStore()
	}

	fileStore, err := infrastorage.NewLocalStore(cfg.Storage.Root)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de uploads")
	}
	pageInspector := infradoc.NewPDFInspector(cfg.Storage.Root)

	authUC := appauth.NewAuthUseCase(userRepo, otpStore, appauth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.App.IsDevelopment(), log)

	quoteUC := usecase.NewQuoteUseCase(ruleRepo, bindingRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, userRepo, quoteUC, infrapdf.NewReceiptGenerator())
	userUC := usecase.NewUserUseCase(userRepo)
	ruleUC := usecase.NewPricingRuleUseCase(ruleRepo)
	bindingUC := usecase.NewBindingTypeUseCase(bindingRepo)
	documentUC := usecase.NewDocumentUseCase(fileStore, pageInspector, cfg.Storage.MaxUploadMB)
	reportUC := usecase.NewReportUseCase(orderRepo, infraexcel.NewOrdersReport())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.Storage.MaxUploadMB * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PrintHub API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		QuoteUC:    quoteUC,
		OrderUC:    orderUC,
		UserUC:     userUC,
		RuleUC:     ruleUC,
		BindingUC:  bindingUC,
		DocumentUC: documentUC,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
