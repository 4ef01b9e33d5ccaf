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

	appanalytics "github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/analytics"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/audit"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/auth"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/reports"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/sales"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/usecase"
	infrapdf "github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/infrastructure/pdf"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/infrastructure/postgres"
	httpRouter "github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/interfaces/http"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/pkg/config"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("bootstrap do schema")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	trail := audit.NewRecorder(auditRepo, log)

	authUC := auth.NewAuthUseCase(userRepo, trail, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, trail)
	clientUC := usecase.NewClientUseCase(clientRepo, trail)
	userUC := usecase.NewUserUseCase(userRepo, trail)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, trail)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	reportGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewReportUseCase(saleRepo, productRepo, clientRepo, reportGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "IntegrePlus API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		ClientUC:    clientUC,
		UserUC:      userUC,
		SaleUC:      saleUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
