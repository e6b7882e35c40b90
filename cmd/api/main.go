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

	"github.com/viapro/armazem-api/internal/application/audit"
	"github.com/viapro/armazem-api/internal/application/auth"
	"github.com/viapro/armazem-api/internal/application/catalog"
	"github.com/viapro/armazem-api/internal/application/movement"
	"github.com/viapro/armazem-api/internal/application/purchasing"
	"github.com/viapro/armazem-api/internal/application/reporting"
	"github.com/viapro/armazem-api/internal/application/stock"
	infrapdf "github.com/viapro/armazem-api/internal/infrastructure/pdf"
	"github.com/viapro/armazem-api/internal/infrastructure/postgres"
	httpRouter "github.com/viapro/armazem-api/internal/interfaces/http"
	"github.com/viapro/armazem-api/pkg/config"
	"github.com/viapro/armazem-api/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	trail := audit.NewTrail(auditRepo)
	engine := movement.NewEngine(txRunner, productRepo, userRepo, stockRepo)

	productUC := catalog.NewProductUseCase(productRepo, movementRepo, trail)
	categoryUC := catalog.NewCategoryUseCase(categoryRepo, trail)
	supplierUC := catalog.NewSupplierUseCase(supplierRepo, trail)
	locationUC := catalog.NewLocationUseCase(locationRepo, trail)
	userUC := catalog.NewUserUseCase(userRepo, trail)
	stockUC := stock.NewUseCase(txRunner, stockRepo, locationRepo, productRepo, userRepo)
	purchaseUC := purchasing.NewUseCase(txRunner, orderRepo, supplierRepo, productRepo, userRepo)
	dashboardUC := reporting.NewDashboardUseCase(productRepo, stockRepo, movementRepo)

	// PDF: relatório de movimentações exportável pela tela de histórico
	reportRenderer := infrapdf.NewMarotoReportGenerator()
	historyUC := reporting.NewHistoryUseCase(movementRepo, reportRenderer)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ViaPro Armazém API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		SupplierUC:  supplierUC,
		LocationUC:  locationUC,
		UserUC:      userUC,
		StockUC:     stockUC,
		Engine:      engine,
		HistoryUC:   historyUC,
		DashboardUC: dashboardUC,
		PurchaseUC:  purchaseUC,
		AuditTrail:  trail,
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

	log.Info().Msg("aplicação encerrada")
}
