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
	"github.com/southgenetics/inventario/internal/application/auth"
	"github.com/southgenetics/inventario/internal/application/ledger"
	"github.com/southgenetics/inventario/internal/application/usecase"
	infrapdf "github.com/southgenetics/inventario/internal/infrastructure/pdf"
	"github.com/southgenetics/inventario/internal/infrastructure/postgres"
	httpRouter "github.com/southgenetics/inventario/internal/interfaces/http"
	"github.com/southgenetics/inventario/pkg/config"
	"github.com/southgenetics/inventario/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.MigrationsDir != "" {
		if err := postgres.RunMigrations(pool, cfg.DB.MigrationsDir, log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	// Repositorios sobre el pool (lecturas y escrituras simples).
	productRepo := postgres.NewProductRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	stockRequestRepo := postgres.NewStockRequestRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	// TxRunner: los movimientos del ledger corren sobre repos ligados a la tx.
	txRunner := postgres.NewTxRunner(pool)

	movementUC := ledger.NewMovementUseCase(txRunner, employeeRepo)
	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo)
	assignmentUC := usecase.NewAssignmentUseCase(assignmentRepo)
	stockRequestUC := usecase.NewStockRequestUseCase(stockRequestRepo, employeeRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, assignmentRepo, stockRequestRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo)
	reportUC := usecase.NewReportUseCase(productRepo, analyticsRepo, infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario SG API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		MovementUC:     movementUC,
		TransactionUC:  transactionUC,
		AssignmentUC:   assignmentUC,
		StockRequestUC: stockRequestUC,
		EmployeeUC:     employeeUC,
		CategoryUC:     categoryUC,
		SupplierUC:     supplierUC,
		DashboardUC:    dashboardUC,
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
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
