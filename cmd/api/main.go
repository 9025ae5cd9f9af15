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

	"github.com/jhoicas/siloe-api/internal/application/auth"
	"github.com/jhoicas/siloe-api/internal/application/sales"
	"github.com/jhoicas/siloe-api/internal/application/store"
	"github.com/jhoicas/siloe-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/siloe-api/internal/infrastructure/pdf"
	"github.com/jhoicas/siloe-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/siloe-api/internal/interfaces/http"
	"github.com/jhoicas/siloe-api/pkg/config"
	"github.com/jhoicas/siloe-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
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

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	permRepo := postgres.NewPermissionRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	routeRepo := postgres.NewRouteRepository(pool)
	storeTypeRepo := postgres.NewStoreTypeRepository(pool)
	unitRepo := postgres.NewMeasurementUnitRepository(pool)
	paymentRepo := postgres.NewPaymentMethodRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	supplyRepo := postgres.NewSupplyRepository(pool)
	stockRepo := postgres.NewSuppliesStockRepository(pool)
	balanceRepo := postgres.NewSuppliesBalanceRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, roleRepo, auth.Config{
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
		JWTExp:     cfg.JWT.ExpHours,
		BcryptCost: cfg.Auth.BcryptCost,
	})
	permissions := auth.NewPermissionService(permRepo)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo, cfg.Auth.BcryptCost)
	storeUC := store.NewUseCase(storeRepo, userRepo, store.Config{
		DefaultRoleID:          cfg.Auth.DefaultRoleID,
		DefaultManagerPassword: cfg.Auth.DefaultManagerPassword,
		BcryptCost:             cfg.Auth.BcryptCost,
	})
	manifestGen := infrapdf.NewMarotoManifestGenerator()
	routeUC := usecase.NewRouteUseCase(routeRepo, storeRepo, manifestGen)
	catalogUC := usecase.NewCatalogUseCase(storeTypeRepo, unitRepo, paymentRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	supplyUC := usecase.NewSupplyUseCase(supplyRepo, stockRepo, balanceRepo)
	productUC := usecase.NewProductUseCase(productRepo, recipeRepo, supplyRepo)
	saleUC := sales.NewUseCase(txRunner, storeRepo, paymentRepo, saleRepo)

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
		Title:    "Panificadora Siloé API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		Permissions: permissions,
		UserUC:      userUC,
		StoreUC:     storeUC,
		RouteUC:     routeUC,
		CatalogUC:   catalogUC,
		CompanyUC:   companyUC,
		SupplierUC:  supplierUC,
		SupplyUC:    supplyUC,
		ProductUC:   productUC,
		SaleUC:      saleUC,
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

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
