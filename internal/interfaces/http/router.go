package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/siloe-api/internal/application/auth"
	"github.com/jhoicas/siloe-api/internal/application/sales"
	"github.com/jhoicas/siloe-api/internal/application/store"
	"github.com/jhoicas/siloe-api/internal/application/usecase"
)

// Códigos del catálogo de permisos. Deben coincidir con la columna code de la
// tabla permissions (ver cmd/seed).
const (
	PermManageUsers       = "manage-users"
	PermManageStores      = "manage-stores"
	PermViewRoutes        = "view-routes"
	PermManageCatalog     = "manage-catalog"
	PermManageInventory   = "manage-inventory"
	PermViewSuppliesStock = "view-supplies-stock"
	PermManageSales       = "manage-sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	Permissions *auth.PermissionService
	UserUC      *usecase.UserUseCase
	StoreUC     *store.UseCase
	RouteUC     *usecase.RouteUseCase
	CatalogUC   *usecase.CatalogUseCase
	CompanyUC   *usecase.CompanyUseCase
	SupplierUC  *usecase.SupplierUseCase
	SupplyUC    *usecase.SupplyUseCase
	ProductUC   *usecase.ProductUseCase
	SaleUC      *sales.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Todo lo que no sea auth exige Bearer
// Token, y cada grupo exige además el permiso de su módulo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (admin)
	users := protected.Group("/users", RequirePermission(PermManageUsers, deps.Permissions))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Stores (incluye el alta/actualización inline del tendero)
	stores := protected.Group("/stores", RequirePermission(PermManageStores, deps.Permissions))
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Post("/", storeHandler.Create)
	stores.Get("/orphans", storeHandler.ListOrphans)
	stores.Get("/route/:routeId", storeHandler.ListByRoute)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", storeHandler.Update)
	stores.Put("/:id/route", storeHandler.AssignRoute)
	stores.Delete("/:id", storeHandler.Delete)

	// Routes (reparto) + manifiesto PDF
	routes := protected.Group("/routes", RequirePermission(PermViewRoutes, deps.Permissions))
	routeHandler := NewRouteHandler(deps.RouteUC)
	routes.Post("/", routeHandler.Create)
	routes.Get("/", routeHandler.List)
	routes.Get("/:id", routeHandler.GetByID)
	routes.Put("/:id", routeHandler.Update)
	routes.Delete("/:id", routeHandler.Delete)
	routes.Get("/:id/manifest", routeHandler.Manifest)

	// Catálogos: tipos de tienda, unidades de medida, medios de pago
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	storeTypes := protected.Group("/store-types", RequirePermission(PermManageCatalog, deps.Permissions))
	storeTypes.Post("/", catalogHandler.CreateStoreType)
	storeTypes.Get("/", catalogHandler.ListStoreTypes)
	storeTypes.Put("/:id", catalogHandler.UpdateStoreType)
	storeTypes.Delete("/:id", catalogHandler.DeleteStoreType)

	units := protected.Group("/measurement-units", RequirePermission(PermManageCatalog, deps.Permissions))
	units.Post("/", catalogHandler.CreateUnit)
	units.Get("/", catalogHandler.ListUnits)
	units.Delete("/:id", catalogHandler.DeleteUnit)

	payments := protected.Group("/payment-methods", RequirePermission(PermManageCatalog, deps.Permissions))
	payments.Post("/", catalogHandler.CreatePaymentMethod)
	payments.Get("/", catalogHandler.ListPaymentMethods)

	// Companies y proveedores
	companies := protected.Group("/companies", RequirePermission(PermManageCatalog, deps.Permissions))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	suppliers := protected.Group("/suppliers", RequirePermission(PermManageInventory, deps.Permissions))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Insumos, stock y saldos. Los saldos tienen su propio permiso de lectura.
	supplyHandler := NewSupplyHandler(deps.SupplyUC)
	supplies := protected.Group("/supplies", RequirePermission(PermManageInventory, deps.Permissions))
	supplies.Get("/balance", RequirePermission(PermViewSuppliesStock, deps.Permissions), supplyHandler.ListBalances)
	supplies.Post("/stock", supplyHandler.RegisterMovement)
	supplies.Post("/", supplyHandler.Create)
	supplies.Get("/", supplyHandler.List)
	supplies.Get("/:id", supplyHandler.GetByID)
	supplies.Put("/:id", supplyHandler.Update)
	supplies.Delete("/:id", supplyHandler.Delete)

	// Productos y recetas
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products", RequirePermission(PermManageCatalog, deps.Permissions))
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/recipes", productHandler.ListRecipes)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	recipes := protected.Group("/recipes", RequirePermission(PermManageInventory, deps.Permissions))
	recipes.Post("/", productHandler.CreateRecipe)
	recipes.Get("/:id", productHandler.GetRecipe)
	recipes.Delete("/:id", productHandler.DeleteRecipe)

	// Ventas
	salesGroup := protected.Group("/sales", RequirePermission(PermManageSales, deps.Permissions))
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/store/:storeId", saleHandler.ListByStore)
	salesGroup.Get("/:id", saleHandler.GetByID)
}
