package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/southgenetics/inventario/internal/application/auth"
	"github.com/southgenetics/inventario/internal/application/ledger"
	"github.com/southgenetics/inventario/internal/application/usecase"
	"github.com/southgenetics/inventario/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	MovementUC     *ledger.MovementUseCase
	TransactionUC  *usecase.TransactionUseCase
	AssignmentUC   *usecase.AssignmentUseCase
	StockRequestUC *usecase.StockRequestUseCase
	EmployeeUC     *usecase.EmployeeUseCase
	CategoryUC     *usecase.CategoryUseCase
	SupplierUC     *usecase.SupplierUseCase
	DashboardUC    *usecase.DashboardUseCase
	ReportUC       *usecase.ReportUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. Todo menos register/login va
// detrás del Bearer Token; los deletes de referencia exigen rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Get("/auth/me", authHandler.Me)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Transactions: el ledger de movimientos (protegido)
	transactionHandler := NewTransactionHandler(deps.MovementUC, deps.TransactionUC)
	transactions := protected.Group("/transactions")
	transactions.Post("/", transactionHandler.Record)
	transactions.Get("/", transactionHandler.List)
	products.Get("/:id/transactions", transactionHandler.ListByProduct)

	// Assignments (protegido)
	assignments := protected.Group("/assignments")
	assignmentHandler := NewAssignmentHandler(deps.MovementUC, deps.AssignmentUC)
	assignments.Get("/", assignmentHandler.List)
	assignments.Post("/", assignmentHandler.Create)
	assignments.Delete("/:id", assignmentHandler.Delete)

	// Stock requests (protegido)
	requests := protected.Group("/stock-requests")
	stockRequestHandler := NewStockRequestHandler(deps.StockRequestUC)
	requests.Post("/", stockRequestHandler.Create)
	requests.Get("/", stockRequestHandler.List)
	requests.Put("/:id", stockRequestHandler.Update)
	requests.Delete("/:id", stockRequestHandler.Delete)

	// Employees (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", adminOnly, employeeHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Reports (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/inventory.pdf", reportHandler.Inventory)
}
