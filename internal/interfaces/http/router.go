package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/analytics"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/auth"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/reports"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/sales"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/usecase"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	ClientUC    *usecase.ClientUseCase
	UserUC      *usecase.UserUseCase
	SaleUC      *sales.SaleUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *reports.ReportUseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/password/reset-request", authHandler.RequestPasswordReset)
	authGroup.Post("/password/reset", authHandler.ResetPassword)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Put("/auth/password", authHandler.ChangePassword)

	// Produtos (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clientes (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Vendas (protegido; append-only)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Record)
	salesGroup.Get("/", saleHandler.List)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Relatórios (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/sales", reportHandler.SalesPDF)

	// Administração de usuários (apenas Admin)
	admin := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC)
	admin.Get("/", userHandler.List)
	admin.Post("/:id/unlock", userHandler.Unlock)
	admin.Put("/:id/role", userHandler.UpdateRole)
	admin.Delete("/:id", userHandler.Delete)
}
