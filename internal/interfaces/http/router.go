package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/viapro/armazem-api/internal/application/audit"
	"github.com/viapro/armazem-api/internal/application/auth"
	"github.com/viapro/armazem-api/internal/application/catalog"
	"github.com/viapro/armazem-api/internal/application/movement"
	"github.com/viapro/armazem-api/internal/application/purchasing"
	"github.com/viapro/armazem-api/internal/application/reporting"
	"github.com/viapro/armazem-api/internal/application/stock"
)

// Cargos aceitos por rota, além de admin/gestor (que passam sempre).
const (
	roleStockClerk = "estoquista"
	roleSeller     = "vendedor"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductUC   *catalog.ProductUseCase
	CategoryUC  *catalog.CategoryUseCase
	SupplierUC  *catalog.SupplierUseCase
	LocationUC  *catalog.LocationUseCase
	UserUC      *catalog.UserUseCase
	StockUC     *stock.UseCase
	Engine      *movement.Engine
	HistoryUC   *reporting.HistoryUseCase
	DashboardUC *reporting.DashboardUseCase
	PurchaseUC  *purchasing.UseCase
	AuditTrail  *audit.Trail
	JWTSecret   string
}

// Router registra as rotas da API. Os caminhos seguem o contrato da UI, sem
// prefixo de versão.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	// Estoque
	stockHandler := NewStockHandler(deps.StockUC)
	estoque := protected.Group("/estoque")
	estoque.Get("/", RequireRole(roleStockClerk, roleSeller), stockHandler.List)
	estoque.Post("/", RequireRole(roleStockClerk), stockHandler.Create)

	// Produtos
	productHandler := NewProductHandler(deps.ProductUC)
	produtos := protected.Group("/produtos")
	produtos.Get("/", RequireRole(roleStockClerk, roleSeller), productHandler.List)
	produtos.Get("/:id", RequireRole(roleStockClerk, roleSeller), productHandler.GetByID)
	produtos.Post("/", RequireRole(roleStockClerk), productHandler.Create)
	produtos.Put("/:id", RequireRole(roleStockClerk), productHandler.Update)
	produtos.Delete("/:id", RequireRole(), productHandler.Delete)

	// Dados de referência
	catalogHandler := NewCatalogHandler(deps.CategoryUC, deps.SupplierUC, deps.LocationUC, deps.UserUC)
	categorias := protected.Group("/categorias")
	categorias.Get("/", RequireRole(roleStockClerk, roleSeller), catalogHandler.ListCategories)
	categorias.Post("/", RequireRole(roleStockClerk), catalogHandler.CreateCategory)
	categorias.Delete("/:id", RequireRole(), catalogHandler.DeleteCategory)

	fornecedores := protected.Group("/fornecedores")
	fornecedores.Get("/", RequireRole(roleStockClerk), catalogHandler.ListSuppliers)
	fornecedores.Post("/", RequireRole(roleStockClerk), catalogHandler.CreateSupplier)
	fornecedores.Put("/:id", RequireRole(roleStockClerk), catalogHandler.UpdateSupplier)
	fornecedores.Delete("/:id", RequireRole(), catalogHandler.DeleteSupplier)

	localizacoes := protected.Group("/localizacoes")
	localizacoes.Get("/", RequireRole(roleStockClerk), catalogHandler.ListLocations)
	localizacoes.Post("/", RequireRole(roleStockClerk), catalogHandler.CreateLocation)
	localizacoes.Put("/:id", RequireRole(roleStockClerk), catalogHandler.UpdateLocation)
	localizacoes.Delete("/:id", RequireRole(), catalogHandler.DeleteLocation)

	// Usuários (somente gestão)
	usuarios := protected.Group("/usuarios", RequireRole())
	usuarios.Get("/", catalogHandler.ListUsers)
	usuarios.Post("/", catalogHandler.CreateUser)
	usuarios.Put("/:id", catalogHandler.UpdateUser)
	usuarios.Delete("/:id", catalogHandler.DeleteUser)

	// Movimentações
	movementHandler := NewMovementHandler(deps.Engine, deps.HistoryUC)
	movs := protected.Group("/movimentacoes")
	movs.Get("/", RequireRole(roleStockClerk, roleSeller), movementHandler.List)
	movs.Get("/relatorio.pdf", RequireRole(roleStockClerk, roleSeller), movementHandler.ReportPDF)
	movs.Post("/operacao", RequireRole(roleStockClerk, roleSeller), movementHandler.Operation)
	movs.Post("/ajuste", RequireRole(roleStockClerk), movementHandler.Adjust)
	// Rotas legadas por tipo, mantidas para versões antigas da UI
	movs.Post("/entrada", RequireRole(roleStockClerk), movementHandler.Inbound)
	movs.Post("/saida-venda", RequireRole(roleStockClerk, roleSeller), movementHandler.SaleOutbound)
	movs.Post("/saida-demonstracao", RequireRole(roleStockClerk, roleSeller), movementHandler.DemoOutbound)

	// Pedidos de compra
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	pedidos := protected.Group("/pedidos-compra")
	pedidos.Get("/", RequireRole(roleStockClerk), purchaseHandler.List)
	pedidos.Post("/", RequireRole(roleStockClerk), purchaseHandler.Create)
	pedidos.Put("/:id/receber", RequireRole(roleStockClerk), purchaseHandler.Receive)

	// Dashboard e auditoria (somente gestão)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard := protected.Group("/dashboard", RequireRole())
	dashboard.Get("/resumo", dashboardHandler.Summary)
	dashboard.Get("/fluxo", dashboardHandler.Throughput)

	auditHandler := NewAuditHandler(deps.AuditTrail)
	protected.Get("/logs-auditoria", RequireRole(), auditHandler.List)
}
