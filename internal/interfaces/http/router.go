package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/restaurant-pos/internal/application/auth"
	"github.com/tu-usuario/restaurant-pos/internal/application/usecase"
	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	TableUC         *usecase.TableUseCase
	RoleUC          *usecase.RoleUseCase
	UserUC          *usecase.UserUseCase
	CustomerUC      *usecase.CustomerUseCase
	ReservationUC   *usecase.ReservationUseCase
	MenuCategoryUC  *usecase.MenuCategoryUseCase
	MenuItemUC      *usecase.MenuItemUseCase
	InventoryUC     *usecase.InventoryUseCase
	RecipeItemUC    *usecase.RecipeItemUseCase
	OrderUC         *usecase.OrderUseCase
	OrderItemUC     *usecase.OrderItemUseCase
	KitchenTicketUC *usecase.KitchenTicketUseCase
	InvoiceUC       *usecase.InvoiceUseCase
	PaymentUC       *usecase.PaymentUseCase
	AuditLogUC      *usecase.AuditLogUseCase
	UserRepo        repository.UserRepository
	JWTSecret       string
}

// crud registra las cinco rutas estándar de una entidad sobre un grupo.
type crudHandler interface {
	Create(c *fiber.Ctx) error
	List(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

func registerCRUD(g fiber.Router, h crudHandler) {
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(MetricsMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", MetricsHandler())

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh-token", authHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.UserRepo))

	protectedAuth := protected.Group("/auth")
	protectedAuth.Post("/change-password", authHandler.ChangePassword)
	protectedAuth.Get("/me", authHandler.Me)

	// Tables (protegido), con cambio de estado aparte
	tables := protected.Group("/tables")
	tableHandler := NewTableHandler(deps.TableUC)
	registerCRUD(tables, tableHandler)
	tables.Patch("/:id/status", tableHandler.UpdateStatus)

	roles := protected.Group("/roles")
	registerCRUD(roles, NewRoleHandler(deps.RoleUC))

	users := protected.Group("/users")
	registerCRUD(users, NewUserHandler(deps.UserUC))

	customers := protected.Group("/customers")
	registerCRUD(customers, NewCustomerHandler(deps.CustomerUC))

	reservations := protected.Group("/reservations")
	registerCRUD(reservations, NewReservationHandler(deps.ReservationUC))

	menuCategories := protected.Group("/menu-categories")
	registerCRUD(menuCategories, NewMenuCategoryHandler(deps.MenuCategoryUC))

	menuItems := protected.Group("/menu-items")
	registerCRUD(menuItems, NewMenuItemHandler(deps.MenuItemUC))

	inventory := protected.Group("/inventory")
	registerCRUD(inventory, NewInventoryHandler(deps.InventoryUC))

	recipeItems := protected.Group("/recipe-items")
	registerCRUD(recipeItems, NewRecipeItemHandler(deps.RecipeItemUC))

	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	registerCRUD(orders, orderHandler)

	orderItems := protected.Group("/order-items")
	registerCRUD(orderItems, NewOrderItemHandler(deps.OrderItemUC))

	// Vista de cocina: pedidos filtrados y cambio de estado
	kitchen := protected.Group("/kitchen")
	kitchen.Get("/orders", orderHandler.ListKitchen)
	kitchen.Get("/orders/:id", orderHandler.GetByID)
	kitchen.Patch("/orders/:id/status", orderHandler.UpdateStatus)

	kitchenTickets := protected.Group("/kitchen-tickets")
	registerCRUD(kitchenTickets, NewKitchenTicketHandler(deps.KitchenTicketUC))

	// Invoices (protegido), con descarga de PDF
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	registerCRUD(invoices, invoiceHandler)
	invoices.Get("/:id/pdf", invoiceHandler.GetPDF)

	payments := protected.Group("/payments")
	registerCRUD(payments, NewPaymentHandler(deps.PaymentUC))

	auditLogs := protected.Group("/audit-logs")
	registerCRUD(auditLogs, NewAuditLogHandler(deps.AuditLogUC))
}
