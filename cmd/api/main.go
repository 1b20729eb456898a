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
	"github.com/tu-usuario/restaurant-pos/internal/application/auth"
	"github.com/tu-usuario/restaurant-pos/internal/application/usecase"
	infrapdf "github.com/tu-usuario/restaurant-pos/internal/infrastructure/pdf"
	"github.com/tu-usuario/restaurant-pos/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/restaurant-pos/internal/interfaces/http"
	"github.com/tu-usuario/restaurant-pos/pkg/config"
	"github.com/tu-usuario/restaurant-pos/pkg/logger"
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

	roleRepo := postgres.NewRoleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	tableRepo := postgres.NewTableRepository(pool)
	tableStatusRepo := postgres.NewTableStatusRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)
	menuCategoryRepo := postgres.NewMenuCategoryRepository(pool)
	menuItemRepo := postgres.NewMenuItemRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	recipeItemRepo := postgres.NewRecipeItemRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	orderItemRepo := postgres.NewOrderItemRepository(pool)
	kitchenTicketRepo := postgres.NewKitchenTicketRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	auditLogRepo := postgres.NewAuditLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, roleRepo, auth.JWTConfig{
		Secret:        cfg.JWT.Secret,
		AccessMinutes: cfg.JWT.AccessMinutes,
		RefreshDays:   cfg.JWT.RefreshDays,
		Issuer:        cfg.JWT.Issuer,
	})

	// PDF: comprobante imprimible de la factura
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)

	deps := httpRouter.RouterDeps{
		AuthUC:          authUC,
		TableUC:         usecase.NewTableUseCase(txRunner, tableRepo, tableStatusRepo),
		RoleUC:          usecase.NewRoleUseCase(roleRepo),
		UserUC:          usecase.NewUserUseCase(userRepo),
		CustomerUC:      usecase.NewCustomerUseCase(customerRepo),
		ReservationUC:   usecase.NewReservationUseCase(reservationRepo),
		MenuCategoryUC:  usecase.NewMenuCategoryUseCase(menuCategoryRepo),
		MenuItemUC:      usecase.NewMenuItemUseCase(menuItemRepo),
		InventoryUC:     usecase.NewInventoryUseCase(inventoryRepo),
		RecipeItemUC:    usecase.NewRecipeItemUseCase(recipeItemRepo),
		OrderUC:         usecase.NewOrderUseCase(orderRepo),
		OrderItemUC:     usecase.NewOrderItemUseCase(orderItemRepo),
		KitchenTicketUC: usecase.NewKitchenTicketUseCase(kitchenTicketRepo),
		InvoiceUC:       usecase.NewInvoiceUseCase(invoiceRepo, paymentRepo, pdfGenerator),
		PaymentUC:       usecase.NewPaymentUseCase(paymentRepo),
		AuditLogUC:      usecase.NewAuditLogUseCase(auditLogRepo),
		UserRepo:        userRepo,
		JWTSecret:       cfg.JWT.Secret,
	}

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
		Title:    cfg.App.Name,
	}))

	httpRouter.Router(app, deps)

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
