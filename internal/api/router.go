package api

import (
	"context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/accubooks/accounting-system/internal/api/handler"
	"github.com/accubooks/accounting-system/internal/api/metrics"
	"github.com/accubooks/accounting-system/internal/api/middleware"
	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
	"github.com/accubooks/accounting-system/internal/core/service"
	mongodir "github.com/accubooks/accounting-system/internal/infrastructure/db/mongo"
	redisdb "github.com/accubooks/accounting-system/internal/infrastructure/db/redis"
	"github.com/accubooks/accounting-system/internal/infrastructure/queue"
	"github.com/accubooks/accounting-system/internal/infrastructure/store"
	"github.com/accubooks/accounting-system/internal/pkg/config"
)

// App bundles the HTTP server with the pieces main needs to run alongside it.
type App struct {
	Echo       *echo.Echo
	Dispatcher *queue.Dispatcher
	Inventory  ports.InventoryService
}

// NewApp builds the full dependency graph and returns the Echo instance with
// all routes registered. db may be nil; the service then runs local-only and
// the remote strategy is left out of the chain.
func NewApp(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *App {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Persistence ---
	kv := redisdb.NewKVStore(rdb, log)
	sessions := redisdb.NewSessionStore(rdb, cfg.SessionTTL)
	users := store.NewUserStore(kv, log)
	authState := store.NewAuthStateStore(kv, log)
	products := store.NewProductStore(kv, log)
	history := store.NewStockHistoryStore(kv, log)
	books := store.NewBooksStore(kv, log)

	// --- Services ---
	localAuth := service.NewLocalAuthenticator(users, sessions, authState, log)
	localAuth.Migrated = func(fromFormat string) {
		metrics.CredentialMigrationsTotal.WithLabelValues(fromFormat).Inc()
	}

	strategies := []ports.Authenticator{}
	var directory *mongodir.UserDirectory
	if db != nil {
		directory = mongodir.NewUserDirectory(db, cfg.JWTSecret, cfg.SessionTTL)
		if err := directory.EnsureIndexes(context.Background()); err != nil {
			log.Warn().Err(err).Msg("could not ensure directory indexes")
		}
		strategies = append(strategies, service.NewRemoteAuthenticator(directory))
	}
	strategies = append(strategies, localAuth)

	authService := service.NewAuthService(strategies, users, sessions, authState, log)
	userService := service.NewUserService(users, log)
	inventoryService := service.NewInventoryService(products, history, log)
	inventoryService.Moved = func(movementType string) {
		metrics.StockMovementsTotal.WithLabelValues(movementType).Inc()
	}
	booksService := service.NewBooksService(books, log)
	supplierService := service.NewSupplierService(store.NewSupplierStore(kv, log), log)
	backupService := service.NewBackupService(books, users, log)

	dispatcher := queue.NewDispatcher(cfg.MovementWorkers, inventoryService, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(inventoryService)
	movementHandler := handler.NewMovementHandler(dispatcher)
	booksHandler := handler.NewBooksHandler(booksService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	backupHandler := handler.NewBackupHandler(backupService)
	themeHandler := handler.NewThemeHandler(store.NewThemeStore(kv))

	auth := middleware.Auth(cfg.JWTSecret, sessions, authState)
	canCreate := middleware.RequirePermission(domain.CanCreate)
	canEdit := middleware.RequirePermission(domain.CanEdit)
	canDelete := middleware.RequirePermission(domain.CanDelete)
	canManageUsers := middleware.RequirePermission(domain.CanManageUsers)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Auth routes ---
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/logout", authHandler.Logout, auth)
	e.PUT("/v1/auth/password", authHandler.ChangePassword, auth, canManageUsers)

	// --- User management (admin only) ---
	u := e.Group("/v1/users", auth, canManageUsers)
	u.GET("", userHandler.List)
	u.POST("", userHandler.Create)
	u.PUT("/:id", userHandler.Update)
	u.DELETE("/:id", userHandler.Delete)
	if directory != nil {
		remoteUserHandler := handler.NewRemoteUserHandler(directory)
		u.POST("/remote", remoteUserHandler.Register)
	}

	// --- Inventory ---
	p := e.Group("/v1/products", auth)
	p.GET("", productHandler.List)
	p.POST("", productHandler.Create, canCreate)
	p.PUT("/:id", productHandler.Update, canEdit)
	p.DELETE("/:id", productHandler.Delete, canDelete)
	p.POST("/:id/adjust", productHandler.Adjust, canCreate)

	st := e.Group("/v1/stock", auth)
	st.GET("/history", productHandler.History)
	st.GET("/alerts", productHandler.Alerts)
	st.POST("/movements", movementHandler.Receive, canCreate)
	st.POST("/movements/batch", movementHandler.ReceiveBatch, canCreate)

	// --- Suppliers ---
	sp := e.Group("/v1/suppliers", auth)
	sp.GET("", supplierHandler.List)
	sp.POST("", supplierHandler.Save, canCreate)
	sp.DELETE("/:id", supplierHandler.Delete, canDelete)
	sp.POST("/:id/transactions", supplierHandler.RecordTransaction, canCreate)

	// --- Books ---
	b := e.Group("/v1", auth)
	b.GET("/transactions", booksHandler.ListTransactions)
	b.POST("/transactions", booksHandler.SaveTransaction, canCreate)
	b.DELETE("/transactions/:id", booksHandler.DeleteTransaction, canDelete)
	b.GET("/clients", booksHandler.ListClients)
	b.POST("/clients", booksHandler.SaveClient, canCreate)
	b.DELETE("/clients/:id", booksHandler.DeleteClient, canDelete)
	b.GET("/invoices", booksHandler.ListInvoices)
	b.POST("/invoices", booksHandler.SaveInvoice, canCreate)
	b.DELETE("/invoices/:id", booksHandler.DeleteInvoice, canDelete)
	b.GET("/accounts", booksHandler.ListAccounts)
	b.POST("/accounts", booksHandler.SaveAccount, canCreate)
	b.DELETE("/accounts/:id", booksHandler.DeleteAccount, canDelete)
	b.GET("/settings", booksHandler.GetSettings)
	b.PUT("/settings", booksHandler.SaveSettings, canEdit)
	b.GET("/dashboard", booksHandler.Dashboard)
	b.GET("/theme", themeHandler.Get)
	b.PUT("/theme", themeHandler.Set)

	// --- Backup (admin only) ---
	bk := e.Group("/v1/backup", auth, canManageUsers)
	bk.GET("/export", backupHandler.Export)
	bk.POST("/import", backupHandler.Import)

	return &App{
		Echo:       e,
		Dispatcher: dispatcher,
		Inventory:  inventoryService,
	}
}
