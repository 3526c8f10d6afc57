package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"stock-backend/internal/auth"
	"stock-backend/internal/cache"
	"stock-backend/internal/config"
	"stock-backend/internal/database"
	"stock-backend/internal/db"
	"stock-backend/internal/handlers"
	"stock-backend/internal/health"
	h "stock-backend/internal/http"
	"stock-backend/internal/middleware"
	"stock-backend/internal/monitoring"
	"stock-backend/internal/repositories"
	"stock-backend/internal/services"
	"stock-backend/migrations"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	// Run pending migrations before serving anything
	migrator := database.NewMigrator(pool, migrations.FS)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	// Redis is optional: catalog listings fall back to Postgres when it
	// is unavailable
	if err := cache.Init(cfg); err != nil {
		log.Printf("[Redis] Not available, catalog caching disabled: %v", err)
	} else {
		log.Println("[Redis] Connected")
	}

	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	categoryRepo := repositories.NewCategoryRepository(pool)
	itemRepo := repositories.NewItemRepository(pool)
	supplierRepo := repositories.NewSupplierRepository(pool)
	userRepo := repositories.NewUserRepository(pool)
	arrivalRepo := repositories.NewArrivalRepository(pool, itemRepo)
	transferRepo := repositories.NewTransferRepository(pool, itemRepo)
	permissionRepo := repositories.NewPermissionRepository(pool)
	eventRepo := repositories.NewEventRepository(pool)

	// Services
	catalogService := services.NewCatalogService(categoryRepo, itemRepo)
	supplierService := services.NewSupplierService(supplierRepo)
	userService := services.NewUserService(userRepo, jwtManager)
	arrivalService := services.NewArrivalService(arrivalRepo, itemRepo, supplierRepo)
	transferService := services.NewTransferService(transferRepo, itemRepo, supplierRepo)
	permissionService := services.NewPermissionService(permissionRepo)
	auditService := services.NewAuditService(eventRepo)
	reportService := services.NewReportService(arrivalRepo, itemRepo)

	// Monitoring sidecar: system stats plus live audit-event feed
	monitoringServer := monitoring.NewServer(pool, cfg.Server.MonitoringPort)
	auditService.Broadcast = monitoringServer.Publish
	go monitoringServer.Start()

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	categoryHandler := handlers.NewCategoryHandler(catalogService, auditService)
	itemHandler := handlers.NewItemHandler(catalogService, auditService)
	supplierHandler := handlers.NewSupplierHandler(supplierService, auditService)
	userHandler := handlers.NewUserHandler(userService, auditService)
	arrivalHandler := handlers.NewArrivalHandler(arrivalService, auditService)
	transferHandler := handlers.NewTransferHandler(transferService, auditService)
	permissionHandler := handlers.NewPermissionHandler(permissionService, auditService)
	eventHandler := handlers.NewEventHandler(auditService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		authHandler,
		categoryHandler,
		itemHandler,
		supplierHandler,
		userHandler,
		arrivalHandler,
		transferHandler,
		permissionHandler,
		eventHandler,
		reportHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
