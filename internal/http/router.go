package http

import (
	"stock-backend/internal/handlers"
	"stock-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	categoryHandler *handlers.CategoryHandler,
	itemHandler *handlers.ItemHandler,
	supplierHandler *handlers.SupplierHandler,
	userHandler *handlers.UserHandler,
	arrivalHandler *handlers.ArrivalHandler,
	transferHandler *handlers.TransferHandler,
	permissionHandler *handlers.PermissionHandler,
	eventHandler *handlers.EventHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	meAPI := r.PathPrefix("/auth/me").Subrouter()
	meAPI.Use(authMiddleware.Authenticate)
	meAPI.HandleFunc("", authHandler.Me).Methods("GET")

	// Catalog - reads for any authenticated user, writes admin only
	categoriesAPI := r.PathPrefix("/api/categories").Subrouter()
	categoriesAPI.Use(authMiddleware.Authenticate)
	categoriesAPI.HandleFunc("", categoryHandler.List).Methods("GET")
	categoriesAPI.HandleFunc("/{id:[0-9]+}", categoryHandler.Get).Methods("GET")

	categoriesAdminAPI := r.PathPrefix("/api/categories").Subrouter()
	categoriesAdminAPI.Use(authMiddleware.RequireAdmin)
	categoriesAdminAPI.HandleFunc("", categoryHandler.Create).Methods("POST")
	categoriesAdminAPI.HandleFunc("/{id}", categoryHandler.Update).Methods("PUT")

	itemsAPI := r.PathPrefix("/api/items").Subrouter()
	itemsAPI.Use(authMiddleware.Authenticate)
	itemsAPI.HandleFunc("", itemHandler.List).Methods("GET")
	itemsAPI.HandleFunc("/active", itemHandler.ListActive).Methods("GET")
	itemsAPI.HandleFunc("/{id}", itemHandler.Get).Methods("GET")

	itemsAdminAPI := r.PathPrefix("/api/items").Subrouter()
	itemsAdminAPI.Use(authMiddleware.RequireAdmin)
	itemsAdminAPI.HandleFunc("", itemHandler.Create).Methods("POST")
	itemsAdminAPI.HandleFunc("/{id}", itemHandler.Update).Methods("PUT")

	// Party registry
	suppliersAPI := r.PathPrefix("/api/suppliers").Subrouter()
	suppliersAPI.Use(authMiddleware.Authenticate)
	suppliersAPI.HandleFunc("", supplierHandler.List).Methods("GET")
	suppliersAPI.HandleFunc("/{id}", supplierHandler.Get).Methods("GET")

	suppliersAdminAPI := r.PathPrefix("/api/suppliers").Subrouter()
	suppliersAdminAPI.Use(authMiddleware.RequireAdmin)
	suppliersAdminAPI.HandleFunc("", supplierHandler.Create).Methods("POST")
	suppliersAdminAPI.HandleFunc("/{id}", supplierHandler.Update).Methods("PUT")

	// User accounts - admin only
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.RequireAdmin)
	usersAPI.HandleFunc("", userHandler.List).Methods("GET")
	usersAPI.HandleFunc("", userHandler.Create).Methods("POST")
	usersAPI.HandleFunc("/{id}", userHandler.Get).Methods("GET")
	usersAPI.HandleFunc("/{id}", userHandler.Update).Methods("PUT")
	usersAPI.HandleFunc("/{id}/toggle-active", userHandler.ToggleActive).Methods("PATCH")

	// Ledger - reads for any authenticated user, encoding needs the
	// can_encode flag or admin
	arrivalsAPI := r.PathPrefix("/api/arrivals").Subrouter()
	arrivalsAPI.Use(authMiddleware.Authenticate)
	arrivalsAPI.HandleFunc("", arrivalHandler.List).Methods("GET")
	arrivalsAPI.HandleFunc("/{id}", arrivalHandler.Get).Methods("GET")

	arrivalsEncodeAPI := r.PathPrefix("/api/arrivals").Subrouter()
	arrivalsEncodeAPI.Use(authMiddleware.RequireEncoder)
	arrivalsEncodeAPI.HandleFunc("", arrivalHandler.Create).Methods("POST")

	transfersAPI := r.PathPrefix("/api/transfers").Subrouter()
	transfersAPI.Use(authMiddleware.Authenticate)
	transfersAPI.HandleFunc("", transferHandler.List).Methods("GET")
	transfersAPI.HandleFunc("/{id}", transferHandler.Get).Methods("GET")

	transfersEncodeAPI := r.PathPrefix("/api/transfers").Subrouter()
	transfersEncodeAPI.Use(authMiddleware.RequireEncoder)
	transfersEncodeAPI.HandleFunc("", transferHandler.Create).Methods("POST")

	// Permission requests - filing is open to any authenticated user,
	// reading the queue is admin only
	permissionsAPI := r.PathPrefix("/api/permissions").Subrouter()
	permissionsAPI.Use(authMiddleware.Authenticate)
	permissionsAPI.HandleFunc("", permissionHandler.Create).Methods("POST")
	permissionsAPI.HandleFunc("/mine", permissionHandler.ListMine).Methods("GET")

	permissionsAdminAPI := r.PathPrefix("/api/permissions").Subrouter()
	permissionsAdminAPI.Use(authMiddleware.RequireAdmin)
	permissionsAdminAPI.HandleFunc("", permissionHandler.List).Methods("GET")

	// Audit log - admin only
	eventsAPI := r.PathPrefix("/api/events").Subrouter()
	eventsAPI.Use(authMiddleware.RequireAdmin)
	eventsAPI.HandleFunc("", eventHandler.List).Methods("GET")

	// Reports - admin only
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.RequireAdmin)
	reportsAPI.HandleFunc("/arrivals", reportHandler.ArrivalRegister).Methods("GET")
	reportsAPI.HandleFunc("/arrivals/csv", reportHandler.ArrivalRegisterCSV).Methods("GET")
	reportsAPI.HandleFunc("/arrivals/pdf", reportHandler.ArrivalRegisterPDF).Methods("GET")

	// Health endpoints (no auth required - for probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
