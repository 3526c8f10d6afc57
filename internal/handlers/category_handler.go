package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"stock-backend/internal/middleware"
	"stock-backend/internal/models"
	"stock-backend/internal/services"
	"stock-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
	Audit   *services.AuditService
}

func NewCategoryHandler(catalog *services.CatalogService, audit *services.AuditService) *CategoryHandler {
	return &CategoryHandler{Catalog: catalog, Audit: audit}
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}

	category, err := h.Catalog.CreateCategory(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	if user, ok := middleware.GetUserFromContext(r.Context()); ok {
		h.Audit.Record(r.Context(), services.EventCategoryCreated,
			fmt.Sprintf("category %q created", category.Name),
			"", getIPAddress(r), user.ID, services.StatusOK)
	}

	utils.JSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}

	category, err := h.Catalog.UpdateCategory(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	if user, ok := middleware.GetUserFromContext(r.Context()); ok {
		h.Audit.Record(r.Context(), services.EventCategoryUpdated,
			fmt.Sprintf("category %q updated", category.Name),
			"", getIPAddress(r), user.ID, services.StatusOK)
	}

	utils.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	category, err := h.Catalog.GetCategory(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	data, err := h.Catalog.ListCategories(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
