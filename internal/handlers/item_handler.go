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

type ItemHandler struct {
	Catalog *services.CatalogService
	Audit   *services.AuditService
}

func NewItemHandler(catalog *services.CatalogService, audit *services.AuditService) *ItemHandler {
	return &ItemHandler{Catalog: catalog, Audit: audit}
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}

	item, err := h.Catalog.CreateItem(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	if user, ok := middleware.GetUserFromContext(r.Context()); ok {
		h.Audit.Record(r.Context(), services.EventItemCreated,
			fmt.Sprintf("item %q created", item.Name),
			"", getIPAddress(r), user.ID, services.StatusOK)
	}

	utils.JSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	item, err := h.Catalog.GetItem(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}

	item, err := h.Catalog.UpdateItem(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	if user, ok := middleware.GetUserFromContext(r.Context()); ok {
		h.Audit.Record(r.Context(), services.EventItemUpdated,
			fmt.Sprintf("item %q updated", item.Name),
			"", getIPAddress(r), user.ID, services.StatusOK)
	}

	utils.JSON(w, http.StatusOK, item)
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.ListItems(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, items)
}

// ListActive serves the cached active-items listing
func (h *ItemHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	data, err := h.Catalog.ListActiveItems(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
