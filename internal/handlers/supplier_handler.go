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

type SupplierHandler struct {
	Suppliers *services.SupplierService
	Audit     *services.AuditService
}

func NewSupplierHandler(suppliers *services.SupplierService, audit *services.AuditService) *SupplierHandler {
	return &SupplierHandler{Suppliers: suppliers, Audit: audit}
}

func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSupplierRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}

	supplier, err := h.Suppliers.CreateSupplier(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	if user, ok := middleware.GetUserFromContext(r.Context()); ok {
		h.Audit.Record(r.Context(), services.EventSupplierCreated,
			fmt.Sprintf("supplier %q created", supplier.Name),
			"", getIPAddress(r), user.ID, services.StatusOK)
	}

	utils.JSON(w, http.StatusCreated, supplier)
}

func (h *SupplierHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	supplier, err := h.Suppliers.GetSupplier(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, supplier)
}

func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateSupplierRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}

	supplier, err := h.Suppliers.UpdateSupplier(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	if user, ok := middleware.GetUserFromContext(r.Context()); ok {
		h.Audit.Record(r.Context(), services.EventSupplierUpdated,
			fmt.Sprintf("supplier %q updated", supplier.Name),
			"", getIPAddress(r), user.ID, services.StatusOK)
	}

	utils.JSON(w, http.StatusOK, supplier)
}

func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.Suppliers.ListSuppliers(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, suppliers)
}
