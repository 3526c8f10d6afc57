package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"stock-backend/internal/middleware"
	"stock-backend/internal/models"
	"stock-backend/internal/services"
	"stock-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type TransferHandler struct {
	Transfers *services.TransferService
	Audit     *services.AuditService
}

func NewTransferHandler(transfers *services.TransferService, audit *services.AuditService) *TransferHandler {
	return &TransferHandler{Transfers: transfers, Audit: audit}
}

func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Not authenticated"})
		return
	}

	var req models.CreateTransferRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}

	transfer, err := h.Transfers.CreateTransfer(r.Context(), &req, user.ID)
	if err != nil {
		utils.Error(w, err)
		return
	}

	payload, _ := json.Marshal(transfer)
	h.Audit.Record(r.Context(), services.EventTransferCreated,
		fmt.Sprintf("transfer #%d to %s, %d line(s)", transfer.ID, transfer.SupplierName, len(transfer.Lines)),
		string(payload), getIPAddress(r), user.ID, services.StatusOK)

	utils.JSON(w, http.StatusCreated, transfer)
}

func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	transfer, err := h.Transfers.GetTransfer(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	total, err := h.Transfers.GrandTotal(r.Context(), transfer)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"transfer":    transfer,
		"grand_total": total,
	})
}

func (h *TransferHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := &models.TransferFilter{}

	var err error
	if filter.ToSupplierID, err = parseIntParam(r, "supplier_id"); err != nil {
		utils.Error(w, err)
		return
	}
	if filter.Start, err = parseTimeParam(r, "start"); err != nil {
		utils.Error(w, err)
		return
	}
	if filter.End, err = parseTimeParam(r, "end"); err != nil {
		utils.Error(w, err)
		return
	}
	if filter.Limit, err = parseIntParam(r, "limit"); err != nil {
		utils.Error(w, err)
		return
	}
	if filter.Offset, err = parseIntParam(r, "offset"); err != nil {
		utils.Error(w, err)
		return
	}

	transfers, err := h.Transfers.ListTransfers(r.Context(), filter)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, transfers)
}
