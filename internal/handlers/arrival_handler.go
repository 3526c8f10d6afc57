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

type ArrivalHandler struct {
	Arrivals *services.ArrivalService
	Audit    *services.AuditService
}

func NewArrivalHandler(arrivals *services.ArrivalService, audit *services.AuditService) *ArrivalHandler {
	return &ArrivalHandler{Arrivals: arrivals, Audit: audit}
}

// Create records an arrival document. The acting user comes from the
// authenticated context, never from the request body.
func (h *ArrivalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Not authenticated"})
		return
	}

	var req models.CreateArrivalRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}

	arrival, err := h.Arrivals.CreateArrival(r.Context(), &req, user.ID)
	if err != nil {
		utils.Error(w, err)
		return
	}

	payload, _ := json.Marshal(arrival)
	h.Audit.Record(r.Context(), services.EventArrivalCreated,
		fmt.Sprintf("arrival #%d from %s, %d line(s)", arrival.ID, arrival.SupplierName, len(arrival.Lines)),
		string(payload), getIPAddress(r), user.ID, services.StatusOK)

	utils.JSON(w, http.StatusCreated, arrival)
}

// Get returns one arrival with lines and its grand total
func (h *ArrivalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	arrival, err := h.Arrivals.GetArrival(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	total, err := h.Arrivals.GrandTotal(r.Context(), arrival)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"arrival":     arrival,
		"grand_total": total,
	})
}

// List returns arrival headers matching the query filters
func (h *ArrivalHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseArrivalFilter(r)
	if err != nil {
		utils.Error(w, err)
		return
	}

	arrivals, err := h.Arrivals.ListArrivals(r.Context(), filter)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, arrivals)
}

func parseArrivalFilter(r *http.Request) (*models.ArrivalFilter, error) {
	filter := &models.ArrivalFilter{
		PaymentType: models.PaymentType(r.URL.Query().Get("payment_type")),
	}

	var err error
	if filter.SupplierID, err = parseIntParam(r, "supplier_id"); err != nil {
		return nil, err
	}
	if filter.Start, err = parseTimeParam(r, "start"); err != nil {
		return nil, err
	}
	if filter.End, err = parseTimeParam(r, "end"); err != nil {
		return nil, err
	}
	if filter.Limit, err = parseIntParam(r, "limit"); err != nil {
		return nil, err
	}
	if filter.Offset, err = parseIntParam(r, "offset"); err != nil {
		return nil, err
	}
	return filter, nil
}
