package handlers

import (
	"net/http"

	"stock-backend/internal/models"
	"stock-backend/internal/services"
	"stock-backend/pkg/utils"
)

type EventHandler struct {
	Audit *services.AuditService
}

func NewEventHandler(audit *services.AuditService) *EventHandler {
	return &EventHandler{Audit: audit}
}

// List returns audit events matching the query filters, newest first
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := &models.EventFilter{
		Action: r.URL.Query().Get("action"),
	}

	var err error
	if filter.UserID, err = parseIntParam(r, "user_id"); err != nil {
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

	events, err := h.Audit.List(r.Context(), filter)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, events)
}
