package handlers

import (
	"fmt"
	"net/http"

	"stock-backend/internal/middleware"
	"stock-backend/internal/models"
	"stock-backend/internal/services"
	"stock-backend/pkg/utils"
)

type PermissionHandler struct {
	Permissions *services.PermissionService
	Audit       *services.AuditService
}

func NewPermissionHandler(permissions *services.PermissionService, audit *services.AuditService) *PermissionHandler {
	return &PermissionHandler{Permissions: permissions, Audit: audit}
}

// Create files an access request on behalf of the authenticated user
func (h *PermissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Not authenticated"})
		return
	}

	var req models.CreatePermissionRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}

	request, err := h.Permissions.FileRequest(r.Context(), &req, user.ID)
	if err != nil {
		utils.Error(w, err)
		return
	}

	h.Audit.Record(r.Context(), services.EventPermissionFiled,
		fmt.Sprintf("%s filed a permission request", user.Username),
		"", getIPAddress(r), user.ID, services.StatusOK)

	utils.JSON(w, http.StatusCreated, request)
}

// ListMine returns the authenticated user's own requests
func (h *PermissionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Not authenticated"})
		return
	}

	requests, err := h.Permissions.ListUserRequests(r.Context(), user.ID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, requests)
}

// List returns all filed requests, admin only (enforced by routing)
func (h *PermissionHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Permissions.ListRequests(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, requests)
}
