package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"stock-backend/internal/middleware"
	"stock-backend/internal/models"
	"stock-backend/internal/services"
	"stock-backend/pkg/utils"
)

type AuthHandler struct {
	Users *services.UserService
	Audit *services.AuditService
}

func NewAuthHandler(users *services.UserService, audit *services.AuditService) *AuthHandler {
	return &AuthHandler{Users: users, Audit: audit}
}

// Login authenticates and returns a signed token. Both outcomes are
// recorded in the audit log.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}

	resp, err := h.Users.Login(r.Context(), &req)
	if err != nil {
		h.Audit.Record(r.Context(), services.EventLoginFailed,
			fmt.Sprintf("failed login for %q", req.Username),
			"", getIPAddress(r), 0, services.StatusFailed)

		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}
		utils.Error(w, err)
		return
	}

	h.Audit.Record(r.Context(), services.EventLogin,
		fmt.Sprintf("%s logged in", resp.User.Username),
		"", getIPAddress(r), resp.User.ID, services.StatusOK)

	utils.JSON(w, http.StatusOK, resp)
}

// Me returns the authenticated account
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Not authenticated"})
		return
	}
	utils.JSON(w, http.StatusOK, user)
}
