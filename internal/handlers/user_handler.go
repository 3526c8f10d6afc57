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

type UserHandler struct {
	Users *services.UserService
	Audit *services.AuditService
}

func NewUserHandler(users *services.UserService, audit *services.AuditService) *UserHandler {
	return &UserHandler{Users: users, Audit: audit}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}

	user, err := h.Users.CreateUser(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	if actor, ok := middleware.GetUserFromContext(r.Context()); ok {
		h.Audit.Record(r.Context(), services.EventUserCreated,
			fmt.Sprintf("account %q created", user.Username),
			"", getIPAddress(r), actor.ID, services.StatusOK)
	}

	utils.JSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	user, err := h.Users.GetUser(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, err)
		return
	}

	user, err := h.Users.UpdateUser(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	if actor, ok := middleware.GetUserFromContext(r.Context()); ok {
		h.Audit.Record(r.Context(), services.EventUserUpdated,
			fmt.Sprintf("account %q updated", user.Username),
			"", getIPAddress(r), actor.ID, services.StatusOK)
	}

	utils.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.ListUsers(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, users)
}

// ToggleActive suspends or restores an account
func (h *UserHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	user, err := h.Users.ToggleUserActive(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	if actor, ok := middleware.GetUserFromContext(r.Context()); ok {
		h.Audit.Record(r.Context(), services.EventUserUpdated,
			fmt.Sprintf("account %q active=%t", user.Username, user.IsActive),
			"", getIPAddress(r), actor.ID, services.StatusOK)
	}

	utils.JSON(w, http.StatusOK, user)
}
