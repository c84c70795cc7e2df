package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/ao-tech/club-manager/internal/api/middleware"
	"github.com/ao-tech/club-manager/internal/domain"
	"github.com/ao-tech/club-manager/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		log.Printf("ERROR [AdminHandler.ListUsers] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) ApproveUser(w http.ResponseWriter, r *http.Request) {
	h.mutateUser(w, r, "Failed to approve user", "User approved successfully", h.adminService.ApproveUser)
}

func (h *AdminHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	h.mutateUser(w, r, "Failed to make user admin", "User is now an admin", h.adminService.MakeAdmin)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	h.mutateUser(w, r, "Failed to delete user", "User deleted successfully", h.adminService.DeleteUser)
}

func (h *AdminHandler) Actions(w http.ResponseWriter, r *http.Request) {
	records, err := h.adminService.Actions(r.Context())
	if err != nil {
		log.Printf("ERROR [AdminHandler.Actions] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch admin actions")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

type adminMutation func(ctx context.Context, adminID, targetID uuid.UUID) error

func (h *AdminHandler) mutateUser(w http.ResponseWriter, r *http.Request, failMsg, okMsg string, mutate adminMutation) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := mutate(r.Context(), adminID, targetID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("ERROR [AdminHandler] %s: %v", failMsg, err)
		respondError(w, http.StatusInternalServerError, failMsg)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": okMsg})
}
