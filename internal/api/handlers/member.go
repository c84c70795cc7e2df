package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ao-tech/club-manager/internal/domain"
	"github.com/ao-tech/club-manager/internal/service"
	"github.com/go-chi/chi/v5"
)

type MemberHandler struct {
	memberService *service.MemberService
}

func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

type MemberRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	Type string `json:"type"`
}

func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Name is required")
		return
	}

	member, err := h.memberService.Create(r.Context(), service.MemberInput{
		Name: req.Name,
		Age:  req.Age,
		Type: req.Type,
	})
	if err != nil {
		log.Printf("ERROR [MemberHandler.Create] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create member")
		return
	}

	respondJSON(w, http.StatusCreated, member)
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.List(r.Context())
	if err != nil {
		log.Printf("ERROR [MemberHandler.List] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch members")
		return
	}
	respondJSON(w, http.StatusOK, members)
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	member, err := h.memberService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			respondError(w, http.StatusNotFound, "Member not found")
			return
		}
		log.Printf("ERROR [MemberHandler.Get] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch member")
		return
	}
	respondJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.memberService.Update(r.Context(), id, service.MemberInput{
		Name: req.Name,
		Age:  req.Age,
		Type: req.Type,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			respondError(w, http.StatusNotFound, "Member not found")
			return
		}
		log.Printf("ERROR [MemberHandler.Update] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update member")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Member updated successfully"})
}

func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.memberService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			respondError(w, http.StatusNotFound, "Member not found")
			return
		}
		log.Printf("ERROR [MemberHandler.Delete] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete member")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Member deleted successfully"})
}

func (h *MemberHandler) Attendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	period := r.URL.Query().Get("period")

	rows, err := h.memberService.Attendance(r.Context(), id, period)
	if err != nil {
		log.Printf("ERROR [MemberHandler.Attendance] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch training sessions")
		return
	}

	type attendanceResponse struct {
		SessionID     string `json:"id"`
		Date          string `json:"date"`
		PaymentStatus string `json:"payment_status"`
		Details       string `json:"details"`
	}
	out := make([]attendanceResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, attendanceResponse{
			SessionID:     row.SessionID,
			Date:          row.Date.Format("2006-01-02"),
			PaymentStatus: string(row.PaymentStatus),
			Details:       row.Details,
		})
	}
	respondJSON(w, http.StatusOK, out)
}
