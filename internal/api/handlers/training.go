package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/ao-tech/club-manager/internal/domain"
	"github.com/ao-tech/club-manager/internal/service"
	"github.com/go-chi/chi/v5"
)

type TrainingHandler struct {
	trainingService *service.TrainingService
}

func NewTrainingHandler(trainingService *service.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService}
}

type RosterEntryRequest struct {
	ID            string `json:"id"`
	PaymentStatus string `json:"paymentStatus"`
	Details       string `json:"details"`
}

type CreateTrainingSessionRequest struct {
	ID      string               `json:"id"`
	Date    string               `json:"date"`
	Members []RosterEntryRequest `json:"members"`
}

type UpdateTrainingSessionRequest struct {
	Date    string               `json:"date"`
	Members []RosterEntryRequest `json:"members"`
}

type RosterMemberResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Type          string `json:"type"`
	PaymentStatus string `json:"paymentStatus"`
	Details       string `json:"details"`
}

type TrainingSessionResponse struct {
	ID        string                 `json:"id"`
	Date      string                 `json:"date"`
	CreatedAt time.Time              `json:"created_at"`
	Members   []RosterMemberResponse `json:"members"`
}

func (h *TrainingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTrainingSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == "" {
		respondError(w, http.StatusBadRequest, "Session id is required")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date")
		return
	}

	if err := h.trainingService.Create(r.Context(), req.ID, date, toRosterEntries(req.Members)); err != nil {
		log.Printf("ERROR [TrainingHandler.Create] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create training session")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "Training session created successfully"})
}

func (h *TrainingHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.trainingService.List(r.Context())
	if err != nil {
		log.Printf("ERROR [TrainingHandler.List] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch training sessions")
		return
	}

	out := make([]TrainingSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, toSessionResponse(session))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *TrainingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	session, err := h.trainingService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTrainingSessionNotFound) {
			respondError(w, http.StatusNotFound, "Training session not found")
			return
		}
		log.Printf("ERROR [TrainingHandler.Get] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch training session")
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(session))
}

func (h *TrainingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateTrainingSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date")
		return
	}

	if err := h.trainingService.Replace(r.Context(), id, date, toRosterEntries(req.Members)); err != nil {
		if errors.Is(err, domain.ErrTrainingSessionNotFound) {
			respondError(w, http.StatusNotFound, "Training session not found")
			return
		}
		log.Printf("ERROR [TrainingHandler.Update] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update training session")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Training session updated successfully"})
}

func (h *TrainingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.trainingService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrTrainingSessionNotFound) {
			respondError(w, http.StatusNotFound, "Training session not found")
			return
		}
		log.Printf("ERROR [TrainingHandler.Delete] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete training session")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Training session deleted successfully"})
}

func (h *TrainingHandler) Count(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	count, err := h.trainingService.Count(r.Context(), period)
	if err != nil {
		log.Printf("ERROR [TrainingHandler.Count] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch total sessions count")
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"total_sessions": count})
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func toRosterEntries(members []RosterEntryRequest) []service.RosterEntry {
	entries := make([]service.RosterEntry, 0, len(members))
	for _, m := range members {
		entries = append(entries, service.RosterEntry{
			MemberID:      m.ID,
			PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
			Details:       m.Details,
		})
	}
	return entries
}

func toSessionResponse(session *domain.TrainingSession) TrainingSessionResponse {
	members := make([]RosterMemberResponse, 0, len(session.Members))
	for _, row := range session.Members {
		members = append(members, RosterMemberResponse{
			ID:            row.MemberID,
			Name:          row.Member.Name,
			Age:           row.Member.Age,
			Type:          row.Member.Type,
			PaymentStatus: string(row.PaymentStatus),
			Details:       row.Details,
		})
	}
	return TrainingSessionResponse{
		ID:        session.ID,
		Date:      time.Time(session.Date).Format("2006-01-02"),
		CreatedAt: session.CreatedAt,
		Members:   members,
	}
}
