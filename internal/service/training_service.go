package service

import (
	"context"
	"time"

	"github.com/ao-tech/club-manager/internal/domain"
	"github.com/ao-tech/club-manager/internal/repository"
	"gorm.io/datatypes"
)

type TrainingService struct {
	trainingRepo repository.TrainingSessionRepository
}

func NewTrainingService(trainingRepo repository.TrainingSessionRepository) *TrainingService {
	return &TrainingService{trainingRepo: trainingRepo}
}

type RosterEntry struct {
	MemberID      string
	PaymentStatus domain.PaymentStatus
	Details       string
}

func (s *TrainingService) Create(ctx context.Context, id string, date time.Time, roster []RosterEntry) error {
	session := &domain.TrainingSession{
		ID:        id,
		Date:      datatypes.Date(date),
		CreatedAt: time.Now(),
		Members:   buildRoster(id, roster),
	}
	return s.trainingRepo.Create(ctx, session)
}

func (s *TrainingService) Replace(ctx context.Context, id string, date time.Time, roster []RosterEntry) error {
	return s.trainingRepo.Replace(ctx, id, date, buildRoster(id, roster))
}

func (s *TrainingService) Delete(ctx context.Context, id string) error {
	return s.trainingRepo.Delete(ctx, id)
}

func (s *TrainingService) Get(ctx context.Context, id string) (*domain.TrainingSession, error) {
	return s.trainingRepo.GetByID(ctx, id)
}

func (s *TrainingService) List(ctx context.Context) ([]*domain.TrainingSession, error) {
	return s.trainingRepo.List(ctx)
}

func (s *TrainingService) Count(ctx context.Context, period string) (int64, error) {
	return s.trainingRepo.Count(ctx, periodStart(period))
}

func buildRoster(sessionID string, entries []RosterEntry) []domain.TrainingSessionMember {
	roster := make([]domain.TrainingSessionMember, 0, len(entries))
	for _, e := range entries {
		status := e.PaymentStatus
		if status == "" {
			status = domain.PaymentUnpaid
		}
		roster = append(roster, domain.TrainingSessionMember{
			SessionID:     sessionID,
			MemberID:      e.MemberID,
			PaymentStatus: status,
			Details:       e.Details,
		})
	}
	return roster
}
