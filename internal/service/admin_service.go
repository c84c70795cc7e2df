package service

import (
	"context"
	"errors"

	"github.com/ao-tech/club-manager/internal/domain"
	"github.com/ao-tech/club-manager/internal/repository"
	"github.com/google/uuid"
)

var ErrAdminRequired = errors.New("admin privileges required")

type AdminService struct {
	userRepo   repository.UserRepository
	actionRepo repository.AdminActionRepository
}

func NewAdminService(userRepo repository.UserRepository, actionRepo repository.AdminActionRepository) *AdminService {
	return &AdminService{
		userRepo:   userRepo,
		actionRepo: actionRepo,
	}
}

// RequireAdmin is the role gate. It must run after session validation and
// before any privileged statement; a valid but non-admin session never
// reaches a privileged write.
func (s *AdminService) RequireAdmin(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.IsAdmin {
		return ErrAdminRequired
	}
	return nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *AdminService) ApproveUser(ctx context.Context, adminID, targetID uuid.UUID) error {
	return s.actionRepo.ApproveUser(ctx, adminID, targetID)
}

func (s *AdminService) MakeAdmin(ctx context.Context, adminID, targetID uuid.UUID) error {
	return s.actionRepo.PromoteUser(ctx, adminID, targetID)
}

func (s *AdminService) DeleteUser(ctx context.Context, adminID, targetID uuid.UUID) error {
	return s.actionRepo.DeleteUser(ctx, adminID, targetID)
}

func (s *AdminService) Actions(ctx context.Context) ([]*domain.AdminActionRecord, error) {
	return s.actionRepo.History(ctx)
}
