package repository

import (
	"context"
	"time"

	"github.com/ao-tech/club-manager/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindConflict reports which of username/email is already taken, if any.
	FindConflict(ctx context.Context, username, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, token string) error
}

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, id string) error
	// Attendance returns the member's session history, newest first,
	// optionally limited to sessions on or after since.
	Attendance(ctx context.Context, memberID string, since *time.Time) ([]*domain.MemberAttendance, error)
}

type TrainingSessionRepository interface {
	Create(ctx context.Context, session *domain.TrainingSession) error
	Replace(ctx context.Context, id string, date time.Time, roster []domain.TrainingSessionMember) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.TrainingSession, error)
	List(ctx context.Context) ([]*domain.TrainingSession, error)
	Count(ctx context.Context, since *time.Time) (int64, error)
}

type AdminActionRepository interface {
	// ApproveUser and PromoteUser write the audit entry and the user mutation
	// in one transaction; neither survives without the other.
	ApproveUser(ctx context.Context, adminID, targetID uuid.UUID) error
	PromoteUser(ctx context.Context, adminID, targetID uuid.UUID) error
	// DeleteUser is transactional but unaudited: audit rows cascade away with
	// their target, so an entry for the deletion could never outlive it.
	DeleteUser(ctx context.Context, adminID, targetID uuid.UUID) error
	History(ctx context.Context) ([]*domain.AdminActionRecord, error)
}

type Repositories struct {
	User            UserRepository
	Session         SessionRepository
	Member          MemberRepository
	TrainingSession TrainingSessionRepository
	AdminAction     AdminActionRepository
}
