package service

import (
	"context"
	"time"

	"github.com/ao-tech/club-manager/internal/domain"
	"github.com/ao-tech/club-manager/internal/repository"
	"github.com/google/uuid"
)

type MemberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

type MemberInput struct {
	Name string
	Age  int
	Type string
}

func (s *MemberService) Create(ctx context.Context, input MemberInput) (*domain.Member, error) {
	member := &domain.Member{
		ID:   uuid.New().String(),
		Name: input.Name,
		Age:  input.Age,
		Type: input.Type,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) Get(ctx context.Context, id string) (*domain.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}

func (s *MemberService) List(ctx context.Context) ([]*domain.Member, error) {
	return s.memberRepo.List(ctx)
}

func (s *MemberService) Update(ctx context.Context, id string, input MemberInput) error {
	return s.memberRepo.Update(ctx, &domain.Member{
		ID:   id,
		Name: input.Name,
		Age:  input.Age,
		Type: input.Type,
	})
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	return s.memberRepo.Delete(ctx, id)
}

func (s *MemberService) Attendance(ctx context.Context, memberID, period string) ([]*domain.MemberAttendance, error) {
	return s.memberRepo.Attendance(ctx, memberID, periodStart(period))
}

// periodStart maps a reporting period to its lower date bound; nil means no
// bound ("overall").
func periodStart(period string) *time.Time {
	var since time.Time
	switch period {
	case "1month":
		since = time.Now().AddDate(0, -1, 0)
	case "3months":
		since = time.Now().AddDate(0, -3, 0)
	case "6months":
		since = time.Now().AddDate(0, -6, 0)
	default:
		return nil
	}
	return &since
}
