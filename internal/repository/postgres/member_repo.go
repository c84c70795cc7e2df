package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/ao-tech/club-manager/internal/domain"
	"gorm.io/gorm"
)

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *memberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	var member domain.Member
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	var members []*domain.Member
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) Update(ctx context.Context, member *domain.Member) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Member{}).
		Where("id = ?", member.ID).
		Updates(map[string]interface{}{
			"name": member.Name,
			"age":  member.Age,
			"type": member.Type,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Member{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *memberRepository) Attendance(ctx context.Context, memberID string, since *time.Time) ([]*domain.MemberAttendance, error) {
	query := r.db.WithContext(ctx).
		Table("training_session_members tsm").
		Select("ts.id AS session_id, ts.date, tsm.payment_status, tsm.details").
		Joins("JOIN training_sessions ts ON ts.id = tsm.session_id").
		Where("tsm.member_id = ?", memberID)
	if since != nil {
		query = query.Where("ts.date >= ?", *since)
	}

	var rows []*domain.MemberAttendance
	err := query.Order("ts.date DESC").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
