package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/ao-tech/club-manager/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type trainingSessionRepository struct {
	db *gorm.DB
}

func NewTrainingSessionRepository(db *gorm.DB) *trainingSessionRepository {
	return &trainingSessionRepository{db: db}
}

// Create inserts the parent row and its full roster in one transaction. A
// failing roster insert (unknown member, malformed row) rolls back the parent
// too; a parent without its roster must never be visible.
func (r *trainingSessionRepository) Create(ctx context.Context, session *domain.TrainingSession) error {
	roster := session.Members
	session.Members = nil

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}

		if len(roster) == 0 {
			return nil
		}
		for i := range roster {
			roster[i].SessionID = session.ID
		}
		return tx.Create(&roster).Error
	})
}

// Replace updates the parent date and substitutes the entire roster. Omitting
// a previously present member removes that member; this is not a diff.
func (r *trainingSessionRepository) Replace(ctx context.Context, id string, date time.Time, roster []domain.TrainingSessionMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.TrainingSession
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTrainingSessionNotFound
			}
			return err
		}

		err := tx.Model(&domain.TrainingSession{}).
			Where("id = ?", id).
			Update("date", datatypes.Date(date)).Error
		if err != nil {
			return err
		}

		if err := tx.Where("session_id = ?", id).Delete(&domain.TrainingSessionMember{}).Error; err != nil {
			return err
		}

		if len(roster) == 0 {
			return nil
		}
		for i := range roster {
			roster[i].SessionID = id
		}
		return tx.Create(&roster).Error
	})
}

// Delete removes the parent; the roster goes with it via cascade. Wrapped in
// a transaction so failure reporting matches Create and Replace.
func (r *trainingSessionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&domain.TrainingSession{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrTrainingSessionNotFound
		}
		return nil
	})
}

func (r *trainingSessionRepository) GetByID(ctx context.Context, id string) (*domain.TrainingSession, error) {
	var session domain.TrainingSession
	err := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Members.Member").
		First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTrainingSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *trainingSessionRepository) List(ctx context.Context) ([]*domain.TrainingSession, error) {
	var sessions []*domain.TrainingSession
	err := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Members.Member").
		Order("date DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *trainingSessionRepository) Count(ctx context.Context, since *time.Time) (int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.TrainingSession{})
	if since != nil {
		query = query.Where("date >= ?", *since)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
