package postgres

import (
	"context"
	"errors"

	"github.com/ao-tech/club-manager/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type adminActionRepository struct {
	db *gorm.DB
}

func NewAdminActionRepository(db *gorm.DB) *adminActionRepository {
	return &adminActionRepository{db: db}
}

// recordAndApply writes the audit entry and runs mutate inside one
// transaction. A mutation that touches zero rows reports ErrUserNotFound and
// rolls the audit entry back with it; the entry exists iff the mutation
// committed.
func (r *adminActionRepository) recordAndApply(ctx context.Context, adminID, targetID uuid.UUID, actionType domain.AdminActionType, mutate func(tx *gorm.DB) *gorm.DB) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target domain.User
		if err := tx.First(&target, "id = ?", targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}

		action := domain.AdminAction{
			ID:           uuid.New(),
			AdminID:      adminID,
			TargetUserID: targetID,
			ActionType:   actionType,
		}
		if err := tx.Create(&action).Error; err != nil {
			return err
		}

		result := mutate(tx)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
}

func (r *adminActionRepository) ApproveUser(ctx context.Context, adminID, targetID uuid.UUID) error {
	return r.recordAndApply(ctx, adminID, targetID, domain.ActionApprove, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&domain.User{}).
			Where("id = ?", targetID).
			Update("is_approved", true)
	})
}

func (r *adminActionRepository) PromoteUser(ctx context.Context, adminID, targetID uuid.UUID) error {
	return r.recordAndApply(ctx, adminID, targetID, domain.ActionMakeAdmin, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&domain.User{}).
			Where("id = ?", targetID).
			Update("is_admin", true)
	})
}

// DeleteUser removes the target user; sessions and audit entries cascade.
// The deletion itself is not audited because any entry naming the target
// would cascade away in the same transaction.
func (r *adminActionRepository) DeleteUser(ctx context.Context, adminID, targetID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&domain.User{}, "id = ?", targetID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
}

func (r *adminActionRepository) History(ctx context.Context) ([]*domain.AdminActionRecord, error) {
	var records []*domain.AdminActionRecord
	err := r.db.WithContext(ctx).
		Table("admin_actions aa").
		Select("aa.id, aa.action_type, aa.created_at AS action_date, admins.username AS admin_username, targets.username AS target_username").
		Joins("JOIN users admins ON admins.id = aa.admin_id").
		Joins("JOIN users targets ON targets.id = aa.target_user_id").
		Order("aa.created_at DESC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
