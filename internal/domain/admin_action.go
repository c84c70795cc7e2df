package domain

import (
	"time"

	"github.com/google/uuid"
)

type AdminActionType string

const (
	ActionApprove   AdminActionType = "approve"
	ActionMakeAdmin AdminActionType = "make_admin"
	ActionDelete    AdminActionType = "delete"
)

// AdminAction is an audit entry for a privileged user mutation. An entry
// exists iff the paired mutation committed; both writes share a transaction.
// Entries cascade away with the admin or target user.
type AdminAction struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AdminID      uuid.UUID       `json:"admin_id" gorm:"type:uuid;not null"`
	Admin        User            `json:"-" gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE"`
	TargetUserID uuid.UUID       `json:"target_user_id" gorm:"type:uuid;not null"`
	TargetUser   User            `json:"-" gorm:"foreignKey:TargetUserID;constraint:OnDelete:CASCADE"`
	ActionType   AdminActionType `json:"action_type" gorm:"not null"`
	CreatedAt    time.Time       `json:"action_date"`
}

// AdminActionRecord is an audit entry joined with usernames for display.
type AdminActionRecord struct {
	ID             uuid.UUID       `json:"id"`
	ActionType     AdminActionType `json:"action_type"`
	ActionDate     time.Time       `json:"action_date"`
	AdminUsername  string          `json:"admin_username"`
	TargetUsername string          `json:"target_username"`
}
