package domain

import (
	"time"

	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "paid"
	PaymentUnpaid PaymentStatus = "unpaid"
)

// TrainingSession is the parent of a roster of attendance rows. The roster is
// always written as a whole: create inserts it with the parent, update
// replaces it entirely, delete cascades it away.
type TrainingSession struct {
	ID        string                  `json:"id" gorm:"primaryKey"`
	Date      datatypes.Date          `json:"date"`
	CreatedAt time.Time               `json:"created_at"`
	Members   []TrainingSessionMember `json:"members" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

// TrainingSessionMember links a member to a training session. The member
// reference is restrictive on purpose: a roster row naming an unknown member
// must fail the surrounding transaction rather than be skipped.
type TrainingSessionMember struct {
	SessionID     string        `json:"-" gorm:"primaryKey"`
	MemberID      string        `json:"member_id" gorm:"primaryKey"`
	Member        Member        `json:"-" gorm:"foreignKey:MemberID;constraint:OnDelete:RESTRICT"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"not null;default:unpaid"`
	Details       string        `json:"details"`
}

// MemberAttendance is one row of a member's session history.
type MemberAttendance struct {
	SessionID     string        `json:"id"`
	Date          time.Time     `json:"date"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Details       string        `json:"details"`
}
