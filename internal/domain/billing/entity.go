package billing

import (
	"database/sql"
	"time"

	"gymdesk/internal/pkg/clock"
)

// Status of a gym's SaaS account subscription
type Status string

const (
	StatusTrialing  Status = "trialing"
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// AccountSubscription tracks whether a gym may keep using the platform.
// Every gym starts on a trial; once it ends the account must be activated,
// otherwise mutating endpoints are gated.
type AccountSubscription struct {
	ID          string       `gorm:"column:id;primaryKey" json:"id"`
	GymID       int64        `gorm:"column:gym_id;index" json:"gym_id"`
	Status      Status       `gorm:"column:status" json:"status"`
	TrialEndsAt time.Time    `gorm:"column:trial_ends_at" json:"trial_ends_at"`
	ExpiresAt   sql.NullTime `gorm:"column:expires_at" json:"expires_at,omitempty"`
	CreatedAt   time.Time    `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"column:updated_at" json:"updated_at"`
}

func (AccountSubscription) TableName() string { return "account_subscriptions" }

// IsUsable reports whether the gym may keep writing data at the given moment.
func (s *AccountSubscription) IsUsable(now time.Time) bool {
	switch s.Status {
	case StatusTrialing:
		return !now.After(s.TrialEndsAt)
	case StatusActive:
		return !s.ExpiresAt.Valid || !now.After(s.ExpiresAt.Time)
	default:
		return false
	}
}

// DaysRemaining until the trial or paid period ends (-1 = unlimited).
func (s *AccountSubscription) DaysRemaining(now time.Time) int {
	var until time.Time
	switch s.Status {
	case StatusTrialing:
		until = s.TrialEndsAt
	case StatusActive:
		if !s.ExpiresAt.Valid {
			return -1
		}
		until = s.ExpiresAt.Time
	default:
		return 0
	}
	d := clock.DaysBetween(until, now)
	if d < 0 {
		return 0
	}
	return d
}
