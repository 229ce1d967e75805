package enrollment

import (
	"time"

	"gymdesk/internal/pkg/clock"
)

// Status of an enrollment
type Status string

const (
	StatusCurrent   Status = "current"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// Enrollment links a client to a plan for a date range. A client may hold
// several "current" enrollments at once; no uniqueness is enforced and
// downstream logic tolerates the overlap.
type Enrollment struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	GymID     int64     `gorm:"column:gym_id;index" json:"gym_id"`
	ClientID  int64     `gorm:"column:client_id;index" json:"client_id"`
	PlanID    int64     `gorm:"column:plan_id" json:"plan_id"`
	StartDate time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date" json:"end_date"`
	Status    Status    `gorm:"column:status" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Enrollment) TableName() string { return "enrollments" }

// IsCurrent reports whether the enrollment grants access on the given day.
func (e *Enrollment) IsCurrent(today time.Time) bool {
	return e.Status == StatusCurrent && !clock.DateOf(e.EndDate).Before(clock.DateOf(today))
}

// IsStale reports a "current" enrollment whose end date has already passed;
// the reconciler flips these to expired.
func (e *Enrollment) IsStale(today time.Time) bool {
	return e.Status == StatusCurrent && clock.DateOf(e.EndDate).Before(clock.DateOf(today))
}
