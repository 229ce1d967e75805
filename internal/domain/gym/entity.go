package gym

import "time"

// Gym is the tenant boundary. Every client, plan, enrollment, attendance and
// payment row belongs to exactly one gym, and every query filters by its id.
type Gym struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	OwnerUserID int64     `gorm:"column:owner_user_id;index" json:"owner_user_id"`
	Name        string    `gorm:"column:name" json:"name"`
	Phone       string    `gorm:"column:phone" json:"phone,omitempty"`
	Address     string    `gorm:"column:address" json:"address,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Gym) TableName() string { return "gyms" }
