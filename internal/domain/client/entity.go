package client

import "time"

// Client is a gym member record. Active is denormalized: it should be true iff
// the client has at least one enrollment in state "current" ending today or
// later. The enrollment reconciler keeps it in sync.
type Client struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	GymID     int64     `gorm:"column:gym_id;index" json:"gym_id"`
	Name      string    `gorm:"column:name" json:"name"`
	Phone     string    `gorm:"column:phone" json:"phone,omitempty"`
	Email     string    `gorm:"column:email" json:"email,omitempty"`
	Active    bool      `gorm:"column:active" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Client) TableName() string { return "clients" }
