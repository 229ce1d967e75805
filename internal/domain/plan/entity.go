package plan

import "time"

// Plan is a membership product: a price for a number of days of access.
type Plan struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	GymID        int64     `gorm:"column:gym_id;index" json:"gym_id"`
	Name         string    `gorm:"column:name" json:"name"`
	Price        float64   `gorm:"column:price" json:"price"`
	DurationDays int       `gorm:"column:duration_days" json:"duration_days"`
	IsActive     bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Plan) TableName() string { return "plans" }
