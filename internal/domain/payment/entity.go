package payment

import "time"

// Method of payment accepted at the front desk
type Method string

const (
	MethodCash     Method = "cash"
	MethodCard     Method = "card"
	MethodTransfer Method = "transfer"
)

// Payment is an append-only log entry; money handling itself happens outside
// the system, this is the receptionist's record of it.
type Payment struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	GymID        int64     `gorm:"column:gym_id;index" json:"gym_id"`
	ClientID     int64     `gorm:"column:client_id;index" json:"client_id"`
	EnrollmentID *int64    `gorm:"column:enrollment_id" json:"enrollment_id,omitempty"`
	Amount       float64   `gorm:"column:amount" json:"amount"`
	Method       Method    `gorm:"column:method" json:"method"`
	Concept      string    `gorm:"column:concept" json:"concept,omitempty"`
	PaidAt       time.Time `gorm:"column:paid_at" json:"paid_at"`
	RecordedBy   int64     `gorm:"column:recorded_by" json:"recorded_by"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }
