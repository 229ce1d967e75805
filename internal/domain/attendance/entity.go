package attendance

import "time"

// Attendance is one check-in: append-only, one row per visit. Date is the
// civil date in the fixed gym timezone; CheckedInAt keeps the exact moment.
type Attendance struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	GymID       int64     `gorm:"column:gym_id;index" json:"gym_id"`
	ClientID    int64     `gorm:"column:client_id;index" json:"client_id"`
	Date        time.Time `gorm:"column:date;index" json:"date"`
	CheckedInAt time.Time `gorm:"column:checked_in_at" json:"checked_in_at"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Attendance) TableName() string { return "attendances" }
