package auth

import "time"

type Role string

const (
	RoleOwner        Role = "owner"
	RoleReceptionist Role = "receptionist"
)

// User is a staff login account. Gym members (clients) do not log in; they are
// plain records owned by a gym.
type User struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	GymID        int64     `gorm:"column:gym_id;index" json:"gym_id"`
	Email        string    `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Name         string    `gorm:"column:name" json:"name"`
	Role         Role      `gorm:"column:role" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }
