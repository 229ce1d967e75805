package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"gymdesk/internal/domain/attendance"
	"gymdesk/internal/domain/auth"
	"gymdesk/internal/domain/billing"
	"gymdesk/internal/domain/client"
	"gymdesk/internal/domain/coach"
	"gymdesk/internal/domain/enrollment"
	"gymdesk/internal/domain/gym"
	"gymdesk/internal/domain/payment"
	"gymdesk/internal/domain/plan"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{TranslateError: true},
	)
}

// Migrate creates or updates every table the application uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&auth.User{},
		&gym.Gym{},
		&client.Client{},
		&plan.Plan{},
		&enrollment.Enrollment{},
		&attendance.Attendance{},
		&payment.Payment{},
		&billing.AccountSubscription{},
		&coach.GeneratedContent{},
	)
}
