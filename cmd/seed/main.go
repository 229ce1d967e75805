package main

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymdesk/internal/database"
	"gymdesk/internal/domain/attendance"
	"gymdesk/internal/domain/auth"
	"gymdesk/internal/domain/billing"
	"gymdesk/internal/domain/client"
	"gymdesk/internal/domain/enrollment"
	"gymdesk/internal/domain/gym"
	"gymdesk/internal/domain/payment"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/pkg/clock"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "gymdesk.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM generated_contents")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM attendances")
	db.Exec("DELETE FROM enrollments")
	db.Exec("DELETE FROM plans")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM account_subscriptions")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM gyms")

	clk := clock.System()
	today := clock.Today(clk)

	// ================== OWNER + GYM ==================
	log.Println("Creating owner and gym...")
	ownerHash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
	owner := auth.User{
		Email:        "dueno@powergym.com",
		PasswordHash: string(ownerHash),
		Name:         "Marcos Díaz",
		Role:         auth.RoleOwner,
	}
	db.Create(&owner)

	g := gym.Gym{
		OwnerUserID: owner.ID,
		Name:        "Power Gym Centro",
		Phone:       "+54 11 5555 0101",
		Address:     "Av. Corrientes 1234, Buenos Aires",
	}
	db.Create(&g)
	db.Model(&auth.User{}).Where("id = ?", owner.ID).Update("gym_id", g.ID)

	recHash, _ := bcrypt.GenerateFromPassword([]byte("recep123"), bcrypt.DefaultCost)
	db.Create(&auth.User{
		GymID:        g.ID,
		Email:        "recepcion@powergym.com",
		PasswordHash: string(recHash),
		Name:         "Carla Núñez",
		Role:         auth.RoleReceptionist,
	})

	db.Create(&billing.AccountSubscription{
		ID:          uuid.NewString(),
		GymID:       g.ID,
		Status:      billing.StatusTrialing,
		TrialEndsAt: today.AddDate(0, 0, 14),
	})

	// ================== PLANS ==================
	log.Println("Creating plans...")
	monthly := plan.Plan{GymID: g.ID, Name: "Mensual", Price: 15000, DurationDays: 30, IsActive: true}
	db.Create(&monthly)
	quarterly := plan.Plan{GymID: g.ID, Name: "Trimestral", Price: 40000, DurationDays: 90, IsActive: true}
	db.Create(&quarterly)
	db.Create(&plan.Plan{GymID: g.ID, Name: "Pase diario", Price: 1200, DurationDays: 1, IsActive: true})

	s := seeder{db: db, gymID: g.ID}

	// ================== CLIENTS ==================
	// Each client models a different attendance pattern so the coach
	// detectors have something to find on a fresh database.
	log.Println("Creating clients...")

	// Regular with a long streak: shows up every day for two weeks.
	ana := s.client("Ana Ruiz", "+54 11 5555 0201")
	s.enroll(ana, monthly.ID, today.AddDate(0, 0, -20), 30)
	for d := 0; d < 14; d++ {
		s.checkIn(ana, today.AddDate(0, 0, -d))
	}

	// Comeback: trained a lot this month but the streak is only 4 days old.
	rita := s.client("Rita Gómez", "+54 11 5555 0202")
	s.enroll(rita, monthly.ID, today.AddDate(0, 0, -10), 30)
	for d := 0; d < 4; d++ {
		s.checkIn(rita, today.AddDate(0, 0, -d))
	}
	for d := 10; d < 16; d++ {
		s.checkIn(rita, today.AddDate(0, 0, -d))
	}

	// Absent: current plan but last visit was 5 days ago.
	luis := s.client("Luis Paz", "+54 11 5555 0203")
	s.enroll(luis, monthly.ID, today.AddDate(0, 0, -25), 30)
	s.checkIn(luis, today.AddDate(0, 0, -5))
	s.checkIn(luis, today.AddDate(0, 0, -6))

	// Expired plan: enrollment ended a week ago, still marked current so
	// the first reconcile pass has work to do.
	tomas := s.client("Tomás Vega", "+54 11 5555 0204")
	s.enroll(tomas, monthly.ID, today.AddDate(0, 0, -37), 30)
	s.checkIn(tomas, today.AddDate(0, 0, -8))

	// Brand new: joined this week, already came 6 times.
	sofia := s.client("Sofía Mena", "+54 11 5555 0205")
	s.enroll(sofia, quarterly.ID, today.AddDate(0, 0, -6), 90)
	for d := 0; d < 6; d++ {
		s.checkIn(sofia, today.AddDate(0, 0, -d))
	}

	// Ghost: no plan, no visits in months. Stays out of every report.
	diego := s.client("Diego Sosa", "+54 11 5555 0206")
	db.Model(&client.Client{}).Where("id = ?", diego).Update("active", false)

	// ================== PAYMENTS ==================
	log.Println("Creating payments...")
	for i, clientID := range []int64{ana, rita, luis, sofia} {
		db.Create(&payment.Payment{
			GymID:      g.ID,
			ClientID:   clientID,
			Amount:     15000,
			Method:     payment.MethodCash,
			Concept:    "Cuota mensual",
			PaidAt:     clk.Now().AddDate(0, 0, -i*3),
			RecordedBy: owner.ID,
		})
	}

	log.Println("Seed completed!")
	log.Println("Owner: dueno@powergym.com / owner123")
	log.Println("Receptionist: recepcion@powergym.com / recep123")
}

type seeder struct {
	db    *gorm.DB
	gymID int64
}

func (s seeder) client(name, phone string) int64 {
	c := client.Client{GymID: s.gymID, Name: name, Phone: phone, Active: true}
	s.db.Create(&c)
	return c.ID
}

func (s seeder) enroll(clientID, planID int64, start time.Time, days int) {
	s.db.Create(&enrollment.Enrollment{
		GymID:     s.gymID,
		ClientID:  clientID,
		PlanID:    planID,
		StartDate: clock.DateOf(start),
		EndDate:   clock.DateOf(start.AddDate(0, 0, days)),
		Status:    enrollment.StatusCurrent,
	})
}

func (s seeder) checkIn(clientID int64, day time.Time) {
	s.db.Create(&attendance.Attendance{
		GymID:       s.gymID,
		ClientID:    clientID,
		Date:        clock.DateOf(day),
		CheckedInAt: clock.DateOf(day).Add(18 * time.Hour),
	})
}
