package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"gymdesk/internal/database"
	"gymdesk/internal/domain/billing"
	"gymdesk/internal/domain/client"
	"gymdesk/internal/domain/enrollment"
	"gymdesk/internal/domain/gym"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/pkg/clock"
)

// Nightly maintenance pass: reconciles enrollment statuses and client active
// flags for every gym, and expires overdue account subscriptions. The same
// logic runs on demand per gym through the API; this binary just sweeps all
// tenants from cron.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	clk := clock.System()
	gymRepo := gym.NewRepository(db)
	clientRepo := client.NewRepository(db)
	planRepo := plan.NewRepository(db)
	enrollmentService := enrollment.NewService(enrollment.NewRepository(db), clientRepo, planRepo, clk)
	billingService := billing.NewService(billing.NewRepository(db), clk, 14)

	ctx := context.Background()

	ids, err := gymRepo.ListIDs(ctx)
	if err != nil {
		log.Fatal(err)
	}

	for _, gymID := range ids {
		summary, err := enrollmentService.ReconcileGym(ctx, gymID)
		if err != nil {
			log.Printf("reconcile failed gym_id=%d: %v", gymID, err)
			continue
		}
		log.Printf("reconciled gym_id=%d scanned=%d changed=%d", gymID, summary.Scanned, len(summary.Changes))
	}

	expired, err := billingService.ExpireOverdue(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("expired %d account subscriptions", expired)
}
