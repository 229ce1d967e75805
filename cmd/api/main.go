package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gymdesk/internal/config"
	"gymdesk/internal/database"
	"gymdesk/internal/domain/attendance"
	"gymdesk/internal/domain/auth"
	"gymdesk/internal/domain/billing"
	"gymdesk/internal/domain/client"
	"gymdesk/internal/domain/coach"
	"gymdesk/internal/domain/enrollment"
	"gymdesk/internal/domain/gym"
	"gymdesk/internal/domain/payment"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/middleware"
	"gymdesk/internal/pkg/clock"
	jwtsvc "gymdesk/internal/pkg/jwt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	clk := clock.System()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	// repositories
	userRepo := auth.NewRepository(db)
	gymRepo := gym.NewRepository(db)
	clientRepo := client.NewRepository(db)
	planRepo := plan.NewRepository(db)
	enrollmentRepo := enrollment.NewRepository(db)
	attendanceRepo := attendance.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	billingRepo := billing.NewRepository(db)
	contentRepo := coach.NewContentRepository(db)

	// services
	billingService := billing.NewService(billingRepo, clk, cfg.TrialDays)
	authService := auth.NewService(userRepo, gymRepo, j, billingService)
	enrollmentService := enrollment.NewService(enrollmentRepo, clientRepo, planRepo, clk)
	attendanceService := attendance.NewService(attendanceRepo, clientRepo, clk)

	detector := coach.NewDetector(clientRepo, attendanceRepo, enrollmentRepo, enrollmentService, clk)
	var remote coach.Generator
	if cfg.OpenAIKey != "" {
		remote = coach.NewOpenAIGenerator(cfg.OpenAIKey, cfg.OpenAITextModel, cfg.OpenAIImageModel)
	}
	coachService := coach.NewService(detector, contentRepo, coach.NewLocalGenerator(), remote, clk, rng)

	// handlers
	authHandler := auth.NewHandler(authService)
	gymHandler := gym.NewHandler(gymRepo)
	clientHandler := client.NewHandler(clientRepo)
	planHandler := plan.NewHandler(planRepo)
	enrollmentHandler := enrollment.NewHandler(enrollmentService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	paymentHandler := payment.NewHandler(paymentRepo, clk)
	billingHandler := billing.NewHandler(billingService)
	coachHandler := coach.NewHandler(coachService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		auth.RegisterPublicRoutes(v1, authHandler)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j), middleware.StaffOnly())
		{
			auth.RegisterProtectedRoutes(protected, authHandler, middleware.OwnerOnly())
			billing.RegisterRoutes(protected, billingHandler, middleware.OwnerOnly())

			// everything below stops writing once the trial/subscription ends
			gated := protected.Group("/")
			gated.Use(billing.Gate(billingService))
			{
				gym.RegisterRoutes(gated, gymHandler, middleware.OwnerOnly())
				client.RegisterRoutes(gated, clientHandler, middleware.OwnerOnly())
				plan.RegisterRoutes(gated, planHandler, middleware.OwnerOnly())
				enrollment.RegisterRoutes(gated, enrollmentHandler)
				attendance.RegisterRoutes(gated, attendanceHandler)
				payment.RegisterRoutes(gated, paymentHandler)
				coach.RegisterRoutes(gated, coachHandler)
			}
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
