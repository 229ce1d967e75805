package coach

import (
	"context"
	"log"
	"time"

	"gymdesk/internal/domain/attendance"
	"gymdesk/internal/domain/client"
	"gymdesk/internal/domain/enrollment"
	"gymdesk/internal/pkg/clock"
)

// ClientStore is the slice of the client repository the detectors need.
type ClientStore interface {
	ListByGym(ctx context.Context, gymID int64) ([]*client.Client, error)
	ListActiveByGym(ctx context.Context, gymID int64) ([]*client.Client, error)
}

// AttendanceStore supplies bulk attendance data, one query per gym.
type AttendanceStore interface {
	ListSince(ctx context.Context, gymID int64, since time.Time) ([]*attendance.Attendance, error)
	LastDateByClient(ctx context.Context, gymID int64) (map[int64]time.Time, error)
	LifetimeCountByClient(ctx context.Context, gymID int64) (map[int64]int, error)
}

// EnrollmentStore supplies every enrollment of a gym.
type EnrollmentStore interface {
	ListByGym(ctx context.Context, gymID int64) ([]*enrollment.Enrollment, error)
}

// Reconciler syncs enrollment statuses before problem detection so the
// detector reads consistent flags.
type Reconciler interface {
	ReconcileGym(ctx context.Context, gymID int64) (*enrollment.ReconcileSummary, error)
}

// Detector derives per-client engagement signals for one gym.
type Detector struct {
	clients     ClientStore
	attendance  AttendanceStore
	enrollments EnrollmentStore
	reconciler  Reconciler
	clk         clock.Clock
}

func NewDetector(clients ClientStore, attendance AttendanceStore, enrollments EnrollmentStore, reconciler Reconciler, clk clock.Clock) *Detector {
	return &Detector{
		clients:     clients,
		attendance:  attendance,
		enrollments: enrollments,
		reconciler:  reconciler,
		clk:         clk,
	}
}

// DetectProblems flags each client of the gym with at most one problem,
// chosen by priority: expired plan, inactive flag, attendance gap. A client
// who is both plan-expired and long-absent is labeled plan_expired only.
//
// The reconciler runs first so active flags and enrollment states are
// consistent with today's date.
func (d *Detector) DetectProblems(ctx context.Context, gymID int64) ([]ProblemReport, error) {
	if _, err := d.reconciler.ReconcileGym(ctx, gymID); err != nil {
		// detection still works on yesterday's flags; keep going
		log.Printf("coach: reconcile before detection failed gym_id=%d: %v", gymID, err)
	}

	clients, err := d.clients.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}

	enrollments, err := d.enrollments.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}
	byClient := make(map[int64][]*enrollment.Enrollment)
	for _, e := range enrollments {
		byClient[e.ClientID] = append(byClient[e.ClientID], e)
	}

	lastVisits, err := d.attendance.LastDateByClient(ctx, gymID)
	if err != nil {
		return nil, err
	}

	today := clock.Today(d.clk)
	var reports []ProblemReport

	for _, cl := range clients {
		hasCurrent, hasExpired := false, false
		for _, e := range byClient[cl.ID] {
			switch {
			case e.IsCurrent(today):
				hasCurrent = true
			case e.Status == enrollment.StatusExpired:
				hasExpired = true
			}
		}

		days := noVisitSentinel
		var lastVisit *time.Time
		if last, ok := lastVisits[cl.ID]; ok {
			days = clock.DaysBetween(today, last)
			lv := last
			lastVisit = &lv
		}

		var category ProblemCategory
		switch {
		case hasExpired && !hasCurrent:
			category = ProblemPlanExpired
		case !cl.Active:
			category = ProblemInactive
		case hasCurrent && days >= 2:
			category = ProblemAbsence
		default:
			continue
		}

		reports = append(reports, ProblemReport{
			ClientID:           cl.ID,
			ClientName:         cl.Name,
			Category:           category,
			DaysSinceLastVisit: days,
			LastVisit:          lastVisit,
		})
	}

	return reports, nil
}
