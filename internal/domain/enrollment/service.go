package enrollment

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"gymdesk/internal/domain/client"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/pkg/clock"
)

// ClientStore is the slice of the client repository the enrollment
// service needs.
type ClientStore interface {
	GetByID(ctx context.Context, gymID, id int64) (*client.Client, error)
	ListByGym(ctx context.Context, gymID int64) ([]*client.Client, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

// PlanStore resolves plans when enrolling.
type PlanStore interface {
	GetByID(ctx context.Context, gymID, id int64) (*plan.Plan, error)
}

type Service struct {
	repo    Repository
	clients ClientStore
	plans   PlanStore
	clk     clock.Clock
}

func NewService(repo Repository, clients ClientStore, plans PlanStore, clk clock.Clock) *Service {
	return &Service{repo: repo, clients: clients, plans: plans, clk: clk}
}

// Enroll creates a new "current" enrollment starting today (or at the given
// start date) running for the plan's duration, and marks the client active.
func (s *Service) Enroll(ctx context.Context, gymID, clientID, planID int64, startDate *time.Time) (*Enrollment, error) {
	if _, err := s.clients.GetByID(ctx, gymID, clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	p, err := s.plans.GetByID(ctx, gymID, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	start := clock.Today(s.clk)
	if startDate != nil {
		start = clock.DateOf(*startDate)
	}

	e := &Enrollment{
		GymID:     gymID,
		ClientID:  clientID,
		PlanID:    planID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, p.DurationDays),
		Status:    StatusCurrent,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	// new current enrollment implies the client is active again
	if err := s.clients.SetActive(ctx, clientID, true); err != nil {
		log.Printf("enroll: set active failed client_id=%d: %v", clientID, err)
	}

	return e, nil
}

func (s *Service) ListByClient(ctx context.Context, gymID, clientID int64) ([]*Enrollment, error) {
	return s.repo.ListByClient(ctx, gymID, clientID)
}

func (s *Service) Cancel(ctx context.Context, gymID, id int64) error {
	e, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEnrollmentNotFound
		}
		return err
	}
	return s.repo.UpdateStatus(ctx, e.ID, StatusCancelled)
}

// ReasonHasCurrentPlan and ReasonPlanExpired label why the reconciler flipped
// a client's active flag.
const (
	ReasonHasCurrentPlan = "has current plan"
	ReasonPlanExpired    = "plan expired"
)

type ClientChange struct {
	ClientID int64  `json:"client_id"`
	Name     string `json:"name"`
	Active   bool   `json:"active"`
	Reason   string `json:"reason"`
}

type ReconcileSummary struct {
	Scanned int            `json:"scanned"`
	Changes []ClientChange `json:"changes"`
}

// ReconcileGym scans every client of the gym and syncs derived state with the
// enrollment rows:
//
//   - "current" enrollments whose end date has passed are rewritten to
//     "expired", one write per stale row, not transactional;
//   - each client's active flag is set to whether any current enrollment
//     remains valid, one write per changed client.
//
// A failed write is logged and skipped; it never aborts the scan. Concurrent
// runs for the same gym race benignly: both converge on the same end state,
// last write wins per row. A second pass over already-consistent data
// changes nothing.
func (s *Service) ReconcileGym(ctx context.Context, gymID int64) (*ReconcileSummary, error) {
	clients, err := s.clients.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}

	all, err := s.repo.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}
	byClient := make(map[int64][]*Enrollment, len(clients))
	for _, e := range all {
		byClient[e.ClientID] = append(byClient[e.ClientID], e)
	}

	today := clock.Today(s.clk)
	summary := &ReconcileSummary{Scanned: len(clients), Changes: []ClientChange{}}

	for _, cl := range clients {
		hasCurrent := false
		for _, e := range byClient[cl.ID] {
			if e.IsStale(today) {
				if err := s.repo.UpdateStatus(ctx, e.ID, StatusExpired); err != nil {
					log.Printf("reconcile: expire failed enrollment_id=%d client_id=%d: %v", e.ID, cl.ID, err)
					continue
				}
				e.Status = StatusExpired
				continue
			}
			if e.IsCurrent(today) {
				hasCurrent = true
			}
		}

		if cl.Active == hasCurrent {
			continue
		}
		if err := s.clients.SetActive(ctx, cl.ID, hasCurrent); err != nil {
			log.Printf("reconcile: set active failed client_id=%d: %v", cl.ID, err)
			continue
		}
		reason := ReasonPlanExpired
		if hasCurrent {
			reason = ReasonHasCurrentPlan
		}
		summary.Changes = append(summary.Changes, ClientChange{
			ClientID: cl.ID,
			Name:     cl.Name,
			Active:   hasCurrent,
			Reason:   reason,
		})
	}

	return summary, nil
}
