package attendance

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"gymdesk/internal/domain/client"
	"gymdesk/internal/pkg/clock"
)

var ErrClientNotFound = errors.New("client not found in this gym")

type ClientStore interface {
	GetByID(ctx context.Context, gymID, id int64) (*client.Client, error)
}

type Service struct {
	repo    Repository
	clients ClientStore
	clk     clock.Clock
}

func NewService(repo Repository, clients ClientStore, clk clock.Clock) *Service {
	return &Service{repo: repo, clients: clients, clk: clk}
}

// CheckIn appends a visit row for the client, dated today in the gym
// timezone. Repeat check-ins on the same day are allowed; streaks count days,
// not rows.
func (s *Service) CheckIn(ctx context.Context, gymID, clientID int64) (*Attendance, error) {
	if _, err := s.clients.GetByID(ctx, gymID, clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	now := s.clk.Now()
	a := &Attendance{
		GymID:       gymID,
		ClientID:    clientID,
		Date:        clock.DateOf(now),
		CheckedInAt: now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) History(ctx context.Context, gymID, clientID int64, limit int) ([]*Attendance, error) {
	return s.repo.ListByClient(ctx, gymID, clientID, limit)
}

// TodayList returns every check-in of the gym for the current civil date,
// for the receptionist desk view.
func (s *Service) TodayList(ctx context.Context, gymID int64) ([]*Attendance, error) {
	return s.repo.ListByDate(ctx, gymID, clock.Today(s.clk))
}

// ListByDate returns check-ins for an arbitrary day.
func (s *Service) ListByDate(ctx context.Context, gymID int64, date time.Time) ([]*Attendance, error) {
	return s.repo.ListByDate(ctx, gymID, clock.DateOf(date))
}
