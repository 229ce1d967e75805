package billing

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"gymdesk/internal/pkg/clock"
)

var (
	ErrNoSubscription = errors.New("gym has no account subscription")
)

type Service struct {
	repo      Repository
	clk       clock.Clock
	trialDays int
}

func NewService(repo Repository, clk clock.Clock, trialDays int) *Service {
	return &Service{repo: repo, clk: clk, trialDays: trialDays}
}

// StartTrial opens the trial period for a freshly registered gym.
// Idempotent: an existing subscription is left untouched.
func (s *Service) StartTrial(ctx context.Context, gymID int64) error {
	existing, err := s.repo.GetByGymID(ctx, gymID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	now := s.clk.Now()
	sub := &AccountSubscription{
		ID:          uuid.New().String(),
		GymID:       gymID,
		Status:      StatusTrialing,
		TrialEndsAt: clock.DateOf(now).AddDate(0, 0, s.trialDays),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repo.Create(ctx, sub)
}

// GetStatus returns the gym's subscription with usability derived from the
// injected clock, so a stale row past its dates already reads as expired.
func (s *Service) GetStatus(ctx context.Context, gymID int64) (*AccountSubscription, bool, error) {
	sub, err := s.repo.GetByGymID(ctx, gymID)
	if err != nil {
		return nil, false, err
	}
	if sub == nil {
		return nil, false, ErrNoSubscription
	}
	return sub, sub.IsUsable(s.clk.Now()), nil
}

// Activate marks the account paid for the given number of months.
// Payment collection itself happens out of band.
func (s *Service) Activate(ctx context.Context, gymID int64, months int) (*AccountSubscription, error) {
	if months <= 0 {
		months = 1
	}
	sub, err := s.repo.GetByGymID(ctx, gymID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNoSubscription
	}

	now := s.clk.Now()
	sub.Status = StatusActive
	sub.ExpiresAt = sql.NullTime{Time: clock.DateOf(now).AddDate(0, months, 0), Valid: true}
	sub.UpdatedAt = now
	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Cancel stops the account subscription immediately.
func (s *Service) Cancel(ctx context.Context, gymID int64) error {
	sub, err := s.repo.GetByGymID(ctx, gymID)
	if err != nil {
		return err
	}
	if sub == nil {
		return ErrNoSubscription
	}
	sub.Status = StatusCancelled
	sub.UpdatedAt = s.clk.Now()
	return s.repo.Update(ctx, sub)
}

// ExpireOverdue is called by the maintenance binary.
func (s *Service) ExpireOverdue(ctx context.Context) (int, error) {
	return s.repo.ExpireOverdue(ctx, s.clk.Now())
}
