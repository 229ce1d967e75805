package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"gymdesk/internal/domain/client"
	"gymdesk/internal/pkg/clock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, a *Attendance) error {
	args := m.Called(ctx, a)
	if a != nil {
		a.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRepository) ListByClient(ctx context.Context, gymID, clientID int64, limit int) ([]*Attendance, error) {
	args := m.Called(ctx, gymID, clientID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Attendance), args.Error(1)
}

func (m *MockRepository) ListByDate(ctx context.Context, gymID int64, date time.Time) ([]*Attendance, error) {
	args := m.Called(ctx, gymID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Attendance), args.Error(1)
}

func (m *MockRepository) ListSince(ctx context.Context, gymID int64, since time.Time) ([]*Attendance, error) {
	args := m.Called(ctx, gymID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Attendance), args.Error(1)
}

func (m *MockRepository) LastDateByClient(ctx context.Context, gymID int64) (map[int64]time.Time, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]time.Time), args.Error(1)
}

func (m *MockRepository) LifetimeCountByClient(ctx context.Context, gymID int64) (map[int64]int, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int), args.Error(1)
}

type MockClientStore struct {
	mock.Mock
}

func (m *MockClientStore) GetByID(ctx context.Context, gymID, id int64) (*client.Client, error) {
	args := m.Called(ctx, gymID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func TestCheckIn_DatesVisitInGymTimezone(t *testing.T) {
	repo := new(MockRepository)
	clients := new(MockClientStore)
	// 01:30 UTC on Jan 16 is still the evening of Jan 15 in the gym timezone
	now := time.Date(2024, 1, 16, 1, 30, 0, 0, time.UTC)
	svc := NewService(repo, clients, clock.Fixed(now))
	ctx := context.Background()

	clients.On("GetByID", ctx, int64(1), int64(10)).Return(&client.Client{ID: 10}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*attendance.Attendance")).Return(nil)

	a, err := svc.CheckIn(ctx, 1, 10)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, clock.Zone), a.Date)
	assert.Equal(t, now.In(clock.Zone), a.CheckedInAt)
}

func TestCheckIn_UnknownClient(t *testing.T) {
	repo := new(MockRepository)
	clients := new(MockClientStore)
	svc := NewService(repo, clients, clock.Fixed(time.Now()))
	ctx := context.Background()

	clients.On("GetByID", ctx, int64(1), int64(10)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CheckIn(ctx, 1, 10)

	assert.ErrorIs(t, err, ErrClientNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckIn_RepeatSameDayAllowed(t *testing.T) {
	repo := new(MockRepository)
	clients := new(MockClientStore)
	svc := NewService(repo, clients, clock.Fixed(time.Date(2024, 1, 15, 10, 0, 0, 0, clock.Zone)))
	ctx := context.Background()

	clients.On("GetByID", ctx, int64(1), int64(10)).Return(&client.Client{ID: 10}, nil)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	first, err := svc.CheckIn(ctx, 1, 10)
	assert.NoError(t, err)
	second, err := svc.CheckIn(ctx, 1, 10)
	assert.NoError(t, err)

	assert.Equal(t, first.Date, second.Date)
	repo.AssertNumberOfCalls(t, "Create", 2)
}
