package enrollment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"gymdesk/internal/domain/client"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/pkg/clock"
)

// Mock repositories
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, e *Enrollment) error {
	args := m.Called(ctx, e)
	if e != nil {
		e.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, gymID, id int64) (*Enrollment, error) {
	args := m.Called(ctx, gymID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Enrollment), args.Error(1)
}

func (m *MockRepository) ListByClient(ctx context.Context, gymID, clientID int64) ([]*Enrollment, error) {
	args := m.Called(ctx, gymID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Enrollment), args.Error(1)
}

func (m *MockRepository) ListByGym(ctx context.Context, gymID int64) ([]*Enrollment, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Enrollment), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
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

func (m *MockClientStore) ListByGym(ctx context.Context, gymID int64) ([]*client.Client, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*client.Client), args.Error(1)
}

func (m *MockClientStore) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

type MockPlanStore struct {
	mock.Mock
}

func (m *MockPlanStore) GetByID(ctx context.Context, gymID, id int64) (*plan.Plan, error) {
	args := m.Called(ctx, gymID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Plan), args.Error(1)
}

// frozen "today": 2024-01-15 in the app timezone
var testToday = time.Date(2024, 1, 15, 0, 0, 0, 0, clock.Zone)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, clock.Zone)
}

func newTestService(repo *MockRepository, clients *MockClientStore, plans *MockPlanStore) *Service {
	return NewService(repo, clients, plans, clock.Fixed(testToday.Add(10*time.Hour)))
}

func TestEnroll_ComputesEndDateFromPlanDuration(t *testing.T) {
	repo := new(MockRepository)
	clients := new(MockClientStore)
	plans := new(MockPlanStore)
	svc := newTestService(repo, clients, plans)
	ctx := context.Background()

	clients.On("GetByID", ctx, int64(1), int64(10)).Return(&client.Client{ID: 10, GymID: 1}, nil)
	plans.On("GetByID", ctx, int64(1), int64(5)).Return(&plan.Plan{ID: 5, DurationDays: 30}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*enrollment.Enrollment")).Return(nil)
	clients.On("SetActive", ctx, int64(10), true).Return(nil)

	e, err := svc.Enroll(ctx, 1, 10, 5, nil)

	assert.NoError(t, err)
	assert.Equal(t, testToday, e.StartDate)
	assert.Equal(t, date(2024, 2, 14), e.EndDate)
	assert.Equal(t, StatusCurrent, e.Status)
	clients.AssertCalled(t, "SetActive", ctx, int64(10), true)
}

func TestEnroll_UnknownClient(t *testing.T) {
	repo := new(MockRepository)
	clients := new(MockClientStore)
	plans := new(MockPlanStore)
	svc := newTestService(repo, clients, plans)
	ctx := context.Background()

	clients.On("GetByID", ctx, int64(1), int64(10)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Enroll(ctx, 1, 10, 5, nil)

	assert.ErrorIs(t, err, ErrClientNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnroll_SetActiveFailureDoesNotFailEnroll(t *testing.T) {
	repo := new(MockRepository)
	clients := new(MockClientStore)
	plans := new(MockPlanStore)
	svc := newTestService(repo, clients, plans)
	ctx := context.Background()

	clients.On("GetByID", ctx, int64(1), int64(10)).Return(&client.Client{ID: 10}, nil)
	plans.On("GetByID", ctx, int64(1), int64(5)).Return(&plan.Plan{ID: 5, DurationDays: 7}, nil)
	repo.On("Create", ctx, mock.Anything).Return(nil)
	clients.On("SetActive", ctx, int64(10), true).Return(errors.New("db down"))

	e, err := svc.Enroll(ctx, 1, 10, 5, nil)

	assert.NoError(t, err)
	assert.NotNil(t, e)
}

func TestReconcile_ExpiresStaleAndDeactivatesClient(t *testing.T) {
	repo := new(MockRepository)
	clients := new(MockClientStore)
	plans := new(MockPlanStore)
	svc := newTestService(repo, clients, plans)
	ctx := context.Background()

	luis := &client.Client{ID: 20, GymID: 1, Name: "Luis Paz", Active: true}
	clients.On("ListByGym", ctx, int64(1)).Return([]*client.Client{luis}, nil)
	repo.On("ListByGym", ctx, int64(1)).Return([]*Enrollment{
		{ID: 100, ClientID: 20, EndDate: date(2024, 1, 10), Status: StatusCurrent},
	}, nil)
	repo.On("UpdateStatus", ctx, int64(100), StatusExpired).Return(nil)
	clients.On("SetActive", ctx, int64(20), false).Return(nil)

	summary, err := svc.ReconcileGym(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Scanned)
	assert.Len(t, summary.Changes, 1)
	assert.Equal(t, int64(20), summary.Changes[0].ClientID)
	assert.False(t, summary.Changes[0].Active)
	assert.Equal(t, ReasonPlanExpired, summary.Changes[0].Reason)
}

func TestReconcile_ReactivatesClientWithValidPlan(t *testing.T) {
	repo := new(MockRepository)
	clients := new(MockClientStore)
	plans := new(MockPlanStore)
	svc := newTestService(repo, clients, plans)
	ctx := context.Background()

	ana := &client.Client{ID: 30, GymID: 1, Name: "Ana Ruiz", Active: false}
	clients.On("ListByGym", ctx, int64(1)).Return([]*client.Client{ana}, nil)
	repo.On("ListByGym", ctx, int64(1)).Return([]*Enrollment{
		{ID: 101, ClientID: 30, EndDate: date(2024, 2, 1), Status: StatusCurrent},
	}, nil)
	clients.On("SetActive", ctx, int64(30), true).Return(nil)

	summary, err := svc.ReconcileGym(ctx, 1)

	assert.NoError(t, err)
	assert.Len(t, summary.Changes, 1)
	assert.True(t, summary.Changes[0].Active)
	assert.Equal(t, ReasonHasCurrentPlan, summary.Changes[0].Reason)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_EndDateTodayStillCurrent(t *testing.T) {
	repo := new(MockRepository)
	clients := new(MockClientStore)
	plans := new(MockPlanStore)
	svc := newTestService(repo, clients, plans)
	ctx := context.Background()

	cl := &client.Client{ID: 40, GymID: 1, Active: true}
	clients.On("ListByGym", ctx, int64(1)).Return([]*client.Client{cl}, nil)
	repo.On("ListByGym", ctx, int64(1)).Return([]*Enrollment{
		{ID: 102, ClientID: 40, EndDate: testToday, Status: StatusCurrent},
	}, nil)

	summary, err := svc.ReconcileGym(ctx, 1)

	assert.NoError(t, err)
	assert.Empty(t, summary.Changes)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_SecondPassIsNoop(t *testing.T) {
	repo := new(MockRepository)
	clients := new(MockClientStore)
	plans := new(MockPlanStore)
	svc := newTestService(repo, clients, plans)
	ctx := context.Background()

	// state after a successful first pass: enrollment expired, client inactive
	cl := &client.Client{ID: 50, GymID: 1, Active: false}
	clients.On("ListByGym", ctx, int64(1)).Return([]*client.Client{cl}, nil)
	repo.On("ListByGym", ctx, int64(1)).Return([]*Enrollment{
		{ID: 103, ClientID: 50, EndDate: date(2024, 1, 10), Status: StatusExpired},
	}, nil)

	summary, err := svc.ReconcileGym(ctx, 1)

	assert.NoError(t, err)
	assert.Empty(t, summary.Changes)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	clients.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_WriteFailureSkipsClientAndContinues(t *testing.T) {
	repo := new(MockRepository)
	clients := new(MockClientStore)
	plans := new(MockPlanStore)
	svc := newTestService(repo, clients, plans)
	ctx := context.Background()

	a := &client.Client{ID: 60, GymID: 1, Active: true}
	b := &client.Client{ID: 61, GymID: 1, Active: true}
	clients.On("ListByGym", ctx, int64(1)).Return([]*client.Client{a, b}, nil)
	repo.On("ListByGym", ctx, int64(1)).Return([]*Enrollment{
		{ID: 110, ClientID: 60, EndDate: date(2024, 1, 1), Status: StatusCurrent},
		{ID: 111, ClientID: 61, EndDate: date(2024, 1, 1), Status: StatusCurrent},
	}, nil)
	repo.On("UpdateStatus", ctx, int64(110), StatusExpired).Return(errors.New("deadlock"))
	repo.On("UpdateStatus", ctx, int64(111), StatusExpired).Return(nil)
	clients.On("SetActive", ctx, int64(60), false).Return(nil)
	clients.On("SetActive", ctx, int64(61), false).Return(nil)

	summary, err := svc.ReconcileGym(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.Scanned)
	// the second client is still processed despite the first failure
	repo.AssertCalled(t, "UpdateStatus", ctx, int64(111), StatusExpired)
}

func TestCancel(t *testing.T) {
	repo := new(MockRepository)
	clients := new(MockClientStore)
	plans := new(MockPlanStore)
	svc := newTestService(repo, clients, plans)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1), int64(200)).Return(&Enrollment{ID: 200, Status: StatusCurrent}, nil)
	repo.On("UpdateStatus", ctx, int64(200), StatusCancelled).Return(nil)

	assert.NoError(t, svc.Cancel(ctx, 1, 200))

	repo.On("GetByID", ctx, int64(1), int64(999)).Return(nil, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, svc.Cancel(ctx, 1, 999), ErrEnrollmentNotFound)
}
