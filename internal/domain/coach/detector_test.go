package coach

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gymdesk/internal/domain/attendance"
	"gymdesk/internal/domain/client"
	"gymdesk/internal/domain/enrollment"
	"gymdesk/internal/pkg/clock"
)

// Mock stores
type MockClientStore struct {
	mock.Mock
}

func (m *MockClientStore) ListByGym(ctx context.Context, gymID int64) ([]*client.Client, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*client.Client), args.Error(1)
}

func (m *MockClientStore) ListActiveByGym(ctx context.Context, gymID int64) ([]*client.Client, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*client.Client), args.Error(1)
}

type MockAttendanceStore struct {
	mock.Mock
}

func (m *MockAttendanceStore) ListSince(ctx context.Context, gymID int64, since time.Time) ([]*attendance.Attendance, error) {
	args := m.Called(ctx, gymID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*attendance.Attendance), args.Error(1)
}

func (m *MockAttendanceStore) LastDateByClient(ctx context.Context, gymID int64) (map[int64]time.Time, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]time.Time), args.Error(1)
}

func (m *MockAttendanceStore) LifetimeCountByClient(ctx context.Context, gymID int64) (map[int64]int, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int), args.Error(1)
}

type MockEnrollmentStore struct {
	mock.Mock
}

func (m *MockEnrollmentStore) ListByGym(ctx context.Context, gymID int64) ([]*enrollment.Enrollment, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*enrollment.Enrollment), args.Error(1)
}

type MockReconciler struct {
	mock.Mock
}

func (m *MockReconciler) ReconcileGym(ctx context.Context, gymID int64) (*enrollment.ReconcileSummary, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*enrollment.ReconcileSummary), args.Error(1)
}

// frozen "today": 2024-01-15 in the app timezone
var testToday = time.Date(2024, 1, 15, 0, 0, 0, 0, clock.Zone)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, clock.Zone)
}

type detectorFixture struct {
	clients     *MockClientStore
	attendance  *MockAttendanceStore
	enrollments *MockEnrollmentStore
	reconciler  *MockReconciler
	detector    *Detector
}

func newDetectorFixture() *detectorFixture {
	f := &detectorFixture{
		clients:     new(MockClientStore),
		attendance:  new(MockAttendanceStore),
		enrollments: new(MockEnrollmentStore),
		reconciler:  new(MockReconciler),
	}
	f.detector = NewDetector(f.clients, f.attendance, f.enrollments, f.reconciler, clock.Fixed(testToday.Add(10*time.Hour)))
	return f
}

func (f *detectorFixture) expectReconcileOK(ctx context.Context, gymID int64) {
	f.reconciler.On("ReconcileGym", ctx, gymID).Return(&enrollment.ReconcileSummary{}, nil)
}

func TestDetectProblems_AbsenceGap(t *testing.T) {
	f := newDetectorFixture()
	ctx := context.Background()
	f.expectReconcileOK(ctx, 1)

	luis := &client.Client{ID: 10, GymID: 1, Name: "Luis Paz", Active: true}
	f.clients.On("ListByGym", ctx, int64(1)).Return([]*client.Client{luis}, nil)
	f.enrollments.On("ListByGym", ctx, int64(1)).Return([]*enrollment.Enrollment{
		{ClientID: 10, EndDate: date(2024, 2, 1), Status: enrollment.StatusCurrent},
	}, nil)
	f.attendance.On("LastDateByClient", ctx, int64(1)).Return(map[int64]time.Time{
		10: date(2024, 1, 10),
	}, nil)

	reports, err := f.detector.DetectProblems(ctx, 1)

	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, ProblemAbsence, reports[0].Category)
	assert.Equal(t, 5, reports[0].DaysSinceLastVisit)
	assert.Equal(t, "Luis Paz", reports[0].ClientName)
}

func TestDetectProblems_VisitedYesterdayNotFlagged(t *testing.T) {
	f := newDetectorFixture()
	ctx := context.Background()
	f.expectReconcileOK(ctx, 1)

	cl := &client.Client{ID: 10, Active: true}
	f.clients.On("ListByGym", ctx, int64(1)).Return([]*client.Client{cl}, nil)
	f.enrollments.On("ListByGym", ctx, int64(1)).Return([]*enrollment.Enrollment{
		{ClientID: 10, EndDate: date(2024, 2, 1), Status: enrollment.StatusCurrent},
	}, nil)
	f.attendance.On("LastDateByClient", ctx, int64(1)).Return(map[int64]time.Time{
		10: date(2024, 1, 14),
	}, nil)

	reports, err := f.detector.DetectProblems(ctx, 1)

	assert.NoError(t, err)
	assert.Empty(t, reports)
}

func TestDetectProblems_ExpiredPlanWinsOverAbsence(t *testing.T) {
	f := newDetectorFixture()
	ctx := context.Background()
	f.expectReconcileOK(ctx, 1)

	// expired plan AND 20 days absent: only plan_expired is reported
	cl := &client.Client{ID: 11, Name: "Ana Ruiz", Active: false}
	f.clients.On("ListByGym", ctx, int64(1)).Return([]*client.Client{cl}, nil)
	f.enrollments.On("ListByGym", ctx, int64(1)).Return([]*enrollment.Enrollment{
		{ClientID: 11, EndDate: date(2024, 1, 1), Status: enrollment.StatusExpired},
	}, nil)
	f.attendance.On("LastDateByClient", ctx, int64(1)).Return(map[int64]time.Time{
		11: date(2023, 12, 26),
	}, nil)

	reports, err := f.detector.DetectProblems(ctx, 1)

	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, ProblemPlanExpired, reports[0].Category)
	assert.Equal(t, 20, reports[0].DaysSinceLastVisit)
}

func TestDetectProblems_RenewedPlanSuppressesExpired(t *testing.T) {
	f := newDetectorFixture()
	ctx := context.Background()
	f.expectReconcileOK(ctx, 1)

	// an old expired enrollment next to a valid current one is not a problem
	cl := &client.Client{ID: 12, Active: true}
	f.clients.On("ListByGym", ctx, int64(1)).Return([]*client.Client{cl}, nil)
	f.enrollments.On("ListByGym", ctx, int64(1)).Return([]*enrollment.Enrollment{
		{ClientID: 12, EndDate: date(2023, 12, 1), Status: enrollment.StatusExpired},
		{ClientID: 12, EndDate: date(2024, 2, 1), Status: enrollment.StatusCurrent},
	}, nil)
	f.attendance.On("LastDateByClient", ctx, int64(1)).Return(map[int64]time.Time{
		12: date(2024, 1, 15),
	}, nil)

	reports, err := f.detector.DetectProblems(ctx, 1)

	assert.NoError(t, err)
	assert.Empty(t, reports)
}

func TestDetectProblems_InactiveClient(t *testing.T) {
	f := newDetectorFixture()
	ctx := context.Background()
	f.expectReconcileOK(ctx, 1)

	cl := &client.Client{ID: 13, Name: "Diego Sosa", Active: false}
	f.clients.On("ListByGym", ctx, int64(1)).Return([]*client.Client{cl}, nil)
	f.enrollments.On("ListByGym", ctx, int64(1)).Return([]*enrollment.Enrollment{}, nil)
	f.attendance.On("LastDateByClient", ctx, int64(1)).Return(map[int64]time.Time{}, nil)

	reports, err := f.detector.DetectProblems(ctx, 1)

	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, ProblemInactive, reports[0].Category)
	// never attended: sentinel gap, no last visit date
	assert.Equal(t, 30, reports[0].DaysSinceLastVisit)
	assert.Nil(t, reports[0].LastVisit)
}

func TestDetectProblems_ReconcileFailureDoesNotAbort(t *testing.T) {
	f := newDetectorFixture()
	ctx := context.Background()
	f.reconciler.On("ReconcileGym", ctx, int64(1)).Return(nil, errors.New("db timeout"))

	cl := &client.Client{ID: 14, Active: false}
	f.clients.On("ListByGym", ctx, int64(1)).Return([]*client.Client{cl}, nil)
	f.enrollments.On("ListByGym", ctx, int64(1)).Return([]*enrollment.Enrollment{}, nil)
	f.attendance.On("LastDateByClient", ctx, int64(1)).Return(map[int64]time.Time{}, nil)

	reports, err := f.detector.DetectProblems(ctx, 1)

	assert.NoError(t, err)
	assert.Len(t, reports, 1)
}
