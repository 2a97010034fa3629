package stats

import (
	"context"
	"testing"
	"time"

	"tessalp/internal/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepo struct{ mock.Mock }

func (m *MockRepo) CountActiveMembers(ctx context.Context, gymID int, asOf time.Time) (int, error) {
	args := m.Called(ctx, gymID, asOf)
	return args.Int(0), args.Error(1)
}

func (m *MockRepo) CountCheckinsOnDate(ctx context.Context, gymID int, day time.Time) (int, error) {
	args := m.Called(ctx, gymID, day)
	return args.Int(0), args.Error(1)
}

func (m *MockRepo) CountMembersCreatedBetween(ctx context.Context, gymID int, from, to time.Time) (int, error) {
	args := m.Called(ctx, gymID, from, to)
	return args.Int(0), args.Error(1)
}

func (m *MockRepo) CountByMembershipType(ctx context.Context, gymID int, from, to time.Time) (map[string]int, error) {
	args := m.Called(ctx, gymID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockRepo) CheckinsByWeekday(ctx context.Context, gymID int, weekStart time.Time) (map[int]int, error) {
	args := m.Called(ctx, gymID, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int), args.Error(1)
}

func (m *MockRepo) CountTotalMembers(ctx context.Context, gymID int) (int, error) {
	args := m.Called(ctx, gymID)
	return args.Int(0), args.Error(1)
}

type MockPlans struct{ mock.Mock }

func (m *MockPlans) ListByGym(ctx context.Context, gymID int) ([]plan.Plan, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]plan.Plan), args.Error(1)
}

func TestTrend(t *testing.T) {
	assert.Equal(t, 50.0, trend(150, 100))
	assert.Equal(t, -25.0, trend(75, 100))
	assert.Equal(t, 0.0, trend(0, 0))
	// A zero baseline never reports growth, even from zero to something.
	assert.Equal(t, 0.0, trend(12, 0))
	assert.Equal(t, 0.0, trend(0.01, 0))
}

func TestWeekStartIsMonday(t *testing.T) {
	// 2026-09-03 is a Thursday.
	thursday := time.Date(2026, 9, 3, 15, 30, 0, 0, time.UTC)
	start := weekStart(thursday)
	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), start)

	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, weekStart(monday))

	sunday := time.Date(2026, 9, 6, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, monday, weekStart(sunday))
}

func TestRevenueNormalizesPeriods(t *testing.T) {
	plans := []plan.Plan{
		{Name: "Premium", Price: 899, Period: plan.PeriodMonthly},
		{Name: "Trimestral", Price: 2400, Period: plan.PeriodQuarterly},
		{Name: "Anual", Price: 8400, Period: plan.PeriodYearly},
	}

	byType := map[string]int{
		"premium":    2, // matched case-insensitively
		"Trimestral": 1,
		"Anual":      3,
		"Fantasma":   5, // no matching plan, contributes nothing
	}

	assert.InDelta(t, 2*899+800+3*700, revenue(byType, plans), 0.001)
}

func TestDashboard(t *testing.T) {
	repo := new(MockRepo)
	plans := new(MockPlans)

	svc := &service{
		repo:  repo,
		plans: plans,
		now: func() time.Time {
			return time.Date(2026, 9, 3, 12, 0, 0, 0, time.UTC)
		},
	}

	now := svc.now()
	monthAgo := now.AddDate(0, -1, 0)
	thisMonth := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	repo.On("CountActiveMembers", mock.Anything, 2, now).Return(120, nil)
	repo.On("CountActiveMembers", mock.Anything, 2, monthAgo).Return(100, nil)
	repo.On("CountCheckinsOnDate", mock.Anything, 2, now).Return(45, nil)
	repo.On("CountCheckinsOnDate", mock.Anything, 2, monthAgo).Return(0, nil)
	repo.On("CountMembersCreatedBetween", mock.Anything, 2, thisMonth, now).Return(8, nil)
	repo.On("CountMembersCreatedBetween", mock.Anything, 2, lastMonth, thisMonth).Return(4, nil)
	repo.On("CountByMembershipType", mock.Anything, 2, thisMonth, now).
		Return(map[string]int{"Premium": 8}, nil)
	repo.On("CountByMembershipType", mock.Anything, 2, lastMonth, thisMonth).
		Return(map[string]int{"Premium": 4}, nil)
	repo.On("CheckinsByWeekday", mock.Anything, 2, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)).
		Return(map[int]int{1: 30, 4: 45}, nil)
	repo.On("CountTotalMembers", mock.Anything, 2).Return(340, nil)
	plans.On("ListByGym", mock.Anything, 2).
		Return([]plan.Plan{{Name: "Premium", Price: 899, Period: plan.PeriodMonthly}}, nil)

	dashboard, err := svc.Dashboard(context.Background(), 2)

	assert.NoError(t, err)
	assert.Equal(t, 120.0, dashboard.ActiveMembers.Value)
	assert.Equal(t, 20.0, dashboard.ActiveMembers.Trend)
	// No check-ins a month ago: the baseline is zero, so the trend stays 0.
	assert.Equal(t, 45.0, dashboard.TodayCheckins.Value)
	assert.Equal(t, 0.0, dashboard.TodayCheckins.Trend)
	assert.InDelta(t, 8*899.0, dashboard.MonthlyRevenue.Value, 0.001)
	assert.Equal(t, 100.0, dashboard.MonthlyRevenue.Trend)
	assert.Equal(t, 100.0, dashboard.NewMemberships.Trend)
	assert.Equal(t, 340, dashboard.TotalMembers)

	assert.Len(t, dashboard.WeeklyAttendance, 7)
	assert.Equal(t, DayCount{Day: "Lun", Count: 30}, dashboard.WeeklyAttendance[0])
	assert.Equal(t, DayCount{Day: "Jue", Count: 45}, dashboard.WeeklyAttendance[3])
	assert.Equal(t, DayCount{Day: "Dom", Count: 0}, dashboard.WeeklyAttendance[6])
}
