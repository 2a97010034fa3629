package stats

import (
	"context"
	"math"
	"strings"
	"time"

	"tessalp/internal/plan"
)

var weekdayLabels = [7]string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"}

// Plans is the slice of the plan store revenue reconstruction needs.
type Plans interface {
	ListByGym(ctx context.Context, gymID int) ([]plan.Plan, error)
}

type Service interface {
	Dashboard(ctx context.Context, gymID int) (*Dashboard, error)
}

type service struct {
	repo  Repository
	plans Plans
	now   func() time.Time
}

func NewService(repo Repository, plans Plans) Service {
	return &service{
		repo:  repo,
		plans: plans,
		now:   time.Now,
	}
}

// trend is the percentage delta versus the previous value. An empty
// previous period always reads as 0, even when the current value is not.
func trend(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return math.Round((current - previous) / previous * 100)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// weekStart returns the Monday beginning the week containing t.
func weekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// revenue matches each new member's membership type against the gym's plan
// list, normalizing quarterly and yearly prices to monthly figures.
func revenue(byType map[string]int, plans []plan.Plan) float64 {
	priceByName := make(map[string]float64, len(plans))
	for _, p := range plans {
		priceByName[strings.ToLower(p.Name)] = p.MonthlyPrice()
	}

	var total float64
	for membershipType, count := range byType {
		if price, ok := priceByName[strings.ToLower(membershipType)]; ok {
			total += price * float64(count)
		}
	}
	return total
}

func (s *service) Dashboard(ctx context.Context, gymID int) (*Dashboard, error) {
	now := s.now()
	monthAgo := now.AddDate(0, -1, 0)
	thisMonth := monthStart(now)
	lastMonth := monthStart(monthAgo)

	active, err := s.repo.CountActiveMembers(ctx, gymID, now)
	if err != nil {
		return nil, err
	}
	activePrev, err := s.repo.CountActiveMembers(ctx, gymID, monthAgo)
	if err != nil {
		return nil, err
	}

	checkinsToday, err := s.repo.CountCheckinsOnDate(ctx, gymID, now)
	if err != nil {
		return nil, err
	}
	checkinsPrev, err := s.repo.CountCheckinsOnDate(ctx, gymID, monthAgo)
	if err != nil {
		return nil, err
	}

	newThisMonth, err := s.repo.CountMembersCreatedBetween(ctx, gymID, thisMonth, now)
	if err != nil {
		return nil, err
	}
	newLastMonth, err := s.repo.CountMembersCreatedBetween(ctx, gymID, lastMonth, thisMonth)
	if err != nil {
		return nil, err
	}

	plans, err := s.plans.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}
	typesThisMonth, err := s.repo.CountByMembershipType(ctx, gymID, thisMonth, now)
	if err != nil {
		return nil, err
	}
	typesLastMonth, err := s.repo.CountByMembershipType(ctx, gymID, lastMonth, thisMonth)
	if err != nil {
		return nil, err
	}
	revenueThisMonth := revenue(typesThisMonth, plans)
	revenueLastMonth := revenue(typesLastMonth, plans)

	byWeekday, err := s.repo.CheckinsByWeekday(ctx, gymID, weekStart(now))
	if err != nil {
		return nil, err
	}
	attendance := make([]DayCount, 0, 7)
	for i, label := range weekdayLabels {
		attendance = append(attendance, DayCount{Day: label, Count: byWeekday[i+1]})
	}

	total, err := s.repo.CountTotalMembers(ctx, gymID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		ActiveMembers:    Metric{Value: float64(active), Trend: trend(float64(active), float64(activePrev))},
		TodayCheckins:    Metric{Value: float64(checkinsToday), Trend: trend(float64(checkinsToday), float64(checkinsPrev))},
		MonthlyRevenue:   Metric{Value: revenueThisMonth, Trend: trend(revenueThisMonth, revenueLastMonth)},
		NewMemberships:   Metric{Value: float64(newThisMonth), Trend: trend(float64(newThisMonth), float64(newLastMonth))},
		WeeklyAttendance: attendance,
		TotalMembers:     total,
	}, nil
}
