package checkin

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"tessalp/internal/member"
	"tessalp/internal/metrics"
)

var (
	ErrCodeNotFound       = errors.New("checkin code not found")
	ErrMembershipInactive = errors.New("membership is not active")
	ErrMembershipExpired  = errors.New("membership has expired")
	ErrBadDate            = errors.New("invalid date")
)

// Members is the slice of the member store the check-in flow needs.
type Members interface {
	GetMemberByCheckinCode(ctx context.Context, code string) (*member.Member, error)
}

type Service interface {
	Record(ctx context.Context, code string) (*RecordResponse, error)
	ListForGym(ctx context.Context, gymID int, date string) ([]Entry, error)
}

type service struct {
	repo    Repository
	members Members
	now     func() time.Time
}

func NewService(repo Repository, members Members) Service {
	return &service{
		repo:    repo,
		members: members,
		now:     time.Now,
	}
}

func (s *service) Record(ctx context.Context, code string) (*RecordResponse, error) {
	m, err := s.members.GetMemberByCheckinCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCodeNotFound
		}
		return nil, err
	}

	if m.Status != "active" {
		return nil, ErrMembershipInactive
	}
	if m.MembershipEnd != nil && m.MembershipEnd.Before(s.now()) {
		return nil, ErrMembershipExpired
	}

	created, err := s.repo.Create(ctx, m.GymID, m.ID)
	if err != nil {
		return nil, err
	}
	metrics.CheckinsTotal.WithLabelValues(strconv.Itoa(m.GymID)).Inc()

	return &RecordResponse{
		Message:    "Bienvenido, " + m.Name,
		MemberName: m.Name,
		Checkin:    *created,
	}, nil
}

func (s *service) ListForGym(ctx context.Context, gymID int, date string) ([]Entry, error) {
	day := s.now()
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, ErrBadDate
		}
		day = parsed
	}
	return s.repo.ListByGymAndDate(ctx, gymID, day)
}
