package checkin

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"tessalp/internal/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepo struct{ mock.Mock }

func (m *MockRepo) Create(ctx context.Context, gymID, memberID int) (*Checkin, error) {
	args := m.Called(ctx, gymID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Checkin), args.Error(1)
}

func (m *MockRepo) ListByGymAndDate(ctx context.Context, gymID int, day time.Time) ([]Entry, error) {
	args := m.Called(ctx, gymID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}

type MockMembers struct{ mock.Mock }

func (m *MockMembers) GetMemberByCheckinCode(ctx context.Context, code string) (*member.Member, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func activeMember(end *time.Time) *member.Member {
	return &member.Member{
		ID:            7,
		GymID:         2,
		Name:          "Ana",
		Status:        "active",
		MembershipEnd: end,
		CheckinCode:   "11111111-2222-3333-4444-555555555555",
	}
}

func TestRecordCheckin(t *testing.T) {
	repo := new(MockRepo)
	members := new(MockMembers)
	svc := NewService(repo, members)

	end := time.Now().AddDate(0, 1, 0)
	members.On("GetMemberByCheckinCode", mock.Anything, "11111111-2222-3333-4444-555555555555").
		Return(activeMember(&end), nil)
	repo.On("Create", mock.Anything, 2, 7).
		Return(&Checkin{ID: 1, GymID: 2, MemberID: 7, CheckinTime: time.Now()}, nil)

	result, err := svc.Record(context.Background(), "11111111-2222-3333-4444-555555555555")

	assert.NoError(t, err)
	assert.Equal(t, "Ana", result.MemberName)
	repo.AssertExpectations(t)
}

func TestRecordUnknownCode(t *testing.T) {
	repo := new(MockRepo)
	members := new(MockMembers)
	svc := NewService(repo, members)

	members.On("GetMemberByCheckinCode", mock.Anything, "11111111-2222-3333-4444-555555555555").
		Return(nil, sql.ErrNoRows)

	_, err := svc.Record(context.Background(), "11111111-2222-3333-4444-555555555555")
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestRecordInactiveMembership(t *testing.T) {
	repo := new(MockRepo)
	members := new(MockMembers)
	svc := NewService(repo, members)

	m := activeMember(nil)
	m.Status = "suspended"
	members.On("GetMemberByCheckinCode", mock.Anything, mock.Anything).Return(m, nil)

	_, err := svc.Record(context.Background(), m.CheckinCode)
	assert.ErrorIs(t, err, ErrMembershipInactive)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordExpiredMembership(t *testing.T) {
	repo := new(MockRepo)
	members := new(MockMembers)
	svc := NewService(repo, members)

	end := time.Now().AddDate(0, -1, 0)
	members.On("GetMemberByCheckinCode", mock.Anything, mock.Anything).Return(activeMember(&end), nil)

	_, err := svc.Record(context.Background(), "11111111-2222-3333-4444-555555555555")
	assert.ErrorIs(t, err, ErrMembershipExpired)
}

func TestListForGymBadDate(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, new(MockMembers))

	_, err := svc.ListForGym(context.Background(), 2, "31-12-2026")
	assert.ErrorIs(t, err, ErrBadDate)
	repo.AssertNotCalled(t, "ListByGymAndDate", mock.Anything, mock.Anything, mock.Anything)
}
