package gym

import (
	"context"
	"database/sql"
	"testing"

	"tessalp/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepo struct{ mock.Mock }

func (m *MockRepo) CreateGym(ctx context.Context, g *Gym) (*Gym, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockRepo) GetAllGyms(ctx context.Context) ([]Gym, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Gym), args.Error(1)
}

func (m *MockRepo) GetGymByID(ctx context.Context, id int) (*Gym, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockRepo) GetGymBySlug(ctx context.Context, slug string) (*Gym, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockRepo) GetGymByAdminCode(ctx context.Context, adminCode string) (*Gym, error) {
	args := m.Called(ctx, adminCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockRepo) FindGymByName(ctx context.Context, fragment string) (*Gym, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockRepo) SlugExists(ctx context.Context, slug string, excludeID int) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepo) CountGyms(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepo) UpdateGym(ctx context.Context, g *Gym) (*Gym, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockRepo) UpdatePassword(ctx context.Context, gymID int, passwordHash string) error {
	return m.Called(ctx, gymID, passwordHash).Error(0)
}

func (m *MockRepo) GetSchedules(ctx context.Context, gymID int) ([]Schedule, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Schedule), args.Error(1)
}

func (m *MockRepo) ReplaceSchedules(ctx context.Context, gymID int, schedules []ScheduleInput) ([]Schedule, error) {
	args := m.Called(ctx, gymID, schedules)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Schedule), args.Error(1)
}

func TestResolve_ExactSlug(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, "key")

	want := &Gym{ID: 1, Slug: "tessalp-centro"}
	repo.On("GetGymBySlug", mock.Anything, "tessalp-centro").Return(want, nil)

	got, err := svc.Resolve(context.Background(), "  Tessalp-Centro ")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertExpectations(t)
}

func TestResolve_SpaceVariant(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, "key")

	// "tessalp centro" is stored as "tessalp-centro"; the exact and
	// dash-to-space lookups miss, the space-to-dash one hits.
	want := &Gym{ID: 1, Slug: "tessalp-centro"}
	repo.On("GetGymBySlug", mock.Anything, "tessalp centro").Return(nil, sql.ErrNoRows)
	repo.On("GetGymBySlug", mock.Anything, "tessalp-centro").Return(want, nil)

	got, err := svc.Resolve(context.Background(), "tessalp centro")
	assert.NoError(t, err)
	assert.Equal(t, 1, got.ID)
}

func TestResolve_DashVariant(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, "key")

	want := &Gym{ID: 2, Slug: "gimnasio sur"}
	repo.On("GetGymBySlug", mock.Anything, "gimnasio-sur").Return(nil, sql.ErrNoRows)
	repo.On("GetGymBySlug", mock.Anything, "gimnasio sur").Return(want, nil)

	got, err := svc.Resolve(context.Background(), "gimnasio-sur")
	assert.NoError(t, err)
	assert.Equal(t, 2, got.ID)
}

func TestResolve_NumericID(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, "key")

	want := &Gym{ID: 7, Slug: "tessalp-sur"}
	repo.On("GetGymBySlug", mock.Anything, "7").Return(nil, sql.ErrNoRows)
	repo.On("GetGymByID", mock.Anything, 7).Return(want, nil)

	got, err := svc.Resolve(context.Background(), "7")
	assert.NoError(t, err)
	assert.Equal(t, 7, got.ID)
}

func TestResolve_NameFallback(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, "key")

	want := &Gym{ID: 1, Name: "Tessalp Centro"}
	repo.On("GetGymBySlug", mock.Anything, "centro").Return(nil, sql.ErrNoRows)
	repo.On("FindGymByName", mock.Anything, "centro").Return(want, nil)

	got, err := svc.Resolve(context.Background(), "centro")
	assert.NoError(t, err)
	assert.Equal(t, 1, got.ID)
}

func TestResolve_NotFound(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, "key")

	repo.On("GetGymBySlug", mock.Anything, mock.Anything).Return(nil, sql.ErrNoRows)
	repo.On("FindGymByName", mock.Anything, "nope").Return(nil, sql.ErrNoRows)

	_, err := svc.Resolve(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrGymNotFound)
}

func TestCreateGym_GeneratesSlugAndAdminCode(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, "key")

	repo.On("SlugExists", mock.Anything, "tessalp-centro", 0).Return(false, nil)
	repo.On("CountGyms", mock.Anything).Return(4, nil)
	repo.On("CreateGym", mock.Anything, mock.MatchedBy(func(g *Gym) bool {
		return g.Slug == "tessalp-centro" && g.AdminCode == "GYM005" && g.Email == "centro@tessalpgyms.com"
	})).Return(&Gym{ID: 5, Slug: "tessalp-centro", AdminCode: "GYM005"}, nil)

	got, err := svc.CreateGym(context.Background(), CreateGymRequest{
		Name:     "Tessalp Centro",
		Location: "Av. Principal 123",
		Phone:    "+52 555",
		Email:    "Centro@TessalpGyms.com",
		Hours:    "5-23",
	})
	assert.NoError(t, err)
	assert.Equal(t, 5, got.ID)
	repo.AssertExpectations(t)
}

func TestCreateGym_SlugConflict(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, "key")

	repo.On("SlugExists", mock.Anything, "tessalp-centro", 0).Return(true, nil)

	_, err := svc.CreateGym(context.Background(), CreateGymRequest{
		Name: "Tessalp Centro", Location: "x", Phone: "y", Email: "a@b.com", Hours: "h",
	})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestLogin(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, "key")

	hash, _ := auth.HashPassword("correct-horse")
	g := &Gym{ID: 1, AdminCode: "GYM001", PasswordHash: &hash}

	repo.On("GetGymByAdminCode", mock.Anything, "GYM001").Return(g, nil)

	got, err := svc.Login(context.Background(), LoginRequest{AdminCode: "GYM001", Password: "correct-horse"})
	assert.NoError(t, err)
	assert.Equal(t, 1, got.ID)

	_, err = svc.Login(context.Background(), LoginRequest{AdminCode: "GYM001", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownCode(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, "key")

	repo.On("GetGymByAdminCode", mock.Anything, "GYM999").Return(nil, sql.ErrNoRows)

	_, err := svc.Login(context.Background(), LoginRequest{AdminCode: "GYM999", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_PasswordNotSet(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, "key")

	repo.On("GetGymByAdminCode", mock.Anything, "GYM001").Return(&Gym{ID: 1, AdminCode: "GYM001"}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{AdminCode: "GYM001", Password: "x"})
	assert.ErrorIs(t, err, ErrPasswordNotSet)
}

func TestVerifyAccess(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, "tessalp143")

	repo.On("GetGymByID", mock.Anything, 1).Return(&Gym{ID: 1, Name: "Tessalp Centro"}, nil)

	got, err := svc.VerifyAccess(context.Background(), 1, "tessalp143")
	assert.NoError(t, err)
	assert.Equal(t, 1, got.ID)

	_, err = svc.VerifyAccess(context.Background(), 1, "wrong")
	assert.ErrorIs(t, err, ErrInvalidAccessID)
}

func TestUpdateGym_KeepsSlugWhenAbsent(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, "key")

	existing := &Gym{ID: 1, Slug: "tessalp-centro", Name: "Tessalp Centro"}
	repo.On("GetGymByID", mock.Anything, 1).Return(existing, nil)
	repo.On("UpdateGym", mock.Anything, mock.MatchedBy(func(g *Gym) bool {
		return g.Slug == "tessalp-centro" && g.Name == "Tessalp Centro Renovado"
	})).Return(&Gym{ID: 1, Slug: "tessalp-centro", Name: "Tessalp Centro Renovado"}, nil)

	got, err := svc.UpdateGym(context.Background(), 1, UpdateGymRequest{
		Name: "Tessalp Centro Renovado", Location: "l", Phone: "p", Email: "a@b.com", Hours: "h",
	})
	assert.NoError(t, err)
	assert.Equal(t, "tessalp-centro", got.Slug)
}
