package gym

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tessalp/internal/auth"
)

var (
	ErrGymNotFound        = errors.New("gym not found")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrInvalidCredentials = errors.New("invalid admin code or password")
	ErrPasswordNotSet     = errors.New("gym password not configured")
	ErrInvalidAccessID    = errors.New("invalid access id")
)

type Service interface {
	Resolve(ctx context.Context, segment string) (*Gym, error)
	CreateGym(ctx context.Context, req CreateGymRequest) (*Gym, error)
	GetAllGyms(ctx context.Context) ([]Gym, error)
	GetGymByID(ctx context.Context, id int) (*Gym, error)
	UpdateGym(ctx context.Context, id int, req UpdateGymRequest) (*Gym, error)
	Login(ctx context.Context, req LoginRequest) (*Gym, error)
	VerifyAccess(ctx context.Context, gymID int, accessID string) (*Gym, error)
	ChangePassword(ctx context.Context, gymID int, req ChangePasswordRequest) error
	GetSchedules(ctx context.Context, gymID int) ([]Schedule, error)
	ReplaceSchedules(ctx context.Context, gymID int, req UpdateSchedulesRequest) ([]Schedule, error)
}

type service struct {
	repo      Repository
	accessKey string
}

func NewService(repo Repository, accessKey string) Service {
	return &service{
		repo:      repo,
		accessKey: accessKey,
	}
}

// Resolve maps an opaque path segment to a tenant. Matching order, first hit
// wins: exact slug, slug with dashes swapped for spaces, slug with spaces
// swapped for dashes, numeric id, then a name substring fallback.
func (s *service) Resolve(ctx context.Context, segment string) (*Gym, error) {
	normalized := strings.ToLower(strings.TrimSpace(segment))
	if normalized == "" {
		return nil, ErrGymNotFound
	}

	candidates := []string{normalized}
	if v := strings.ReplaceAll(normalized, "-", " "); v != normalized {
		candidates = append(candidates, v)
	}
	if v := strings.ReplaceAll(normalized, " ", "-"); v != normalized {
		candidates = append(candidates, v)
	}

	for _, slug := range candidates {
		g, err := s.repo.GetGymBySlug(ctx, slug)
		if err == nil {
			return g, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}

	if id, err := strconv.Atoi(normalized); err == nil && id > 0 {
		g, err := s.repo.GetGymByID(ctx, id)
		if err == nil {
			return g, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}

	g, err := s.repo.FindGymByName(ctx, normalized)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}

	return g, nil
}

func (s *service) CreateGym(ctx context.Context, req CreateGymRequest) (*Gym, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	} else {
		slug = Slugify(slug)
	}

	taken, err := s.repo.SlugExists(ctx, slug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	count, err := s.repo.CountGyms(ctx)
	if err != nil {
		return nil, err
	}

	g := &Gym{
		Name:      req.Name,
		Slug:      slug,
		Location:  req.Location,
		Phone:     req.Phone,
		Email:     strings.ToLower(req.Email),
		Hours:     req.Hours,
		AdminCode: fmt.Sprintf("GYM%03d", count+1),
	}
	if req.Image != "" {
		g.Image = &req.Image
	}

	return s.repo.CreateGym(ctx, g)
}

func (s *service) GetAllGyms(ctx context.Context) ([]Gym, error) {
	return s.repo.GetAllGyms(ctx)
}

func (s *service) GetGymByID(ctx context.Context, id int) (*Gym, error) {
	g, err := s.repo.GetGymByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *service) UpdateGym(ctx context.Context, id int, req UpdateGymRequest) (*Gym, error) {
	existing, err := s.GetGymByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slug := existing.Slug
	if req.Slug != "" {
		slug = Slugify(req.Slug)
	}
	if slug != existing.Slug {
		taken, err := s.repo.SlugExists(ctx, slug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
	}

	g := &Gym{
		ID:       id,
		Name:     req.Name,
		Slug:     slug,
		Location: req.Location,
		Phone:    req.Phone,
		Email:    strings.ToLower(req.Email),
		Hours:    req.Hours,
	}
	if req.Image != "" {
		g.Image = &req.Image
	} else {
		g.Image = existing.Image
	}

	return s.repo.UpdateGym(ctx, g)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Gym, error) {
	g, err := s.repo.GetGymByAdminCode(ctx, req.AdminCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if g.PasswordHash == nil || *g.PasswordHash == "" {
		return nil, ErrPasswordNotSet
	}

	if !auth.CheckPassword(*g.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return g, nil
}

func (s *service) VerifyAccess(ctx context.Context, gymID int, accessID string) (*Gym, error) {
	if accessID != s.accessKey {
		return nil, ErrInvalidAccessID
	}

	return s.GetGymByID(ctx, gymID)
}

func (s *service) ChangePassword(ctx context.Context, gymID int, req ChangePasswordRequest) error {
	g, err := s.GetGymByID(ctx, gymID)
	if err != nil {
		return err
	}

	if g.PasswordHash != nil && *g.PasswordHash != "" {
		if !auth.CheckPassword(*g.PasswordHash, req.CurrentPassword) {
			return ErrInvalidCredentials
		}
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, gymID, hash)
}

func (s *service) GetSchedules(ctx context.Context, gymID int) ([]Schedule, error) {
	return s.repo.GetSchedules(ctx, gymID)
}

func (s *service) ReplaceSchedules(ctx context.Context, gymID int, req UpdateSchedulesRequest) ([]Schedule, error) {
	if _, err := s.GetGymByID(ctx, gymID); err != nil {
		return nil, err
	}

	return s.repo.ReplaceSchedules(ctx, gymID, req.Schedules)
}
