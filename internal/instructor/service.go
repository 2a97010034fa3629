package instructor

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

const defaultRating = 4.5

type Service interface {
	Create(ctx context.Context, req CreateInstructorRequest) (*View, error)
	List(ctx context.Context) ([]View, error)
	Update(ctx context.Context, id int, req UpdateInstructorRequest) (*View, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func fromRequest(req CreateInstructorRequest) *Instructor {
	rating := req.Rating
	if rating == 0 {
		rating = defaultRating
	}

	var certs *string
	if len(req.Certifications) > 0 {
		joined := strings.Join(req.Certifications, ", ")
		certs = &joined
	}

	return &Instructor{
		Name:           req.Name,
		Specialty:      req.Specialty,
		Email:          strings.ToLower(req.Email),
		Phone:          optional(req.Phone),
		Experience:     optional(req.Experience),
		Certifications: certs,
		Bio:            optional(req.Bio),
		Rating:         rating,
	}
}

func (s *service) Create(ctx context.Context, req CreateInstructorRequest) (*View, error) {
	created, err := s.repo.Create(ctx, fromRequest(req))
	if err != nil {
		return nil, err
	}
	view := created.AsView()
	return &view, nil
}

func (s *service) List(ctx context.Context) ([]View, error) {
	instructors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(instructors))
	for _, i := range instructors {
		views = append(views, i.AsView())
	}
	return views, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateInstructorRequest) (*View, error) {
	i := fromRequest(req)
	i.ID = id

	updated, err := s.repo.Update(ctx, i)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInstructorNotFound
		}
		return nil, err
	}
	view := updated.AsView()
	return &view, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
