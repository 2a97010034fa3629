package class

import (
	"context"
	"database/sql"
	"errors"
)

type Service interface {
	Create(ctx context.Context, req CreateClassRequest) (*Class, error)
	List(ctx context.Context) ([]Class, error)
	Update(ctx context.Context, id int, req UpdateClassRequest) (*Class, error)
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

func (s *service) Create(ctx context.Context, req CreateClassRequest) (*Class, error) {
	c := &Class{
		Name:        req.Name,
		Instructor:  req.Instructor,
		DayOfWeek:   req.DayOfWeek,
		Time:        req.Time,
		Duration:    req.Duration,
		Capacity:    req.Capacity,
		Description: optional(req.Description),
		ClassType:   optional(req.ClassType),
	}
	return s.repo.Create(ctx, c)
}

func (s *service) List(ctx context.Context) ([]Class, error) {
	classes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range classes {
		classes[i].DayOfWeek = DisplayDay(classes[i].DayOfWeek)
	}
	return classes, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateClassRequest) (*Class, error) {
	c := &Class{
		ID:          id,
		Name:        req.Name,
		Instructor:  req.Instructor,
		DayOfWeek:   req.DayOfWeek,
		Time:        req.Time,
		Duration:    req.Duration,
		Capacity:    req.Capacity,
		Description: optional(req.Description),
		ClassType:   optional(req.ClassType),
	}

	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
