package plan

import (
	"context"
	"database/sql"
	"errors"
)

type Service interface {
	Create(ctx context.Context, gymID int, req CreatePlanRequest) (*Plan, error)
	ListForGym(ctx context.Context, gymID int) ([]Plan, error)
	Update(ctx context.Context, gymID, id int, req UpdatePlanRequest) (*Plan, error)
	Delete(ctx context.Context, gymID, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func fromRequest(gymID int, req CreatePlanRequest) *Plan {
	var description *string
	if req.Description != "" {
		description = &req.Description
	}

	return &Plan{
		GymID:       gymID,
		Name:        req.Name,
		Price:       req.Price,
		Period:      req.Period,
		Description: description,
		Features:    req.Features,
		Popular:     req.Popular,
	}
}

func (s *service) Create(ctx context.Context, gymID int, req CreatePlanRequest) (*Plan, error) {
	return s.repo.Create(ctx, fromRequest(gymID, req))
}

func (s *service) ListForGym(ctx context.Context, gymID int) ([]Plan, error) {
	return s.repo.ListByGym(ctx, gymID)
}

func (s *service) Update(ctx context.Context, gymID, id int, req UpdatePlanRequest) (*Plan, error) {
	p := fromRequest(gymID, req)
	p.ID = id

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, gymID, id int) error {
	return s.repo.Delete(ctx, gymID, id)
}
