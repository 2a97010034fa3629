package facility

import (
	"context"
	"database/sql"
	"errors"
)

type Service interface {
	Create(ctx context.Context, gymID int, req CreateFacilityRequest) (*Facility, error)
	ListForGym(ctx context.Context, gymID int) (*ListResponse, error)
	Update(ctx context.Context, gymID, id int, req UpdateFacilityRequest) (*Facility, error)
	Delete(ctx context.Context, gymID, id int) error
	ReplaceAmenities(ctx context.Context, gymID int, req ReplaceAmenitiesRequest) ([]Amenity, error)
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

func (s *service) Create(ctx context.Context, gymID int, req CreateFacilityRequest) (*Facility, error) {
	f := &Facility{
		GymID:       gymID,
		Name:        req.Name,
		Description: optional(req.Description),
		Image:       optional(req.Image),
		Features:    req.Features,
		SortOrder:   req.Order,
	}
	return s.repo.Create(ctx, f)
}

func (s *service) ListForGym(ctx context.Context, gymID int) (*ListResponse, error) {
	facilities, err := s.repo.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}
	amenities, err := s.repo.ListAmenities(ctx, gymID)
	if err != nil {
		return nil, err
	}
	return &ListResponse{Facilities: facilities, Amenities: amenities}, nil
}

func (s *service) Update(ctx context.Context, gymID, id int, req UpdateFacilityRequest) (*Facility, error) {
	f := &Facility{
		ID:          id,
		GymID:       gymID,
		Name:        req.Name,
		Description: optional(req.Description),
		Image:       optional(req.Image),
		Features:    req.Features,
		SortOrder:   req.Order,
	}

	updated, err := s.repo.Update(ctx, f)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFacilityNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, gymID, id int) error {
	return s.repo.Delete(ctx, gymID, id)
}

func (s *service) ReplaceAmenities(ctx context.Context, gymID int, req ReplaceAmenitiesRequest) ([]Amenity, error) {
	return s.repo.ReplaceAmenities(ctx, gymID, req.Amenities)
}
