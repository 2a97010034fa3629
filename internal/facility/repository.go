package facility

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrFacilityNotFound = errors.New("facility not found")

type Repository interface {
	Create(ctx context.Context, f *Facility) (*Facility, error)
	ListByGym(ctx context.Context, gymID int) ([]Facility, error)
	Update(ctx context.Context, f *Facility) (*Facility, error)
	Delete(ctx context.Context, gymID, id int) error
	ListAmenities(ctx context.Context, gymID int) ([]Amenity, error)
	ReplaceAmenities(ctx context.Context, gymID int, amenities []AmenityInput) ([]Amenity, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const facilityColumns = `id, gym_id, name, description, image, features, sort_order, created_at`

func (r *repository) Create(ctx context.Context, f *Facility) (*Facility, error) {
	query := `
		INSERT INTO gym_facilities (gym_id, name, description, image, features, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + facilityColumns

	var created Facility
	err := r.db.GetContext(ctx, &created, query,
		f.GymID, f.Name, f.Description, f.Image, f.Features, f.SortOrder)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID int) ([]Facility, error) {
	query := `SELECT ` + facilityColumns + ` FROM gym_facilities WHERE gym_id = $1 ORDER BY sort_order ASC, id ASC`

	facilities := []Facility{}
	if err := r.db.SelectContext(ctx, &facilities, query, gymID); err != nil {
		return nil, err
	}

	return facilities, nil
}

func (r *repository) Update(ctx context.Context, f *Facility) (*Facility, error) {
	query := `
		UPDATE gym_facilities
		SET name = $1, description = $2, image = $3, features = $4, sort_order = $5
		WHERE id = $6 AND gym_id = $7
		RETURNING ` + facilityColumns

	var updated Facility
	err := r.db.GetContext(ctx, &updated, query,
		f.Name, f.Description, f.Image, f.Features, f.SortOrder, f.ID, f.GymID)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, gymID, id int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM gym_facilities WHERE id = $1 AND gym_id = $2`, id, gymID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrFacilityNotFound
	}

	return nil
}

func (r *repository) ListAmenities(ctx context.Context, gymID int) ([]Amenity, error) {
	query := `SELECT id, gym_id, name, icon FROM gym_amenities WHERE gym_id = $1 ORDER BY id ASC`

	amenities := []Amenity{}
	if err := r.db.SelectContext(ctx, &amenities, query, gymID); err != nil {
		return nil, err
	}

	return amenities, nil
}

// ReplaceAmenities swaps the full amenity list in one transaction.
func (r *repository) ReplaceAmenities(ctx context.Context, gymID int, amenities []AmenityInput) ([]Amenity, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM gym_amenities WHERE gym_id = $1`, gymID); err != nil {
		return nil, err
	}

	created := make([]Amenity, 0, len(amenities))
	for _, input := range amenities {
		var icon *string
		if input.Icon != "" {
			icon = &input.Icon
		}

		var a Amenity
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO gym_amenities (gym_id, name, icon)
			VALUES ($1, $2, $3)
			RETURNING id, gym_id, name, icon`,
			gymID, input.Name, icon).StructScan(&a)
		if err != nil {
			return nil, err
		}
		created = append(created, a)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return created, nil
}
