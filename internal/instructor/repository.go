package instructor

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrInstructorNotFound = errors.New("instructor not found")

type Repository interface {
	Create(ctx context.Context, i *Instructor) (*Instructor, error)
	List(ctx context.Context) ([]Instructor, error)
	Update(ctx context.Context, i *Instructor) (*Instructor, error)
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const instructorColumns = `id, name, specialty, email, phone, experience, certifications, bio, rating, created_at`

func (r *repository) Create(ctx context.Context, i *Instructor) (*Instructor, error) {
	query := `
		INSERT INTO instructors (name, specialty, email, phone, experience, certifications, bio, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + instructorColumns

	var created Instructor
	err := r.db.GetContext(ctx, &created, query,
		i.Name, i.Specialty, i.Email, i.Phone, i.Experience, i.Certifications, i.Bio, i.Rating)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) List(ctx context.Context) ([]Instructor, error) {
	query := `SELECT ` + instructorColumns + ` FROM instructors ORDER BY created_at DESC`

	var instructors []Instructor
	if err := r.db.SelectContext(ctx, &instructors, query); err != nil {
		return nil, err
	}

	return instructors, nil
}

func (r *repository) Update(ctx context.Context, i *Instructor) (*Instructor, error) {
	query := `
		UPDATE instructors
		SET name = $1, specialty = $2, email = $3, phone = $4, experience = $5,
		    certifications = $6, bio = $7, rating = $8
		WHERE id = $9
		RETURNING ` + instructorColumns

	var updated Instructor
	err := r.db.GetContext(ctx, &updated, query,
		i.Name, i.Specialty, i.Email, i.Phone, i.Experience, i.Certifications, i.Bio, i.Rating, i.ID)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM instructors WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrInstructorNotFound
	}

	return nil
}
