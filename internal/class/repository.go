package class

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrClassNotFound = errors.New("class not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const classColumns = `id, name, instructor, day_of_week, time, duration, capacity, description, class_type, created_at`

func (r *repository) Create(ctx context.Context, c *Class) (*Class, error) {
	query := `
		INSERT INTO classes (name, instructor, day_of_week, time, duration, capacity, description, class_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + classColumns

	var created Class
	err := r.db.GetContext(ctx, &created, query,
		c.Name, c.Instructor, c.DayOfWeek, c.Time, c.Duration, c.Capacity, c.Description, c.ClassType)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) List(ctx context.Context) ([]Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes ORDER BY created_at DESC`

	var classes []Class
	if err := r.db.SelectContext(ctx, &classes, query); err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1`

	var c Class
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Class) (*Class, error) {
	query := `
		UPDATE classes
		SET name = $1, instructor = $2, day_of_week = $3, time = $4, duration = $5,
		    capacity = $6, description = $7, class_type = $8
		WHERE id = $9
		RETURNING ` + classColumns

	var updated Class
	err := r.db.GetContext(ctx, &updated, query,
		c.Name, c.Instructor, c.DayOfWeek, c.Time, c.Duration, c.Capacity, c.Description, c.ClassType, c.ID)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrClassNotFound
	}

	return nil
}
