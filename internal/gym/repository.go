package gym

import (
	"context"

	"github.com/jmoiron/sqlx"

	"tessalp/internal/db"
)

const gymColumns = `id, name, slug, location, phone, email, hours, image, admin_code, password_hash, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateGym(ctx context.Context, g *Gym) (*Gym, error) {
	query := `
		INSERT INTO gyms (name, slug, location, phone, email, hours, image, admin_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + gymColumns

	var created Gym
	err := r.db.GetContext(ctx, &created, query,
		g.Name, g.Slug, g.Location, g.Phone, g.Email, g.Hours, g.Image, g.AdminCode)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetAllGyms(ctx context.Context) ([]Gym, error) {
	query := `SELECT ` + gymColumns + ` FROM gyms ORDER BY created_at DESC`

	var gyms []Gym
	err := r.db.SelectContext(ctx, &gyms, query)
	if err != nil {
		return nil, err
	}

	return gyms, nil
}

func (r *repository) GetGymByID(ctx context.Context, id int) (*Gym, error) {
	query := `SELECT ` + gymColumns + ` FROM gyms WHERE id = $1`

	var g Gym
	err := r.db.GetContext(ctx, &g, query, id)
	if err != nil {
		return nil, err
	}

	return &g, nil
}

func (r *repository) GetGymBySlug(ctx context.Context, slug string) (*Gym, error) {
	query := `SELECT ` + gymColumns + ` FROM gyms WHERE slug = $1`

	var g Gym
	err := r.db.GetContext(ctx, &g, query, slug)
	if err != nil {
		return nil, err
	}

	return &g, nil
}

func (r *repository) GetGymByAdminCode(ctx context.Context, adminCode string) (*Gym, error) {
	query := `SELECT ` + gymColumns + ` FROM gyms WHERE admin_code = $1`

	var g Gym
	err := r.db.GetContext(ctx, &g, query, adminCode)
	if err != nil {
		return nil, err
	}

	return &g, nil
}

// FindGymByName is the last-resort substring match. Lowest id wins so
// ambiguous fragments resolve deterministically.
func (r *repository) FindGymByName(ctx context.Context, fragment string) (*Gym, error) {
	query := `SELECT ` + gymColumns + ` FROM gyms WHERE name ILIKE '%' || $1 || '%' ORDER BY id ASC LIMIT 1`

	var g Gym
	err := r.db.GetContext(ctx, &g, query, fragment)
	if err != nil {
		return nil, err
	}

	return &g, nil
}

func (r *repository) SlugExists(ctx context.Context, slug string, excludeID int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM gyms WHERE slug = $1 AND id <> $2)`, slug, excludeID)
}

func (r *repository) CountGyms(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM gyms`)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) UpdateGym(ctx context.Context, g *Gym) (*Gym, error) {
	query := `
		UPDATE gyms
		SET name = $1, slug = $2, location = $3, phone = $4, email = $5, hours = $6, image = $7
		WHERE id = $8
		RETURNING ` + gymColumns

	var updated Gym
	err := r.db.GetContext(ctx, &updated, query,
		g.Name, g.Slug, g.Location, g.Phone, g.Email, g.Hours, g.Image, g.ID)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) UpdatePassword(ctx context.Context, gymID int, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE gyms SET password_hash = $1 WHERE id = $2`, passwordHash, gymID)
	return err
}

func (r *repository) GetSchedules(ctx context.Context, gymID int) ([]Schedule, error) {
	query := `
		SELECT id, gym_id, day_of_week, open_time, close_time, is_closed
		FROM gym_schedules
		WHERE gym_id = $1
		ORDER BY id ASC
	`

	var schedules []Schedule
	err := r.db.SelectContext(ctx, &schedules, query, gymID)
	if err != nil {
		return nil, err
	}

	return schedules, nil
}

// ReplaceSchedules swaps the full weekly set in one transaction so a failed
// write never leaves a gym with no hours at all.
func (r *repository) ReplaceSchedules(ctx context.Context, gymID int, schedules []ScheduleInput) ([]Schedule, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM gym_schedules WHERE gym_id = $1`, gymID); err != nil {
		return nil, err
	}

	created := make([]Schedule, 0, len(schedules))
	for _, s := range schedules {
		var row Schedule
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO gym_schedules (gym_id, day_of_week, open_time, close_time, is_closed)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, gym_id, day_of_week, open_time, close_time, is_closed
		`, gymID, s.DayOfWeek, s.OpenTime, s.CloseTime, s.IsClosed).StructScan(&row)
		if err != nil {
			return nil, err
		}
		created = append(created, row)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return created, nil
}
