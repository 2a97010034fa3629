package plan

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrPlanNotFound = errors.New("membership plan not found")

type Repository interface {
	Create(ctx context.Context, p *Plan) (*Plan, error)
	ListByGym(ctx context.Context, gymID int) ([]Plan, error)
	Update(ctx context.Context, p *Plan) (*Plan, error)
	Delete(ctx context.Context, gymID, id int) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const planColumns = `id, gym_id, name, price, period, description, features, popular, created_at`

func (r *repository) Create(ctx context.Context, p *Plan) (*Plan, error) {
	query := `
		INSERT INTO gym_membership_plans (gym_id, name, price, period, description, features, popular)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + planColumns

	var created Plan
	err := r.db.GetContext(ctx, &created, query,
		p.GymID, p.Name, p.Price, p.Period, p.Description, p.Features, p.Popular)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID int) ([]Plan, error) {
	query := `SELECT ` + planColumns + ` FROM gym_membership_plans WHERE gym_id = $1 ORDER BY price ASC`

	plans := []Plan{}
	if err := r.db.SelectContext(ctx, &plans, query, gymID); err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *repository) Update(ctx context.Context, p *Plan) (*Plan, error) {
	query := `
		UPDATE gym_membership_plans
		SET name = $1, price = $2, period = $3, description = $4, features = $5, popular = $6
		WHERE id = $7 AND gym_id = $8
		RETURNING ` + planColumns

	var updated Plan
	err := r.db.GetContext(ctx, &updated, query,
		p.Name, p.Price, p.Period, p.Description, p.Features, p.Popular, p.ID, p.GymID)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, gymID, id int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM gym_membership_plans WHERE id = $1 AND gym_id = $2`, id, gymID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrPlanNotFound
	}

	return nil
}
