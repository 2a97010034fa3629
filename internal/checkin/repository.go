package checkin

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, gymID, memberID int) (*Checkin, error)
	ListByGymAndDate(ctx context.Context, gymID int, day time.Time) ([]Entry, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, gymID, memberID int) (*Checkin, error) {
	query := `
		INSERT INTO checkins (gym_id, member_id)
		VALUES ($1, $2)
		RETURNING id, gym_id, member_id, checkin_time`

	var c Checkin
	if err := r.db.GetContext(ctx, &c, query, gymID, memberID); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListByGymAndDate(ctx context.Context, gymID int, day time.Time) ([]Entry, error) {
	query := `
		SELECT c.id, c.gym_id, c.member_id, c.checkin_time,
		       m.name AS member_name, m.membership_type
		FROM checkins c
		JOIN members m ON m.id = c.member_id
		WHERE c.gym_id = $1 AND c.checkin_time::date = $2::date
		ORDER BY c.checkin_time DESC`

	entries := []Entry{}
	if err := r.db.SelectContext(ctx, &entries, query, gymID, day); err != nil {
		return nil, err
	}
	return entries, nil
}
