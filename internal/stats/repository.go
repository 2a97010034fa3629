package stats

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	CountActiveMembers(ctx context.Context, gymID int, asOf time.Time) (int, error)
	CountCheckinsOnDate(ctx context.Context, gymID int, day time.Time) (int, error)
	CountMembersCreatedBetween(ctx context.Context, gymID int, from, to time.Time) (int, error)
	CountByMembershipType(ctx context.Context, gymID int, from, to time.Time) (map[string]int, error)
	CheckinsByWeekday(ctx context.Context, gymID int, weekStart time.Time) (map[int]int, error)
	CountTotalMembers(ctx context.Context, gymID int) (int, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountActiveMembers(ctx context.Context, gymID int, asOf time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM members
		WHERE gym_id = $1 AND status = 'active'
		  AND created_at <= $2
		  AND (membership_end IS NULL OR membership_end >= $2)`

	var count int
	err := r.db.GetContext(ctx, &count, query, gymID, asOf)
	return count, err
}

func (r *repository) CountCheckinsOnDate(ctx context.Context, gymID int, day time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM checkins
		WHERE gym_id = $1 AND checkin_time::date = $2::date`

	var count int
	err := r.db.GetContext(ctx, &count, query, gymID, day)
	return count, err
}

func (r *repository) CountMembersCreatedBetween(ctx context.Context, gymID int, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM members
		WHERE gym_id = $1 AND created_at >= $2 AND created_at < $3`

	var count int
	err := r.db.GetContext(ctx, &count, query, gymID, from, to)
	return count, err
}

func (r *repository) CountByMembershipType(ctx context.Context, gymID int, from, to time.Time) (map[string]int, error) {
	query := `
		SELECT membership_type, COUNT(*) AS total FROM members
		WHERE gym_id = $1 AND created_at >= $2 AND created_at < $3
		GROUP BY membership_type`

	rows, err := r.db.QueryxContext(ctx, query, gymID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var membershipType string
		var total int
		if err := rows.Scan(&membershipType, &total); err != nil {
			return nil, err
		}
		counts[membershipType] = total
	}
	return counts, rows.Err()
}

// CheckinsByWeekday buckets a week of check-ins by ISO weekday (1=Monday).
func (r *repository) CheckinsByWeekday(ctx context.Context, gymID int, weekStart time.Time) (map[int]int, error) {
	query := `
		SELECT EXTRACT(ISODOW FROM checkin_time)::int AS dow, COUNT(*) AS total
		FROM checkins
		WHERE gym_id = $1 AND checkin_time >= $2 AND checkin_time < $3
		GROUP BY dow`

	rows, err := r.db.QueryxContext(ctx, query, gymID, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[int]int{}
	for rows.Next() {
		var dow, total int
		if err := rows.Scan(&dow, &total); err != nil {
			return nil, err
		}
		counts[dow] = total
	}
	return counts, rows.Err()
}

func (r *repository) CountTotalMembers(ctx context.Context, gymID int) (int, error) {
	query := `SELECT COUNT(*) FROM members WHERE gym_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, gymID)
	return count, err
}
