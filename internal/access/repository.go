package access

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"tessalp/internal/db"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const requestColumns = `ar.id, ar.coach_id, ar.member_id, ar.status, ar.notes, ar.requested_at, ar.responded_at`

func (r *repository) Create(ctx context.Context, coachID, memberID int, notes *string) (*Request, error) {
	query := `
		INSERT INTO coach_access_requests (coach_id, member_id, status, notes)
		VALUES ($1, $2, 'PENDING', $3)
		RETURNING id, coach_id, member_id, status, notes, requested_at, responded_at`

	var req Request
	if err := r.db.GetContext(ctx, &req, query, coachID, memberID, notes); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Request, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM coach_access_requests ar
		WHERE ar.id = $1`

	var req Request
	if err := r.db.GetContext(ctx, &req, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *repository) HasOpenRequest(ctx context.Context, coachID, memberID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM coach_access_requests
			WHERE coach_id = $1 AND member_id = $2 AND status IN ('PENDING', 'APPROVED')
		)`

	return db.Exists(ctx, r.db, query, coachID, memberID)
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]MemberView, error) {
	query := `
		SELECT ` + requestColumns + `, ua.name AS coach_name, ua.email AS coach_email
		FROM coach_access_requests ar
		JOIN coach_profiles cp ON cp.id = ar.coach_id
		JOIN user_accounts ua ON ua.id = cp.account_id
		WHERE ar.member_id = $1
		ORDER BY ar.requested_at DESC`

	requests := []MemberView{}
	if err := r.db.SelectContext(ctx, &requests, query, memberID); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *repository) ListByCoach(ctx context.Context, coachID int) ([]CoachView, error) {
	query := `
		SELECT ` + requestColumns + `, m.name AS member_name, m.email AS member_email
		FROM coach_access_requests ar
		JOIN members m ON m.id = ar.member_id
		WHERE ar.coach_id = $1
		ORDER BY ar.requested_at DESC`

	requests := []CoachView{}
	if err := r.db.SelectContext(ctx, &requests, query, coachID); err != nil {
		return nil, err
	}
	return requests, nil
}

// Resolve is a conditional update so two concurrent responders cannot both
// win: only the write that still sees PENDING flips the row.
func (r *repository) Resolve(ctx context.Context, id int, status string) (bool, error) {
	query := `
		UPDATE coach_access_requests
		SET status = $2, responded_at = NOW()
		WHERE id = $1 AND status = 'PENDING'`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
