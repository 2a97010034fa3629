package coach

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const profileColumns = `cp.id, cp.account_id, cp.specialty, cp.bio, cp.created_at, ua.name, ua.email`

func (r *repository) CreateProfile(ctx context.Context, accountID int, specialty string, bio *string) (*Profile, error) {
	query := `
		INSERT INTO coach_profiles (account_id, specialty, bio)
		VALUES ($1, $2, $3)
		RETURNING id, account_id, specialty, bio, created_at`

	var p Profile
	if err := r.db.GetContext(ctx, &p, query, accountID, specialty, bio); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetProfileByID(ctx context.Context, id int) (*ProfileWithAccount, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM coach_profiles cp
		JOIN user_accounts ua ON ua.id = cp.account_id
		WHERE cp.id = $1`

	var p ProfileWithAccount
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetProfileByAccountID(ctx context.Context, accountID int) (*ProfileWithAccount, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM coach_profiles cp
		JOIN user_accounts ua ON ua.id = cp.account_id
		WHERE cp.account_id = $1`

	var p ProfileWithAccount
	if err := r.db.GetContext(ctx, &p, query, accountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListManagedMembers(ctx context.Context, coachID int) ([]ManagedMember, error) {
	query := `
		SELECT m.id AS member_id, m.name, m.email, m.membership_type, m.membership_end,
		       ar.responded_at AS approved_at
		FROM coach_access_requests ar
		JOIN members m ON m.id = ar.member_id
		WHERE ar.coach_id = $1 AND ar.status = 'APPROVED'
		ORDER BY ar.responded_at DESC`

	members := []ManagedMember{}
	if err := r.db.SelectContext(ctx, &members, query, coachID); err != nil {
		return nil, err
	}
	return members, nil
}
