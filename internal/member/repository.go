package member

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"tessalp/internal/db"
)

var ErrMemberNotFoundOrDeleted = errors.New("member not found")

const memberColumns = `id, gym_id, account_id, name, email, membership_type, membership_end, status, checkin_code, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateAccount(ctx context.Context, name, email, passwordHash, role string) (*UserAccount, error) {
	query := `
		INSERT INTO user_accounts (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, role, created_at
	`

	var account UserAccount
	err := r.db.GetContext(ctx, &account, query, name, email, passwordHash, role)
	if err != nil {
		return nil, err
	}

	return &account, nil
}

func (r *repository) FindAccountByEmail(ctx context.Context, email string) (*UserAccount, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM user_accounts
		WHERE email = $1
	`

	var account UserAccount
	err := r.db.GetContext(ctx, &account, query, email)
	if err != nil {
		return nil, err
	}

	return &account, nil
}

func (r *repository) FindAccountByID(ctx context.Context, id int) (*UserAccount, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM user_accounts
		WHERE id = $1
	`

	var account UserAccount
	err := r.db.GetContext(ctx, &account, query, id)
	if err != nil {
		return nil, err
	}

	return &account, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM user_accounts WHERE email = $1)`, email)
}

func (r *repository) CreateMember(ctx context.Context, m *Member) (*Member, error) {
	query := `
		INSERT INTO members (gym_id, account_id, name, email, membership_type, membership_end, status, checkin_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + memberColumns

	var created Member
	err := r.db.GetContext(ctx, &created, query,
		m.GymID, m.AccountID, m.Name, m.Email, m.MembershipType, m.MembershipEnd, m.Status, m.CheckinCode)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetMemberByID(ctx context.Context, id int) (*Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) GetMemberByCheckinCode(ctx context.Context, code string) (*Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE checkin_code = $1`

	var m Member
	err := r.db.GetContext(ctx, &m, query, code)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) ListMembersByGym(ctx context.Context, gymID int) ([]Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE gym_id = $1 ORDER BY created_at DESC`

	var members []Member
	err := r.db.SelectContext(ctx, &members, query, gymID)
	if err != nil {
		return nil, err
	}

	return members, nil
}

func (r *repository) UpdateMember(ctx context.Context, m *Member) (*Member, error) {
	query := `
		UPDATE members
		SET name = $1, email = $2, membership_type = $3, membership_end = $4, status = $5
		WHERE id = $6 AND gym_id = $7
		RETURNING ` + memberColumns

	var updated Member
	err := r.db.GetContext(ctx, &updated, query,
		m.Name, m.Email, m.MembershipType, m.MembershipEnd, m.Status, m.ID, m.GymID)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) DeleteMember(ctx context.Context, gymID, id int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM members WHERE id = $1 AND gym_id = $2`, id, gymID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrMemberNotFoundOrDeleted
	}

	return nil
}

func (r *repository) CreatePurchase(ctx context.Context, p *Purchase) (*Purchase, error) {
	query := `
		INSERT INTO membership_purchases (account_id, gym_id, plan_name, price, period)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, account_id, gym_id, plan_name, price, period, purchased_at
	`

	var created Purchase
	err := r.db.GetContext(ctx, &created, query,
		p.AccountID, p.GymID, p.PlanName, p.Price, p.Period)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) ListPurchasesByAccount(ctx context.Context, accountID int) ([]Purchase, error) {
	query := `
		SELECT id, account_id, gym_id, plan_name, price, period, purchased_at
		FROM membership_purchases
		WHERE account_id = $1
		ORDER BY purchased_at DESC
	`

	var purchases []Purchase
	err := r.db.SelectContext(ctx, &purchases, query, accountID)
	if err != nil {
		return nil, err
	}

	return purchases, nil
}
