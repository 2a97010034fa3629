package coach

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"tessalp/internal/auth"
	"tessalp/internal/member"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCoachNotFound      = errors.New("coach not found")
)

// Accounts is the slice of the member store the coach portal needs.
type Accounts interface {
	CreateAccount(ctx context.Context, name, email, passwordHash, role string) (*member.UserAccount, error)
	FindAccountByEmail(ctx context.Context, email string) (*member.UserAccount, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*ProfileWithAccount, error)
	Login(ctx context.Context, req LoginRequest) (*ProfileWithAccount, error)
	GetByAccount(ctx context.Context, accountID int) (*ProfileWithAccount, error)
	GetByID(ctx context.Context, id int) (*ProfileWithAccount, error)
	Dashboard(ctx context.Context, accountID int) (*DashboardResponse, error)
}

type service struct {
	repo     Repository
	accounts Accounts
}

func NewService(repo Repository, accounts Accounts) Service {
	return &service{repo: repo, accounts: accounts}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*ProfileWithAccount, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.accounts.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.CreateAccount(ctx, req.Name, email, hash, "coach")
	if err != nil {
		return nil, err
	}

	var bio *string
	if req.Bio != "" {
		bio = &req.Bio
	}
	profile, err := s.repo.CreateProfile(ctx, account.ID, req.Specialty, bio)
	if err != nil {
		return nil, err
	}

	return &ProfileWithAccount{Profile: *profile, Name: account.Name, Email: account.Email}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*ProfileWithAccount, error) {
	account, err := s.accounts.FindAccountByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if account.Role != "coach" {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	profile, err := s.repo.GetProfileByAccountID(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrCoachNotFound
	}
	return profile, nil
}

func (s *service) GetByAccount(ctx context.Context, accountID int) (*ProfileWithAccount, error) {
	profile, err := s.repo.GetProfileByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrCoachNotFound
	}
	return profile, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*ProfileWithAccount, error) {
	profile, err := s.repo.GetProfileByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrCoachNotFound
	}
	return profile, nil
}

// Dashboard returns the coach profile with the members that approved access.
func (s *service) Dashboard(ctx context.Context, accountID int) (*DashboardResponse, error) {
	profile, err := s.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	members, err := s.repo.ListManagedMembers(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	return &DashboardResponse{Coach: *profile, Members: members}, nil
}
