package member

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"tessalp/internal/auth"
	"tessalp/internal/logger"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")
	ErrMemberNotFound     = errors.New("member not found")
	ErrBadMembershipEnd   = errors.New("invalid membership end date")
)

// Notifier is the slice of the email service the member flows need.
type Notifier interface {
	SendWelcome(ctx context.Context, to, name string) error
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*UserAccount, error)
	Login(ctx context.Context, req LoginRequest) (*UserAccount, error)
	GetAccount(ctx context.Context, id int) (*UserAccount, error)

	CreateMember(ctx context.Context, gymID int, req CreateMemberRequest) (*Member, error)
	GetMember(ctx context.Context, id int) (*Member, error)
	ListMembers(ctx context.Context, gymID int) ([]Member, error)
	UpdateMember(ctx context.Context, gymID, id int, req UpdateMemberRequest) (*Member, error)
	DeleteMember(ctx context.Context, gymID, id int) error

	RecordPurchase(ctx context.Context, accountID int, req CreatePurchaseRequest) (*Purchase, error)
	ListPurchases(ctx context.Context, accountID int) ([]Purchase, error)
}

type service struct {
	repo     Repository
	notifier Notifier
}

func NewService(repo Repository, notifier Notifier) Service {
	return &service{
		repo:     repo,
		notifier: notifier,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*UserAccount, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.CreateAccount(ctx, req.Name, email, hash, "member")
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.SendWelcome(ctx, account.Email, account.Name); err != nil {
			logger.Error("failed to queue welcome email", "email", account.Email, "error", err)
		}
	}

	return account, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*UserAccount, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := s.repo.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

func (s *service) GetAccount(ctx context.Context, id int) (*UserAccount, error) {
	account, err := s.repo.FindAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func parseMembershipEnd(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, ErrBadMembershipEnd
	}
	return &t, nil
}

func (s *service) CreateMember(ctx context.Context, gymID int, req CreateMemberRequest) (*Member, error) {
	end, err := parseMembershipEnd(req.MembershipEnd)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	m := &Member{
		GymID:          gymID,
		Name:           req.Name,
		Email:          strings.ToLower(req.Email),
		MembershipType: req.MembershipType,
		MembershipEnd:  end,
		Status:         status,
		CheckinCode:    uuid.NewString(),
	}

	return s.repo.CreateMember(ctx, m)
}

func (s *service) GetMember(ctx context.Context, id int) (*Member, error) {
	m, err := s.repo.GetMemberByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *service) ListMembers(ctx context.Context, gymID int) ([]Member, error) {
	return s.repo.ListMembersByGym(ctx, gymID)
}

func (s *service) UpdateMember(ctx context.Context, gymID, id int, req UpdateMemberRequest) (*Member, error) {
	end, err := parseMembershipEnd(req.MembershipEnd)
	if err != nil {
		return nil, err
	}

	m := &Member{
		ID:             id,
		GymID:          gymID,
		Name:           req.Name,
		Email:          strings.ToLower(req.Email),
		MembershipType: req.MembershipType,
		MembershipEnd:  end,
		Status:         req.Status,
	}

	updated, err := s.repo.UpdateMember(ctx, m)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return updated, nil
}

func (s *service) DeleteMember(ctx context.Context, gymID, id int) error {
	err := s.repo.DeleteMember(ctx, gymID, id)
	if errors.Is(err, ErrMemberNotFoundOrDeleted) {
		return ErrMemberNotFound
	}
	return err
}

func (s *service) RecordPurchase(ctx context.Context, accountID int, req CreatePurchaseRequest) (*Purchase, error) {
	p := &Purchase{
		AccountID: accountID,
		PlanName:  req.PlanName,
		Price:     req.Price,
		Period:    req.Period,
	}
	if req.GymID > 0 {
		p.GymID = &req.GymID
	}

	return s.repo.CreatePurchase(ctx, p)
}

func (s *service) ListPurchases(ctx context.Context, accountID int) ([]Purchase, error) {
	return s.repo.ListPurchasesByAccount(ctx, accountID)
}
