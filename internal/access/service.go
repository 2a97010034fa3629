package access

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"tessalp/internal/coach"
	"tessalp/internal/logger"
	"tessalp/internal/member"
	"tessalp/internal/metrics"
)

var (
	ErrInvalidAction    = errors.New("invalid action")
	ErrRequestNotFound  = errors.New("access request not found")
	ErrAlreadyResolved  = errors.New("access request already resolved")
	ErrDuplicateRequest = errors.New("open access request already exists")
	ErrMemberNotFound   = errors.New("member not found")
	ErrCoachNotFound    = errors.New("coach not found")
)

// Members is the slice of the member store the workflow needs.
type Members interface {
	GetMemberByID(ctx context.Context, id int) (*member.Member, error)
}

// Coaches is the slice of the coach store the workflow needs.
type Coaches interface {
	GetProfileByID(ctx context.Context, id int) (*coach.ProfileWithAccount, error)
}

// Notifier delivers workflow emails. Failures are logged, never surfaced.
type Notifier interface {
	SendAccessRequested(ctx context.Context, to, coachName string) error
	SendAccessDecision(ctx context.Context, to, status string) error
}

type Service interface {
	CreateRequest(ctx context.Context, coachID int, req CreateRequest) (*Request, error)
	ListForMember(ctx context.Context, memberID int) ([]MemberView, error)
	ListForCoach(ctx context.Context, coachID int) ([]CoachView, error)
	Respond(ctx context.Context, req RespondRequest) (*RespondResponse, error)
}

type service struct {
	repo     Repository
	members  Members
	coaches  Coaches
	notifier Notifier
}

func NewService(repo Repository, members Members, coaches Coaches, notifier Notifier) Service {
	return &service{
		repo:     repo,
		members:  members,
		coaches:  coaches,
		notifier: notifier,
	}
}

func (s *service) CreateRequest(ctx context.Context, coachID int, req CreateRequest) (*Request, error) {
	profile, err := s.coaches.GetProfileByID(ctx, coachID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrCoachNotFound
	}

	m, err := s.members.GetMemberByID(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	open, err := s.repo.HasOpenRequest(ctx, coachID, req.MemberID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, ErrDuplicateRequest
	}

	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}
	created, err := s.repo.Create(ctx, coachID, req.MemberID, notes)
	if err != nil {
		return nil, err
	}
	metrics.AccessRequestsTotal.Inc()

	if s.notifier != nil {
		if err := s.notifier.SendAccessRequested(ctx, m.Email, profile.Name); err != nil {
			logger.Error("failed to queue access request email", "error", err, "memberId", m.ID)
		}
	}
	return created, nil
}

func (s *service) ListForMember(ctx context.Context, memberID int) ([]MemberView, error) {
	return s.repo.ListByMember(ctx, memberID)
}

func (s *service) ListForCoach(ctx context.Context, coachID int) ([]CoachView, error) {
	return s.repo.ListByCoach(ctx, coachID)
}

// Respond flips a PENDING request to APPROVED or REJECTED exactly once.
func (s *service) Respond(ctx context.Context, req RespondRequest) (*RespondResponse, error) {
	var status string
	switch strings.ToUpper(req.Action) {
	case "APPROVE":
		status = StatusApproved
	case "REJECT":
		status = StatusRejected
	default:
		return nil, ErrInvalidAction
	}

	existing, err := s.repo.GetByID(ctx, req.RequestID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrRequestNotFound
	}
	if existing.Status != StatusPending {
		return nil, ErrAlreadyResolved
	}

	// The conditional update is the real gate. A concurrent responder may
	// have won between the read above and this write.
	won, err := s.repo.Resolve(ctx, req.RequestID, status)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, ErrAlreadyResolved
	}
	metrics.AccessRequestDecisionsTotal.WithLabelValues(status).Inc()

	if s.notifier != nil {
		if profile, err := s.coaches.GetProfileByID(ctx, existing.CoachID); err == nil && profile != nil {
			if err := s.notifier.SendAccessDecision(ctx, profile.Email, status); err != nil {
				logger.Error("failed to queue access decision email", "error", err, "requestId", req.RequestID)
			}
		}
	}

	message := "Solicitud aprobada"
	if status == StatusRejected {
		message = "Solicitud rechazada"
	}
	return &RespondResponse{Message: message, Status: status}, nil
}
