package access

import "context"

type Repository interface {
	Create(ctx context.Context, coachID, memberID int, notes *string) (*Request, error)
	GetByID(ctx context.Context, id int) (*Request, error)
	HasOpenRequest(ctx context.Context, coachID, memberID int) (bool, error)
	ListByMember(ctx context.Context, memberID int) ([]MemberView, error)
	ListByCoach(ctx context.Context, coachID int) ([]CoachView, error)
	// Resolve flips a PENDING request to the given status. Returns false
	// when the request was already resolved by a concurrent writer.
	Resolve(ctx context.Context, id int, status string) (bool, error)
}
