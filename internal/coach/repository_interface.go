package coach

import "context"

type Repository interface {
	CreateProfile(ctx context.Context, accountID int, specialty string, bio *string) (*Profile, error)
	GetProfileByID(ctx context.Context, id int) (*ProfileWithAccount, error)
	GetProfileByAccountID(ctx context.Context, accountID int) (*ProfileWithAccount, error)
	ListManagedMembers(ctx context.Context, coachID int) ([]ManagedMember, error)
}
