package member

import "context"

type Repository interface {
	CreateAccount(ctx context.Context, name, email, passwordHash, role string) (*UserAccount, error)
	FindAccountByEmail(ctx context.Context, email string) (*UserAccount, error)
	FindAccountByID(ctx context.Context, id int) (*UserAccount, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	CreateMember(ctx context.Context, m *Member) (*Member, error)
	GetMemberByID(ctx context.Context, id int) (*Member, error)
	GetMemberByCheckinCode(ctx context.Context, code string) (*Member, error)
	ListMembersByGym(ctx context.Context, gymID int) ([]Member, error)
	UpdateMember(ctx context.Context, m *Member) (*Member, error)
	DeleteMember(ctx context.Context, gymID, id int) error

	CreatePurchase(ctx context.Context, p *Purchase) (*Purchase, error)
	ListPurchasesByAccount(ctx context.Context, accountID int) ([]Purchase, error)
}
