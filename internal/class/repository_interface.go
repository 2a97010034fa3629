package class

import "context"

type Repository interface {
	Create(ctx context.Context, c *Class) (*Class, error)
	List(ctx context.Context) ([]Class, error)
	GetByID(ctx context.Context, id int) (*Class, error)
	Update(ctx context.Context, c *Class) (*Class, error)
	Delete(ctx context.Context, id int) error
}
