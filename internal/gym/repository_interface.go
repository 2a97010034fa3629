package gym

import "context"

type Repository interface {
	CreateGym(ctx context.Context, g *Gym) (*Gym, error)
	GetAllGyms(ctx context.Context) ([]Gym, error)
	GetGymByID(ctx context.Context, id int) (*Gym, error)
	GetGymBySlug(ctx context.Context, slug string) (*Gym, error)
	GetGymByAdminCode(ctx context.Context, adminCode string) (*Gym, error)
	FindGymByName(ctx context.Context, fragment string) (*Gym, error)
	SlugExists(ctx context.Context, slug string, excludeID int) (bool, error)
	CountGyms(ctx context.Context) (int, error)
	UpdateGym(ctx context.Context, g *Gym) (*Gym, error)
	UpdatePassword(ctx context.Context, gymID int, passwordHash string) error
	GetSchedules(ctx context.Context, gymID int) ([]Schedule, error)
	ReplaceSchedules(ctx context.Context, gymID int, schedules []ScheduleInput) ([]Schedule, error)
}
