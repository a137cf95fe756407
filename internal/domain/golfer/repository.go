package golfer

import "context"

// Repository describes golfer persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Golfer, error)
	GetByIDs(ctx context.Context, golferIDs []string) ([]Golfer, error)
}
