package position

import "context"

// PositionRepository - interface for the positions table
type PositionRepository interface {
	Create(ctx context.Context, p Position) (Position, error)
	GetByID(ctx context.Context, id string) (Position, error)
	List(ctx context.Context, activeOnly bool) ([]Position, error)
	Update(ctx context.Context, p Position) error
}
