package position

import "context"

type PositionService interface {
	Create(ctx context.Context, req CreatePositionRequest) (Position, error)
	Get(ctx context.Context, id string) (Position, error)
	List(ctx context.Context, activeOnly bool) ([]Position, error)
	Update(ctx context.Context, req UpdatePositionRequest) (Position, error)
}
