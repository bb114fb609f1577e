package position

import (
	"context"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/position"
)

type positionServiceImpl struct {
	positionRepo position.PositionRepository
}

func NewPositionService(positionRepo position.PositionRepository) position.PositionService {
	return &positionServiceImpl{positionRepo: positionRepo}
}

func (s *positionServiceImpl) Create(ctx context.Context, req position.CreatePositionRequest) (position.Position, error) {
	if err := req.Validate(); err != nil {
		return position.Position{}, err
	}

	return s.positionRepo.Create(ctx, position.Position{
		Name:     req.Name,
		Color:    req.Color,
		IsActive: true,
	})
}

func (s *positionServiceImpl) Get(ctx context.Context, id string) (position.Position, error) {
	return s.positionRepo.GetByID(ctx, id)
}

func (s *positionServiceImpl) List(ctx context.Context, activeOnly bool) ([]position.Position, error) {
	return s.positionRepo.List(ctx, activeOnly)
}

func (s *positionServiceImpl) Update(ctx context.Context, req position.UpdatePositionRequest) (position.Position, error) {
	if err := req.Validate(); err != nil {
		return position.Position{}, err
	}

	existing, err := s.positionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return position.Position{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Color != nil {
		existing.Color = req.Color
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.positionRepo.Update(ctx, existing); err != nil {
		return position.Position{}, err
	}

	return s.positionRepo.GetByID(ctx, req.ID)
}
