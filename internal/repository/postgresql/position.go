package postgresql

import (
	"context"
	"fmt"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/position"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

func (r *positionRepositoryImpl) Create(ctx context.Context, p position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO positions (id, name, color, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, TRUE, NOW(), NOW())
		RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, p.Name, p.Color).Scan(
		&p.ID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}

	return p, nil
}

func (r *positionRepositoryImpl) GetByID(ctx context.Context, id string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, color, is_active, created_at, updated_at
		FROM positions
		WHERE id = $1
	`

	var p position.Position
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Color, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return position.Position{}, position.ErrPositionNotFound
		}
		return position.Position{}, fmt.Errorf("failed to get position: %w", err)
	}

	return p, nil
}

func (r *positionRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, color, is_active, created_at, updated_at
		FROM positions
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var p position.Position
		if err := rows.Scan(&p.ID, &p.Name, &p.Color, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}

	return positions, rows.Err()
}

func (r *positionRepositoryImpl) Update(ctx context.Context, p position.Position) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE positions
		SET name = $2, color = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, p.ID, p.Name, p.Color, p.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update position: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return position.ErrPositionNotFound
	}

	return nil
}
