package postgresql

import (
	"context"
	"fmt"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/user"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.email, u.name, u.role, u.position_id,
			   u.hourly_rate, u.annual_vacation_days, u.is_active,
			   u.created_at, u.updated_at,
			   p.name AS position_name
		FROM users u
		LEFT JOIN positions p ON u.position_id = p.id
		WHERE u.id = $1
	`

	var usr user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&usr.ID, &usr.Email, &usr.Name, &usr.Role, &usr.PositionID,
		&usr.HourlyRate, &usr.AnnualVacationDays, &usr.IsActive,
		&usr.CreatedAt, &usr.UpdatedAt,
		&usr.PositionName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return usr, nil
}

func (r *userRepositoryImpl) ListActive(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.email, u.name, u.role, u.position_id,
			   u.hourly_rate, u.annual_vacation_days, u.is_active,
			   u.created_at, u.updated_at
		FROM users u
		WHERE u.is_active = TRUE
		ORDER BY u.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var usr user.User
		err := rows.Scan(
			&usr.ID, &usr.Email, &usr.Name, &usr.Role, &usr.PositionID,
			&usr.HourlyRate, &usr.AnnualVacationDays, &usr.IsActive,
			&usr.CreatedAt, &usr.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, usr)
	}

	return users, rows.Err()
}
