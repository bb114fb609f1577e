package user

import "context"

// UserRepository - read-side interface over the users table
type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	ListActive(ctx context.Context) ([]User, error)
}
