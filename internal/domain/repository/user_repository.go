package repository

import (
	"context"

	"github.com/sarwaraminy/hostapi/internal/domain/entity"
)

// UserRepository defines the store operations for identity records.
// GetByEmail returns ErrNotFound when no user has the given email;
// Create returns ErrDuplicate when the email is already taken.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
