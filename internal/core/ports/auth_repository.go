package ports

import (
	"context"

	"github.com/stockroom/inventory-system/internal/core/domain"
)

// AuthRepository defines the interface for user persistence. Implementations
// must map a duplicate username to domain.ErrUserExists and a missing record
// to domain.ErrUserNotFound.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
