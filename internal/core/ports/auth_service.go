package ports

import (
	"context"

	"github.com/stockroom/inventory-system/internal/core/domain"
)

// AuthService implements registration, login, and identity lookup.
type AuthService interface {
	// Register creates a new account. An empty role defaults to user.
	Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	// Login verifies credentials and issues a bearer token. Unknown username
	// and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// CurrentUser resolves the subject of a verified token to its user record.
	CurrentUser(ctx context.Context, subjectID string) (*domain.User, error)
}
