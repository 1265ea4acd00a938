package user

import (
	"context"

	"github.com/barbapp/booking-api/internal/models"
)

// Repository is the persistence surface the credential use cases depend on.
// Implementations translate store-level failures into httperr business
// errors where a domain meaning exists (not_found, duplicate_credential);
// everything else propagates untouched as a storage failure.
type Repository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)

	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindByUsernameOrEmail returns the first user whose username or email
	// matches. Used by the create path for the pre-insert uniqueness check.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)

	Create(ctx context.Context, u *models.User) error

	Update(ctx context.Context, u *models.User) error
}
