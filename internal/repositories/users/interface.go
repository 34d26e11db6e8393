package users

import (
	"context"

	"github.com/dmitrijs2005/fleetdesk/internal/models"
)

// Repository is the use-case contract for User records. It is the seam
// presentation code depends on; exactly one implementation exists, but
// the interface lets tests substitute their own.
type Repository interface {
	// List returns all users.
	List(ctx context.Context) ([]models.User, error)

	// GetByID returns the user with the given identifier, or (nil, nil)
	// when absent.
	GetByID(ctx context.Context, uid string) (*models.User, error)

	// GetByEmail returns the first user with the given email, or
	// (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Add inserts a new user, assigning its identifier and storage key.
	Add(ctx context.Context, u *models.User) error

	// Update replaces the stored record keyed by identifier.
	Update(ctx context.Context, u *models.User) error

	// Delete removes the record keyed by identifier.
	Delete(ctx context.Context, uid string) error

	// Search filters by prefix term (name/email) and role.
	Search(ctx context.Context, term, role string) ([]models.User, error)
}
