package roles

import (
	"context"

	"github.com/dmitrijs2005/fleetdesk/internal/models"
)

// Repository is the use-case contract for Role records. Besides the
// usual CRUD+search it exposes GetByName, the lookup every
// protected-route check performs.
type Repository interface {
	List(ctx context.Context) ([]models.Role, error)
	GetByID(ctx context.Context, uid string) (*models.Role, error)

	// GetByName returns the first role with the given name, or
	// (nil, nil) when absent. An absent role means the empty
	// permission set.
	GetByName(ctx context.Context, name string) (*models.Role, error)

	Add(ctx context.Context, r *models.Role) error
	Update(ctx context.Context, r *models.Role) error
	Delete(ctx context.Context, uid string) error

	// Search prefix-matches role names; an empty term returns all.
	Search(ctx context.Context, term string) ([]models.Role, error)
}
