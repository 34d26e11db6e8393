package vendors

import (
	"context"

	"github.com/dmitrijs2005/fleetdesk/internal/models"
)

// Repository is the use-case contract for Vendor records.
type Repository interface {
	List(ctx context.Context) ([]models.Vendor, error)
	GetByID(ctx context.Context, uid string) (*models.Vendor, error)
	Add(ctx context.Context, v *models.Vendor) error
	Update(ctx context.Context, v *models.Vendor) error
	Delete(ctx context.Context, uid string) error

	// Search filters by prefix term (name/category) and status.
	Search(ctx context.Context, term string, status models.VendorStatus) ([]models.Vendor, error)
}
