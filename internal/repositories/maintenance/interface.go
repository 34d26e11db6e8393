package maintenance

import (
	"context"

	"github.com/dmitrijs2005/fleetdesk/internal/models"
)

// Repository is the use-case contract for MaintenanceRequest records.
type Repository interface {
	List(ctx context.Context) ([]models.MaintenanceRequest, error)
	GetByID(ctx context.Context, uid string) (*models.MaintenanceRequest, error)
	Add(ctx context.Context, m *models.MaintenanceRequest) error
	Update(ctx context.Context, m *models.MaintenanceRequest) error
	Delete(ctx context.Context, uid string) error

	// Search filters by prefix term (machine/issue) and workflow status.
	Search(ctx context.Context, term string, status models.MaintenanceStatus) ([]models.MaintenanceRequest, error)
}
