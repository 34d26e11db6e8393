package equipments

import (
	"context"

	"github.com/dmitrijs2005/fleetdesk/internal/models"
)

// Repository is the use-case contract for Equipment records.
type Repository interface {
	List(ctx context.Context) ([]models.Equipment, error)
	GetByID(ctx context.Context, uid string) (*models.Equipment, error)
	Add(ctx context.Context, e *models.Equipment) error
	Update(ctx context.Context, e *models.Equipment) error
	Delete(ctx context.Context, uid string) error

	// Search filters by prefix term (name/operator) and status.
	Search(ctx context.Context, term string, status models.EquipmentStatus) ([]models.Equipment, error)
}
