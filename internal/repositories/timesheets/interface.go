package timesheets

import (
	"context"

	"github.com/dmitrijs2005/fleetdesk/internal/models"
)

// Repository is the use-case contract for TimesheetEntry records.
type Repository interface {
	List(ctx context.Context) ([]models.TimesheetEntry, error)
	GetByID(ctx context.Context, uid string) (*models.TimesheetEntry, error)
	Add(ctx context.Context, t *models.TimesheetEntry) error
	Update(ctx context.Context, t *models.TimesheetEntry) error
	Delete(ctx context.Context, uid string) error

	// Search filters by prefix term (contractor/equipment) and
	// operational status.
	Search(ctx context.Context, term string, status models.TimesheetStatus) ([]models.TimesheetEntry, error)
}
