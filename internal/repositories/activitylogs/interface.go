package activitylogs

import (
	"context"

	"github.com/dmitrijs2005/fleetdesk/internal/models"
)

// Repository is the use-case contract for the audit trail. Entries are
// append-only; there is no update or delete.
type Repository interface {
	List(ctx context.Context) ([]models.ActivityLog, error)
	Add(ctx context.Context, l *models.ActivityLog) error

	// Search prefix-matches the acting user's name.
	Search(ctx context.Context, term string) ([]models.ActivityLog, error)
}
