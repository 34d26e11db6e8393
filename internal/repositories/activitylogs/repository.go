package activitylogs

import (
	"context"

	"github.com/dmitrijs2005/fleetdesk/internal/datasource"
	"github.com/dmitrijs2005/fleetdesk/internal/events"
	"github.com/dmitrijs2005/fleetdesk/internal/models"
)

type repository struct {
	ds  *datasource.DataSource
	bus *events.Bus
}

// NewRepository returns the Repository backed by the data source.
func NewRepository(ds *datasource.DataSource, bus *events.Bus) Repository {
	return &repository{ds: ds, bus: bus}
}

func (r *repository) List(ctx context.Context) ([]models.ActivityLog, error) {
	return r.ds.ActivityLogs(ctx)
}

func (r *repository) Add(ctx context.Context, l *models.ActivityLog) error {
	if err := r.ds.AddActivityLog(ctx, l); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableActivityLogs)
	return nil
}

func (r *repository) Search(ctx context.Context, term string) ([]models.ActivityLog, error) {
	return r.ds.SearchActivityLogs(ctx, term)
}
