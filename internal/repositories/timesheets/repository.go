package timesheets

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

func (r *repository) List(ctx context.Context) ([]models.TimesheetEntry, error) {
	return r.ds.TimesheetEntries(ctx)
}

func (r *repository) GetByID(ctx context.Context, uid string) (*models.TimesheetEntry, error) {
	return r.ds.TimesheetByUID(ctx, uid)
}

func (r *repository) Add(ctx context.Context, t *models.TimesheetEntry) error {
	if err := r.ds.AddTimesheet(ctx, t); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableTimesheet)
	return nil
}

func (r *repository) Update(ctx context.Context, t *models.TimesheetEntry) error {
	if err := r.ds.UpdateTimesheet(ctx, t); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableTimesheet)
	return nil
}

func (r *repository) Delete(ctx context.Context, uid string) error {
	if err := r.ds.DeleteTimesheet(ctx, uid); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableTimesheet)
	return nil
}

func (r *repository) Search(ctx context.Context, term string, status models.TimesheetStatus) ([]models.TimesheetEntry, error) {
	return r.ds.SearchTimesheets(ctx, term, status)
}
