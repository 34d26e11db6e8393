package maintenance

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

func (r *repository) List(ctx context.Context) ([]models.MaintenanceRequest, error) {
	return r.ds.MaintenanceRequests(ctx)
}

func (r *repository) GetByID(ctx context.Context, uid string) (*models.MaintenanceRequest, error) {
	return r.ds.MaintenanceByUID(ctx, uid)
}

func (r *repository) Add(ctx context.Context, m *models.MaintenanceRequest) error {
	if err := r.ds.AddMaintenance(ctx, m); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableMaintenance)
	return nil
}

func (r *repository) Update(ctx context.Context, m *models.MaintenanceRequest) error {
	if err := r.ds.UpdateMaintenance(ctx, m); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableMaintenance)
	return nil
}

func (r *repository) Delete(ctx context.Context, uid string) error {
	if err := r.ds.DeleteMaintenance(ctx, uid); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableMaintenance)
	return nil
}

func (r *repository) Search(ctx context.Context, term string, status models.MaintenanceStatus) ([]models.MaintenanceRequest, error) {
	return r.ds.SearchMaintenance(ctx, term, status)
}
