package roles

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

func (r *repository) List(ctx context.Context) ([]models.Role, error) {
	return r.ds.Roles(ctx)
}

func (r *repository) GetByID(ctx context.Context, uid string) (*models.Role, error) {
	return r.ds.RoleByUID(ctx, uid)
}

func (r *repository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	return r.ds.RoleByName(ctx, name)
}

func (r *repository) Add(ctx context.Context, role *models.Role) error {
	if err := r.ds.AddRole(ctx, role); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableRoles)
	return nil
}

func (r *repository) Update(ctx context.Context, role *models.Role) error {
	if err := r.ds.UpdateRole(ctx, role); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableRoles)
	return nil
}

func (r *repository) Delete(ctx context.Context, uid string) error {
	if err := r.ds.DeleteRole(ctx, uid); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableRoles)
	return nil
}

func (r *repository) Search(ctx context.Context, term string) ([]models.Role, error) {
	return r.ds.SearchRoles(ctx, term)
}
