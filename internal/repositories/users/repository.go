package users

import (
	"context"

	"github.com/dmitrijs2005/fleetdesk/internal/datasource"
	"github.com/dmitrijs2005/fleetdesk/internal/events"
	"github.com/dmitrijs2005/fleetdesk/internal/models"
)

// repository delegates every call to the data source and publishes a
// table-change event after each successful write. It adds no retries
// and no error translation.
type repository struct {
	ds  *datasource.DataSource
	bus *events.Bus
}

// NewRepository returns the Repository backed by the data source.
func NewRepository(ds *datasource.DataSource, bus *events.Bus) Repository {
	return &repository{ds: ds, bus: bus}
}

func (r *repository) List(ctx context.Context) ([]models.User, error) {
	return r.ds.Users(ctx)
}

func (r *repository) GetByID(ctx context.Context, uid string) (*models.User, error) {
	return r.ds.UserByUID(ctx, uid)
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.ds.UserByEmail(ctx, email)
}

func (r *repository) Add(ctx context.Context, u *models.User) error {
	if err := r.ds.AddUser(ctx, u); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableUsers)
	return nil
}

func (r *repository) Update(ctx context.Context, u *models.User) error {
	if err := r.ds.UpdateUser(ctx, u); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableUsers)
	return nil
}

func (r *repository) Delete(ctx context.Context, uid string) error {
	if err := r.ds.DeleteUser(ctx, uid); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableUsers)
	return nil
}

func (r *repository) Search(ctx context.Context, term, role string) ([]models.User, error) {
	return r.ds.SearchUsers(ctx, term, role)
}
