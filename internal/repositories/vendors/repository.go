package vendors

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

func (r *repository) List(ctx context.Context) ([]models.Vendor, error) {
	return r.ds.Vendors(ctx)
}

func (r *repository) GetByID(ctx context.Context, uid string) (*models.Vendor, error) {
	return r.ds.VendorByUID(ctx, uid)
}

func (r *repository) Add(ctx context.Context, v *models.Vendor) error {
	if err := r.ds.AddVendor(ctx, v); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableVendors)
	return nil
}

func (r *repository) Update(ctx context.Context, v *models.Vendor) error {
	if err := r.ds.UpdateVendor(ctx, v); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableVendors)
	return nil
}

func (r *repository) Delete(ctx context.Context, uid string) error {
	if err := r.ds.DeleteVendor(ctx, uid); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableVendors)
	return nil
}

func (r *repository) Search(ctx context.Context, term string, status models.VendorStatus) ([]models.Vendor, error) {
	return r.ds.SearchVendors(ctx, term, status)
}
