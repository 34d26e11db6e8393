package equipments

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

func (r *repository) List(ctx context.Context) ([]models.Equipment, error) {
	return r.ds.Equipments(ctx)
}

func (r *repository) GetByID(ctx context.Context, uid string) (*models.Equipment, error) {
	return r.ds.EquipmentByUID(ctx, uid)
}

func (r *repository) Add(ctx context.Context, e *models.Equipment) error {
	if err := r.ds.AddEquipment(ctx, e); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableEquipments)
	return nil
}

func (r *repository) Update(ctx context.Context, e *models.Equipment) error {
	if err := r.ds.UpdateEquipment(ctx, e); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableEquipments)
	return nil
}

func (r *repository) Delete(ctx context.Context, uid string) error {
	if err := r.ds.DeleteEquipment(ctx, uid); err != nil {
		return err
	}
	r.bus.Publish(datasource.TableEquipments)
	return nil
}

func (r *repository) Search(ctx context.Context, term string, status models.EquipmentStatus) ([]models.Equipment, error) {
	return r.ds.SearchEquipments(ctx, term, status)
}
