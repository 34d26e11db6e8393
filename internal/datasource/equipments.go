package datasource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fleetdesk/internal/livequery"
	"github.com/dmitrijs2005/fleetdesk/internal/models"
	"github.com/google/uuid"
)

const equipmentColumns = `id, uid, name, type, status, operator, last_maintenance, duration`

func scanEquipment(row interface{ Scan(...any) error }) (*models.Equipment, error) {
	var e models.Equipment
	if err := row.Scan(&e.ID, &e.UID, &e.Name, &e.Type, &e.Status,
		&e.Operator, &e.LastMaintenance, &e.Duration); err != nil {
		return nil, err
	}
	return &e, nil
}

func (d *DataSource) collectEquipments(rows *sql.Rows) ([]models.Equipment, error) {
	defer rows.Close()
	var result []models.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Equipments returns the full table contents.
func (d *DataSource) Equipments(ctx context.Context) ([]models.Equipment, error) {
	livequery.Touch(ctx, TableEquipments)
	rows, err := d.db.QueryContext(ctx, `SELECT `+equipmentColumns+` FROM equipments`)
	if err != nil {
		return nil, fmt.Errorf("failed to select equipments: %w", err)
	}
	return d.collectEquipments(rows)
}

// EquipmentByUID returns the equipment with the given identifier, or
// (nil, nil) when absent.
func (d *DataSource) EquipmentByUID(ctx context.Context, uid string) (*models.Equipment, error) {
	livequery.Touch(ctx, TableEquipments)
	row := d.db.QueryRowContext(ctx,
		`SELECT `+equipmentColumns+` FROM equipments WHERE uid = ?`, uid)
	e, err := scanEquipment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment %s: %w", uid, err)
	}
	return e, nil
}

// AddEquipment inserts e, assigning its UID (when empty) and storage key.
func (d *DataSource) AddEquipment(ctx context.Context, e *models.Equipment) error {
	if e.UID == "" {
		e.UID = uuid.NewString()
	}
	res, err := d.db.ExecContext(ctx,
		`INSERT INTO equipments (uid, name, type, status, operator, last_maintenance, duration)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.UID, e.Name, e.Type, e.Status, e.Operator, e.LastMaintenance, e.Duration)
	if err != nil {
		return fmt.Errorf("failed to insert equipment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get equipment key: %w", err)
	}
	e.ID = id
	return nil
}

// UpdateEquipment replaces the stored record keyed by UID. Updating an
// absent record is a no-op.
func (d *DataSource) UpdateEquipment(ctx context.Context, e *models.Equipment) error {
	_, err := d.db.ExecContext(ctx,
		`UPDATE equipments SET name = ?, type = ?, status = ?, operator = ?,
		 last_maintenance = ?, duration = ? WHERE uid = ?`,
		e.Name, e.Type, e.Status, e.Operator, e.LastMaintenance, e.Duration, e.UID)
	if err != nil {
		return fmt.Errorf("failed to update equipment %s: %w", e.UID, err)
	}
	return nil
}

// DeleteEquipment removes the record keyed by UID. Deleting an absent
// record is a no-op.
func (d *DataSource) DeleteEquipment(ctx context.Context, uid string) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM equipments WHERE uid = ?`, uid)
	if err != nil {
		return fmt.Errorf("failed to delete equipment %s: %w", uid, err)
	}
	return nil
}

// SearchEquipments resolves the (term, status) pair per the search
// decision table: prefix match on name/operator, equality on status.
func (d *DataSource) SearchEquipments(ctx context.Context, term string, status models.EquipmentStatus) ([]models.Equipment, error) {
	livequery.Touch(ctx, TableEquipments)

	var (
		rows *sql.Rows
		err  error
	)
	switch {
	case term == "" && filterIsAll(string(status)):
		rows, err = d.db.QueryContext(ctx, `SELECT `+equipmentColumns+` FROM equipments`)
	case term == "":
		rows, err = d.db.QueryContext(ctx,
			`SELECT `+equipmentColumns+` FROM equipments WHERE status = ?`, status)
	case filterIsAll(string(status)):
		p := prefixPattern(term)
		rows, err = d.db.QueryContext(ctx,
			`SELECT `+equipmentColumns+` FROM equipments WHERE name LIKE ? ESCAPE '\' OR operator LIKE ? ESCAPE '\'`,
			p, p)
	default:
		p := prefixPattern(term)
		rows, err = d.db.QueryContext(ctx,
			`SELECT `+equipmentColumns+` FROM equipments WHERE status = ? AND (name LIKE ? ESCAPE '\' OR operator LIKE ? ESCAPE '\')`,
			status, p, p)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search equipments: %w", err)
	}
	return d.collectEquipments(rows)
}
