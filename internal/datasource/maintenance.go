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

const maintenanceColumns = `id, uid, date, machine, issue, description, priority, status`

func scanMaintenance(row interface{ Scan(...any) error }) (*models.MaintenanceRequest, error) {
	var m models.MaintenanceRequest
	if err := row.Scan(&m.ID, &m.UID, &m.Date, &m.Machine, &m.Issue,
		&m.Description, &m.Priority, &m.Status); err != nil {
		return nil, err
	}
	return &m, nil
}

func (d *DataSource) collectMaintenance(rows *sql.Rows) ([]models.MaintenanceRequest, error) {
	defer rows.Close()
	var result []models.MaintenanceRequest
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// MaintenanceRequests returns the full table contents.
func (d *DataSource) MaintenanceRequests(ctx context.Context) ([]models.MaintenanceRequest, error) {
	livequery.Touch(ctx, TableMaintenance)
	rows, err := d.db.QueryContext(ctx, `SELECT `+maintenanceColumns+` FROM maintenance`)
	if err != nil {
		return nil, fmt.Errorf("failed to select maintenance requests: %w", err)
	}
	return d.collectMaintenance(rows)
}

// MaintenanceByUID returns the request with the given identifier, or
// (nil, nil) when absent.
func (d *DataSource) MaintenanceByUID(ctx context.Context, uid string) (*models.MaintenanceRequest, error) {
	livequery.Touch(ctx, TableMaintenance)
	row := d.db.QueryRowContext(ctx,
		`SELECT `+maintenanceColumns+` FROM maintenance WHERE uid = ?`, uid)
	m, err := scanMaintenance(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance request %s: %w", uid, err)
	}
	return m, nil
}

// AddMaintenance inserts m, assigning its UID (when empty) and storage key.
func (d *DataSource) AddMaintenance(ctx context.Context, m *models.MaintenanceRequest) error {
	if m.UID == "" {
		m.UID = uuid.NewString()
	}
	res, err := d.db.ExecContext(ctx,
		`INSERT INTO maintenance (uid, date, machine, issue, description, priority, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.UID, m.Date, m.Machine, m.Issue, m.Description, m.Priority, m.Status)
	if err != nil {
		return fmt.Errorf("failed to insert maintenance request: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get maintenance key: %w", err)
	}
	m.ID = id
	return nil
}

// UpdateMaintenance replaces the stored record keyed by UID. Updating
// an absent record is a no-op.
func (d *DataSource) UpdateMaintenance(ctx context.Context, m *models.MaintenanceRequest) error {
	_, err := d.db.ExecContext(ctx,
		`UPDATE maintenance SET date = ?, machine = ?, issue = ?, description = ?,
		 priority = ?, status = ? WHERE uid = ?`,
		m.Date, m.Machine, m.Issue, m.Description, m.Priority, m.Status, m.UID)
	if err != nil {
		return fmt.Errorf("failed to update maintenance request %s: %w", m.UID, err)
	}
	return nil
}

// DeleteMaintenance removes the record keyed by UID. Deleting an absent
// record is a no-op.
func (d *DataSource) DeleteMaintenance(ctx context.Context, uid string) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM maintenance WHERE uid = ?`, uid)
	if err != nil {
		return fmt.Errorf("failed to delete maintenance request %s: %w", uid, err)
	}
	return nil
}

// SearchMaintenance resolves the (term, status) pair per the search
// decision table: prefix match on machine/issue, equality on status.
func (d *DataSource) SearchMaintenance(ctx context.Context, term string, status models.MaintenanceStatus) ([]models.MaintenanceRequest, error) {
	livequery.Touch(ctx, TableMaintenance)

	var (
		rows *sql.Rows
		err  error
	)
	switch {
	case term == "" && filterIsAll(string(status)):
		rows, err = d.db.QueryContext(ctx, `SELECT `+maintenanceColumns+` FROM maintenance`)
	case term == "":
		rows, err = d.db.QueryContext(ctx,
			`SELECT `+maintenanceColumns+` FROM maintenance WHERE status = ?`, status)
	case filterIsAll(string(status)):
		p := prefixPattern(term)
		rows, err = d.db.QueryContext(ctx,
			`SELECT `+maintenanceColumns+` FROM maintenance WHERE machine LIKE ? ESCAPE '\' OR issue LIKE ? ESCAPE '\'`,
			p, p)
	default:
		p := prefixPattern(term)
		rows, err = d.db.QueryContext(ctx,
			`SELECT `+maintenanceColumns+` FROM maintenance WHERE status = ? AND (machine LIKE ? ESCAPE '\' OR issue LIKE ? ESCAPE '\')`,
			status, p, p)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search maintenance requests: %w", err)
	}
	return d.collectMaintenance(rows)
}
