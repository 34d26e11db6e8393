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

const timesheetColumns = `id, uid, contractor, equipment, date, hm_start, hm_end, gps, blade, status`

func scanTimesheet(row interface{ Scan(...any) error }) (*models.TimesheetEntry, error) {
	var t models.TimesheetEntry
	if err := row.Scan(&t.ID, &t.UID, &t.Contractor, &t.Equipment, &t.Date,
		&t.HourMeterStart, &t.HourMeterEnd, &t.GPSEnabled, &t.Blade, &t.Status); err != nil {
		return nil, err
	}
	return &t, nil
}

func (d *DataSource) collectTimesheets(rows *sql.Rows) ([]models.TimesheetEntry, error) {
	defer rows.Close()
	var result []models.TimesheetEntry
	for rows.Next() {
		t, err := scanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// TimesheetEntries returns the full table contents.
func (d *DataSource) TimesheetEntries(ctx context.Context) ([]models.TimesheetEntry, error) {
	livequery.Touch(ctx, TableTimesheet)
	rows, err := d.db.QueryContext(ctx, `SELECT `+timesheetColumns+` FROM timesheet`)
	if err != nil {
		return nil, fmt.Errorf("failed to select timesheet entries: %w", err)
	}
	return d.collectTimesheets(rows)
}

// TimesheetByUID returns the entry with the given identifier, or
// (nil, nil) when absent.
func (d *DataSource) TimesheetByUID(ctx context.Context, uid string) (*models.TimesheetEntry, error) {
	livequery.Touch(ctx, TableTimesheet)
	row := d.db.QueryRowContext(ctx,
		`SELECT `+timesheetColumns+` FROM timesheet WHERE uid = ?`, uid)
	t, err := scanTimesheet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get timesheet entry %s: %w", uid, err)
	}
	return t, nil
}

// AddTimesheet inserts t, assigning its UID (when empty) and storage key.
func (d *DataSource) AddTimesheet(ctx context.Context, t *models.TimesheetEntry) error {
	if t.UID == "" {
		t.UID = uuid.NewString()
	}
	res, err := d.db.ExecContext(ctx,
		`INSERT INTO timesheet (uid, contractor, equipment, date, hm_start, hm_end, gps, blade, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.UID, t.Contractor, t.Equipment, t.Date, t.HourMeterStart, t.HourMeterEnd,
		t.GPSEnabled, t.Blade, t.Status)
	if err != nil {
		return fmt.Errorf("failed to insert timesheet entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get timesheet key: %w", err)
	}
	t.ID = id
	return nil
}

// UpdateTimesheet replaces the stored record keyed by UID. Updating an
// absent record is a no-op.
func (d *DataSource) UpdateTimesheet(ctx context.Context, t *models.TimesheetEntry) error {
	_, err := d.db.ExecContext(ctx,
		`UPDATE timesheet SET contractor = ?, equipment = ?, date = ?, hm_start = ?,
		 hm_end = ?, gps = ?, blade = ?, status = ? WHERE uid = ?`,
		t.Contractor, t.Equipment, t.Date, t.HourMeterStart, t.HourMeterEnd,
		t.GPSEnabled, t.Blade, t.Status, t.UID)
	if err != nil {
		return fmt.Errorf("failed to update timesheet entry %s: %w", t.UID, err)
	}
	return nil
}

// DeleteTimesheet removes the record keyed by UID. Deleting an absent
// record is a no-op.
func (d *DataSource) DeleteTimesheet(ctx context.Context, uid string) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM timesheet WHERE uid = ?`, uid)
	if err != nil {
		return fmt.Errorf("failed to delete timesheet entry %s: %w", uid, err)
	}
	return nil
}

// SearchTimesheets resolves the (term, status) pair per the search
// decision table: prefix match on contractor/equipment, equality on
// the operational status.
func (d *DataSource) SearchTimesheets(ctx context.Context, term string, status models.TimesheetStatus) ([]models.TimesheetEntry, error) {
	livequery.Touch(ctx, TableTimesheet)

	var (
		rows *sql.Rows
		err  error
	)
	switch {
	case term == "" && filterIsAll(string(status)):
		rows, err = d.db.QueryContext(ctx, `SELECT `+timesheetColumns+` FROM timesheet`)
	case term == "":
		rows, err = d.db.QueryContext(ctx,
			`SELECT `+timesheetColumns+` FROM timesheet WHERE status = ?`, status)
	case filterIsAll(string(status)):
		p := prefixPattern(term)
		rows, err = d.db.QueryContext(ctx,
			`SELECT `+timesheetColumns+` FROM timesheet WHERE contractor LIKE ? ESCAPE '\' OR equipment LIKE ? ESCAPE '\'`,
			p, p)
	default:
		p := prefixPattern(term)
		rows, err = d.db.QueryContext(ctx,
			`SELECT `+timesheetColumns+` FROM timesheet WHERE status = ? AND (contractor LIKE ? ESCAPE '\' OR equipment LIKE ? ESCAPE '\')`,
			status, p, p)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search timesheet entries: %w", err)
	}
	return d.collectTimesheets(rows)
}
