package datasource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/fleetdesk/internal/livequery"
	"github.com/dmitrijs2005/fleetdesk/internal/models"
	"github.com/google/uuid"
)

const activityLogColumns = `id, uid, user, activity, details, timestamp`

func (d *DataSource) collectActivityLogs(rows *sql.Rows) ([]models.ActivityLog, error) {
	defer rows.Close()
	var result []models.ActivityLog
	for rows.Next() {
		var l models.ActivityLog
		if err := rows.Scan(&l.ID, &l.UID, &l.User, &l.Activity, &l.Details, &l.Timestamp); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ActivityLogs returns the full table contents.
func (d *DataSource) ActivityLogs(ctx context.Context) ([]models.ActivityLog, error) {
	livequery.Touch(ctx, TableActivityLogs)
	rows, err := d.db.QueryContext(ctx, `SELECT `+activityLogColumns+` FROM activity_logs`)
	if err != nil {
		return nil, fmt.Errorf("failed to select activity logs: %w", err)
	}
	return d.collectActivityLogs(rows)
}

// AddActivityLog inserts l, assigning its UID (when empty) and storage key.
func (d *DataSource) AddActivityLog(ctx context.Context, l *models.ActivityLog) error {
	if l.UID == "" {
		l.UID = uuid.NewString()
	}
	res, err := d.db.ExecContext(ctx,
		`INSERT INTO activity_logs (uid, user, activity, details, timestamp)
		 VALUES (?, ?, ?, ?, ?)`,
		l.UID, l.User, l.Activity, l.Details, l.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get activity log key: %w", err)
	}
	l.ID = id
	return nil
}

// SearchActivityLogs prefix-matches the acting user's name; an empty
// term returns all entries.
func (d *DataSource) SearchActivityLogs(ctx context.Context, term string) ([]models.ActivityLog, error) {
	livequery.Touch(ctx, TableActivityLogs)

	var (
		rows *sql.Rows
		err  error
	)
	if term == "" {
		rows, err = d.db.QueryContext(ctx, `SELECT `+activityLogColumns+` FROM activity_logs`)
	} else {
		rows, err = d.db.QueryContext(ctx,
			`SELECT `+activityLogColumns+` FROM activity_logs WHERE user LIKE ? ESCAPE '\'`,
			prefixPattern(term))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search activity logs: %w", err)
	}
	return d.collectActivityLogs(rows)
}
