package datasource

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fleetdesk/internal/livequery"
	"github.com/dmitrijs2005/fleetdesk/internal/models"
	"github.com/google/uuid"
)

// Permission sets persist as a JSON array of tags in the roles table.

func encodePermissions(s models.PermissionSet) (string, error) {
	b, err := json.Marshal(s.Normalized())
	if err != nil {
		return "", fmt.Errorf("failed to encode permissions: %w", err)
	}
	return string(b), nil
}

func scanRole(row interface{ Scan(...any) error }) (*models.Role, error) {
	var (
		r   models.Role
		raw string
	)
	if err := row.Scan(&r.ID, &r.UID, &r.Name, &raw); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(raw), &r.Permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions for role %s: %w", r.Name, err)
	}
	return &r, nil
}

func (d *DataSource) collectRoles(rows *sql.Rows) ([]models.Role, error) {
	defer rows.Close()
	var result []models.Role
	for rows.Next() {
		r, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Roles returns the full table contents.
func (d *DataSource) Roles(ctx context.Context) ([]models.Role, error) {
	livequery.Touch(ctx, TableRoles)
	rows, err := d.db.QueryContext(ctx, `SELECT id, uid, name, permissions FROM roles`)
	if err != nil {
		return nil, fmt.Errorf("failed to select roles: %w", err)
	}
	return d.collectRoles(rows)
}

// RoleByUID returns the role with the given identifier, or (nil, nil)
// when absent.
func (d *DataSource) RoleByUID(ctx context.Context, uid string) (*models.Role, error) {
	livequery.Touch(ctx, TableRoles)
	row := d.db.QueryRowContext(ctx,
		`SELECT id, uid, name, permissions FROM roles WHERE uid = ?`, uid)
	r, err := scanRole(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get role %s: %w", uid, err)
	}
	return r, nil
}

// RoleByName returns the first role with the given name, or (nil, nil)
// when absent. Every protected-route check funnels through here.
func (d *DataSource) RoleByName(ctx context.Context, name string) (*models.Role, error) {
	livequery.Touch(ctx, TableRoles)
	row := d.db.QueryRowContext(ctx,
		`SELECT id, uid, name, permissions FROM roles WHERE name = ? LIMIT 1`, name)
	r, err := scanRole(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get role by name %s: %w", name, err)
	}
	return r, nil
}

// AddRole inserts r, assigning its UID (when empty) and storage key.
// The stored permission set is de-duplicated.
func (d *DataSource) AddRole(ctx context.Context, r *models.Role) error {
	if r.UID == "" {
		r.UID = uuid.NewString()
	}
	perms, err := encodePermissions(r.Permissions)
	if err != nil {
		return err
	}
	res, err := d.db.ExecContext(ctx,
		`INSERT INTO roles (uid, name, permissions) VALUES (?, ?, ?)`,
		r.UID, r.Name, perms)
	if err != nil {
		return fmt.Errorf("failed to insert role: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get role key: %w", err)
	}
	r.ID = id
	return nil
}

// UpdateRole replaces the stored record keyed by UID. Updating an
// absent record is a no-op.
func (d *DataSource) UpdateRole(ctx context.Context, r *models.Role) error {
	perms, err := encodePermissions(r.Permissions)
	if err != nil {
		return err
	}
	_, err = d.db.ExecContext(ctx,
		`UPDATE roles SET name = ?, permissions = ? WHERE uid = ?`,
		r.Name, perms, r.UID)
	if err != nil {
		return fmt.Errorf("failed to update role %s: %w", r.UID, err)
	}
	return nil
}

// DeleteRole removes the record keyed by UID. Deleting an absent record
// is a no-op.
func (d *DataSource) DeleteRole(ctx context.Context, uid string) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM roles WHERE uid = ?`, uid)
	if err != nil {
		return fmt.Errorf("failed to delete role %s: %w", uid, err)
	}
	return nil
}

// SearchRoles prefix-matches role names; an empty term returns all.
func (d *DataSource) SearchRoles(ctx context.Context, term string) ([]models.Role, error) {
	livequery.Touch(ctx, TableRoles)

	var (
		rows *sql.Rows
		err  error
	)
	if term == "" {
		rows, err = d.db.QueryContext(ctx, `SELECT id, uid, name, permissions FROM roles`)
	} else {
		rows, err = d.db.QueryContext(ctx,
			`SELECT id, uid, name, permissions FROM roles WHERE name LIKE ? ESCAPE '\'`,
			prefixPattern(term))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search roles: %w", err)
	}
	return d.collectRoles(rows)
}
