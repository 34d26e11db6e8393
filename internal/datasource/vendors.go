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

const vendorColumns = `id, uid, name, category, status`

func scanVendor(row interface{ Scan(...any) error }) (*models.Vendor, error) {
	var v models.Vendor
	if err := row.Scan(&v.ID, &v.UID, &v.Name, &v.Category, &v.Status); err != nil {
		return nil, err
	}
	return &v, nil
}

func (d *DataSource) collectVendors(rows *sql.Rows) ([]models.Vendor, error) {
	defer rows.Close()
	var result []models.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Vendors returns the full table contents.
func (d *DataSource) Vendors(ctx context.Context) ([]models.Vendor, error) {
	livequery.Touch(ctx, TableVendors)
	rows, err := d.db.QueryContext(ctx, `SELECT `+vendorColumns+` FROM vendors`)
	if err != nil {
		return nil, fmt.Errorf("failed to select vendors: %w", err)
	}
	return d.collectVendors(rows)
}

// VendorByUID returns the vendor with the given identifier, or
// (nil, nil) when absent.
func (d *DataSource) VendorByUID(ctx context.Context, uid string) (*models.Vendor, error) {
	livequery.Touch(ctx, TableVendors)
	row := d.db.QueryRowContext(ctx,
		`SELECT `+vendorColumns+` FROM vendors WHERE uid = ?`, uid)
	v, err := scanVendor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor %s: %w", uid, err)
	}
	return v, nil
}

// AddVendor inserts v, assigning its UID (when empty) and storage key.
func (d *DataSource) AddVendor(ctx context.Context, v *models.Vendor) error {
	if v.UID == "" {
		v.UID = uuid.NewString()
	}
	res, err := d.db.ExecContext(ctx,
		`INSERT INTO vendors (uid, name, category, status) VALUES (?, ?, ?, ?)`,
		v.UID, v.Name, v.Category, v.Status)
	if err != nil {
		return fmt.Errorf("failed to insert vendor: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get vendor key: %w", err)
	}
	v.ID = id
	return nil
}

// UpdateVendor replaces the stored record keyed by UID. Updating an
// absent record is a no-op.
func (d *DataSource) UpdateVendor(ctx context.Context, v *models.Vendor) error {
	_, err := d.db.ExecContext(ctx,
		`UPDATE vendors SET name = ?, category = ?, status = ? WHERE uid = ?`,
		v.Name, v.Category, v.Status, v.UID)
	if err != nil {
		return fmt.Errorf("failed to update vendor %s: %w", v.UID, err)
	}
	return nil
}

// DeleteVendor removes the record keyed by UID. Deleting an absent
// record is a no-op.
func (d *DataSource) DeleteVendor(ctx context.Context, uid string) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM vendors WHERE uid = ?`, uid)
	if err != nil {
		return fmt.Errorf("failed to delete vendor %s: %w", uid, err)
	}
	return nil
}

// SearchVendors resolves the (term, status) pair per the search
// decision table: prefix match on name/category, equality on status.
func (d *DataSource) SearchVendors(ctx context.Context, term string, status models.VendorStatus) ([]models.Vendor, error) {
	livequery.Touch(ctx, TableVendors)

	var (
		rows *sql.Rows
		err  error
	)
	switch {
	case term == "" && filterIsAll(string(status)):
		rows, err = d.db.QueryContext(ctx, `SELECT `+vendorColumns+` FROM vendors`)
	case term == "":
		rows, err = d.db.QueryContext(ctx,
			`SELECT `+vendorColumns+` FROM vendors WHERE status = ?`, status)
	case filterIsAll(string(status)):
		p := prefixPattern(term)
		rows, err = d.db.QueryContext(ctx,
			`SELECT `+vendorColumns+` FROM vendors WHERE name LIKE ? ESCAPE '\' OR category LIKE ? ESCAPE '\'`,
			p, p)
	default:
		p := prefixPattern(term)
		rows, err = d.db.QueryContext(ctx,
			`SELECT `+vendorColumns+` FROM vendors WHERE status = ? AND (name LIKE ? ESCAPE '\' OR category LIKE ? ESCAPE '\')`,
			status, p, p)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search vendors: %w", err)
	}
	return d.collectVendors(rows)
}
