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

const userColumns = `id, uid, name, email, role, picture`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.UID, &u.Name, &u.Email, &u.Role, &u.Picture); err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *DataSource) collectUsers(rows *sql.Rows) ([]models.User, error) {
	defer rows.Close()
	var result []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Users returns the full table contents.
func (d *DataSource) Users(ctx context.Context) ([]models.User, error) {
	livequery.Touch(ctx, TableUsers)
	rows, err := d.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	return d.collectUsers(rows)
}

// UserByUID returns the user with the given identifier, or (nil, nil)
// when absent.
func (d *DataSource) UserByUID(ctx context.Context, uid string) (*models.User, error) {
	livequery.Touch(ctx, TableUsers)
	row := d.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE uid = ?`, uid)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", uid, err)
	}
	return u, nil
}

// UserByEmail returns the first user with the given email, or
// (nil, nil) when absent. Email uniqueness is not enforced.
func (d *DataSource) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	livequery.Touch(ctx, TableUsers)
	row := d.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? LIMIT 1`, email)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// AddUser inserts u, assigning its UID (when empty) and storage key.
func (d *DataSource) AddUser(ctx context.Context, u *models.User) error {
	if u.UID == "" {
		u.UID = uuid.NewString()
	}
	res, err := d.db.ExecContext(ctx,
		`INSERT INTO users (uid, name, email, role, picture) VALUES (?, ?, ?, ?, ?)`,
		u.UID, u.Name, u.Email, u.Role, u.Picture)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get user key: %w", err)
	}
	u.ID = id
	return nil
}

// UpdateUser replaces the stored record keyed by UID. Updating an
// absent record is a no-op.
func (d *DataSource) UpdateUser(ctx context.Context, u *models.User) error {
	_, err := d.db.ExecContext(ctx,
		`UPDATE users SET name = ?, email = ?, role = ?, picture = ? WHERE uid = ?`,
		u.Name, u.Email, u.Role, u.Picture, u.UID)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", u.UID, err)
	}
	return nil
}

// DeleteUser removes the record keyed by UID. Deleting an absent record
// is a no-op.
func (d *DataSource) DeleteUser(ctx context.Context, uid string) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM users WHERE uid = ?`, uid)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", uid, err)
	}
	return nil
}

// SearchUsers resolves the (term, role) pair per the search decision
// table: prefix match on name/email, equality on role, models.FilterAll
// (or "") matching every role.
func (d *DataSource) SearchUsers(ctx context.Context, term, role string) ([]models.User, error) {
	livequery.Touch(ctx, TableUsers)

	var (
		rows *sql.Rows
		err  error
	)
	switch {
	case term == "" && filterIsAll(role):
		rows, err = d.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users`)
	case term == "":
		rows, err = d.db.QueryContext(ctx,
			`SELECT `+userColumns+` FROM users WHERE role = ?`, role)
	case filterIsAll(role):
		p := prefixPattern(term)
		rows, err = d.db.QueryContext(ctx,
			`SELECT `+userColumns+` FROM users WHERE name LIKE ? ESCAPE '\' OR email LIKE ? ESCAPE '\'`,
			p, p)
	default:
		p := prefixPattern(term)
		rows, err = d.db.QueryContext(ctx,
			`SELECT `+userColumns+` FROM users WHERE role = ? AND (name LIKE ? ESCAPE '\' OR email LIKE ? ESCAPE '\')`,
			role, p, p)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return d.collectUsers(rows)
}
