package datasource

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fleetdesk/internal/livequery"
	"github.com/dmitrijs2005/fleetdesk/internal/models"
	_ "modernc.org/sqlite"
)

const testSchema = `
CREATE TABLE users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    uid TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    role TEXT NOT NULL DEFAULT '',
    picture TEXT NOT NULL DEFAULT ''
);
CREATE TABLE roles (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    uid TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL DEFAULT '',
    permissions TEXT NOT NULL DEFAULT '[]'
);
CREATE TABLE vendors (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    uid TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT ''
);
CREATE TABLE equipments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    uid TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL DEFAULT '',
    type TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT '',
    operator TEXT NOT NULL DEFAULT '',
    last_maintenance TEXT NOT NULL DEFAULT '',
    duration TEXT NOT NULL DEFAULT ''
);
CREATE TABLE maintenance (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    uid TEXT NOT NULL UNIQUE,
    date TEXT NOT NULL DEFAULT '',
    machine TEXT NOT NULL DEFAULT '',
    issue TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    priority TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT ''
);
CREATE TABLE timesheet (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    uid TEXT NOT NULL UNIQUE,
    contractor TEXT NOT NULL DEFAULT '',
    equipment TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL DEFAULT '',
    hm_start REAL NOT NULL DEFAULT 0,
    hm_end REAL NOT NULL DEFAULT 0,
    gps INTEGER NOT NULL DEFAULT 0,
    blade TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT ''
);
CREATE TABLE activity_logs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    uid TEXT NOT NULL UNIQUE,
    user TEXT NOT NULL DEFAULT '',
    activity TEXT NOT NULL DEFAULT '',
    details TEXT NOT NULL DEFAULT '',
    timestamp TEXT NOT NULL DEFAULT ''
);`

func setupDS(t *testing.T) *DataSource {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)
	return New(db)
}

func TestSearch_EscapesLikeMetacharacters(t *testing.T) {
	ds := setupDS(t)
	ctx := context.Background()

	require.NoError(t, ds.AddUser(ctx, &models.User{Name: "100% Joe"}))
	require.NoError(t, ds.AddUser(ctx, &models.User{Name: "100x Joe"}))
	require.NoError(t, ds.AddUser(ctx, &models.User{Name: "a_b"}))
	require.NoError(t, ds.AddUser(ctx, &models.User{Name: "axb"}))

	got, err := ds.SearchUsers(ctx, "100%", models.FilterAll)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "100% Joe", got[0].Name)

	got, err = ds.SearchUsers(ctx, "a_", models.FilterAll)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a_b", got[0].Name)
}

func TestReads_RecordDependenciesUnderCapture(t *testing.T) {
	ds := setupDS(t)

	ctx, captured := livequery.WithCapture(context.Background())

	_, err := ds.SearchUsers(ctx, "", models.FilterAll)
	require.NoError(t, err)
	_, err = ds.RoleByName(ctx, "admin")
	require.NoError(t, err)

	tables := captured.Tables()
	assert.Contains(t, tables, TableUsers)
	assert.Contains(t, tables, TableRoles)
	assert.NotContains(t, tables, TableEquipments)
}
