package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/fleetdesk/internal/datasource"
	"github.com/dmitrijs2005/fleetdesk/internal/dbx"
	"github.com/dmitrijs2005/fleetdesk/internal/models"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/credentials"
	"golang.org/x/crypto/bcrypt"
)

// DefaultAdminEmail and DefaultAdminPassword form the built-in
// credential a fresh installation signs in with.
const (
	DefaultAdminEmail    = "admin@email.com"
	DefaultAdminPassword = "admin"
)

// Seed populates an empty database with the built-in roles, the default
// admin account and a starter set of equipment. It is idempotent: each
// section is skipped when its table already holds rows, so re-opening
// an existing database changes nothing. All writes run in one
// transaction.
func Seed(ctx context.Context, db *sql.DB) error {
	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		ds := datasource.New(tx)

		if err := seedRoles(ctx, ds); err != nil {
			return err
		}
		if err := seedAdmin(ctx, ds, tx); err != nil {
			return err
		}
		return seedEquipment(ctx, ds)
	})
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	return nil
}

func seedRoles(ctx context.Context, ds *datasource.DataSource) error {
	existing, err := ds.Roles(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	roles := []models.Role{
		{Name: "admin", Permissions: models.PermissionSet{
			models.PermMaintenanceRead,
			models.PermMaintenanceWrite,
			models.PermEquipmentsRead,
			models.PermEquipmentsWrite,
			models.PermGroupsRead,
			models.PermGroupsWrite,
			models.PermRolesRead,
			models.PermRolesWrite,
			models.PermUsersRead,
			models.PermUsersWrite,
			models.PermLogsRead,
			models.PermReportRead,
			models.PermSettingsWrite,
		}},
		{Name: "manager", Permissions: models.PermissionSet{
			models.PermTimesheetInGroupRead,
			models.PermTimesheetInGroupWrite,
			models.PermMaintenanceInGroupRead,
			models.PermMaintenanceInGroupWrite,
			models.PermEquipmentsInGroupRead,
			models.PermEquipmentsInGroupWrite,
			models.PermRolesInGroupRead,
			models.PermRolesInGroupWrite,
			models.PermUsersInGroupRead,
			models.PermUsersInGroupWrite,
			models.PermReportRead,
		}},
		{Name: "contractor", Permissions: models.PermissionSet{
			models.PermTimesheetInGroupInManagementRead,
			models.PermTimesheetInGroupInManagementWrite,
			models.PermMaintenanceInGroupInManagementRead,
			models.PermMaintenanceInGroupInManagementWrite,
			models.PermEquipmentsInGroupInManagementRead,
			models.PermEquipmentsInGroupInManagementWrite,
			models.PermRolesInGroupInManagementRead,
			models.PermRolesInGroupInManagementWrite,
			models.PermUsersInGroupInManagementRead,
			models.PermUsersInGroupInManagementWrite,
		}},
		{Name: "operator", Permissions: models.PermissionSet{
			models.PermMyProfileRead,
			models.PermMyProfileWrite,
		}},
	}

	for i := range roles {
		if err := ds.AddRole(ctx, &roles[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, ds *datasource.DataSource, tx dbx.DBTX) error {
	existing, err := ds.Users(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		admin := models.User{Name: "Admin", Email: DefaultAdminEmail, Role: "admin"}
		if err := ds.AddUser(ctx, &admin); err != nil {
			return err
		}
	}

	creds := credentials.NewSQLiteRepository(tx)
	hash, err := creds.GetHash(ctx, DefaultAdminEmail)
	if err != nil {
		return err
	}
	if hash != nil {
		return nil
	}
	hash, err = bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return creds.Set(ctx, DefaultAdminEmail, hash)
}

func seedEquipment(ctx context.Context, ds *datasource.DataSource) error {
	existing, err := ds.Equipments(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	starter := []models.Equipment{
		{Name: "Grader A", Type: "Heavy Machinery", Status: models.EquipmentStatusNormal,
			Operator: "John Doe", LastMaintenance: "2024-06-15"},
		{Name: "Grader B", Type: "Conveyor System", Status: models.EquipmentStatusUnder,
			Operator: "Jane Smith", LastMaintenance: "2024-07-01"},
		{Name: "Excavator", Type: "Automation", Status: models.EquipmentStatusNeed,
			Operator: "Mike Johnson", LastMaintenance: "2024-06-30"},
	}

	for i := range starter {
		if err := ds.AddEquipment(ctx, &starter[i]); err != nil {
			return err
		}
	}
	return nil
}
