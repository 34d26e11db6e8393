package console

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fleetdesk/internal/models"
)

// view binds one data screen to the permission tags that open it, any
// one of which suffices.
type view struct {
	perms  []models.Permission
	search func(ctx context.Context, term, filter string) ([]string, error)
}

// views maps the entity argument of list/search/watch commands to its
// guarded query. The permission lists mirror the dashboard's protected
// routes.
func (a *App) views() map[string]view {
	return map[string]view{
		"users": {
			perms: []models.Permission{
				models.PermUsersRead, models.PermUsersWrite,
				models.PermUsersInGroupRead, models.PermUsersInGroupWrite,
				models.PermUsersInGroupInManagementRead, models.PermUsersInGroupInManagementWrite,
			},
			search: func(ctx context.Context, term, filter string) ([]string, error) {
				list, err := a.users.Search(ctx, term, filter)
				if err != nil {
					return nil, err
				}
				out := make([]string, 0, len(list))
				for _, u := range list {
					out = append(out, fmt.Sprintf("%-24s %-28s %s", u.Name, u.Email, u.Role))
				}
				return out, nil
			},
		},
		"roles": {
			perms: []models.Permission{
				models.PermRolesRead, models.PermRolesWrite,
				models.PermRolesInGroupRead, models.PermRolesInGroupWrite,
				models.PermRolesInGroupInManagementRead, models.PermRolesInGroupInManagementWrite,
			},
			search: func(ctx context.Context, term, _ string) ([]string, error) {
				list, err := a.roles.Search(ctx, term)
				if err != nil {
					return nil, err
				}
				out := make([]string, 0, len(list))
				for _, r := range list {
					out = append(out, fmt.Sprintf("%-16s %d permissions", r.Name, len(r.Permissions)))
				}
				return out, nil
			},
		},
		"equipments": {
			perms: []models.Permission{
				models.PermEquipmentsRead, models.PermEquipmentsWrite,
				models.PermEquipmentsInGroupRead, models.PermEquipmentsInGroupWrite,
				models.PermEquipmentsInGroupInManagementRead, models.PermEquipmentsInGroupInManagementWrite,
			},
			search: func(ctx context.Context, term, filter string) ([]string, error) {
				list, err := a.equipments.Search(ctx, term, models.EquipmentStatus(filter))
				if err != nil {
					return nil, err
				}
				out := make([]string, 0, len(list))
				for _, e := range list {
					out = append(out, fmt.Sprintf("%-16s %-18s %-18s %s", e.Name, e.Type, e.Status, e.Operator))
				}
				return out, nil
			},
		},
		"maintenance": {
			perms: []models.Permission{
				models.PermMaintenanceRead, models.PermMaintenanceWrite,
				models.PermMaintenanceInGroupRead, models.PermMaintenanceInGroupWrite,
				models.PermMaintenanceInGroupInManagementRead, models.PermMaintenanceInGroupInManagementWrite,
			},
			search: func(ctx context.Context, term, filter string) ([]string, error) {
				list, err := a.maintenance.Search(ctx, term, models.MaintenanceStatus(filter))
				if err != nil {
					return nil, err
				}
				out := make([]string, 0, len(list))
				for _, m := range list {
					out = append(out, fmt.Sprintf("%-12s %-16s %-24s %-8s %s", m.Date, m.Machine, m.Issue, m.Priority, m.Status))
				}
				return out, nil
			},
		},
		"timesheet": {
			perms: []models.Permission{
				models.PermTimesheetInGroupRead, models.PermTimesheetInGroupWrite,
				models.PermTimesheetInGroupInManagementRead, models.PermTimesheetInGroupInManagementWrite,
			},
			search: func(ctx context.Context, term, filter string) ([]string, error) {
				list, err := a.timesheets.Search(ctx, term, models.TimesheetStatus(filter))
				if err != nil {
					return nil, err
				}
				out := make([]string, 0, len(list))
				for _, e := range list {
					out = append(out, fmt.Sprintf("%-20s %-16s %-12s %7.1f %7.1f %s",
						e.Contractor, e.Equipment, e.Date, e.HourMeterStart, e.HourMeterEnd, e.Status))
				}
				return out, nil
			},
		},
		"vendors": {
			perms: []models.Permission{
				models.PermGroupsRead, models.PermGroupsWrite,
			},
			search: func(ctx context.Context, term, filter string) ([]string, error) {
				list, err := a.vendors.Search(ctx, term, models.VendorStatus(filter))
				if err != nil {
					return nil, err
				}
				out := make([]string, 0, len(list))
				for _, v := range list {
					out = append(out, fmt.Sprintf("%-24s %-18s %s", v.Name, v.Category, v.Status))
				}
				return out, nil
			},
		},
		"logs": {
			perms: []models.Permission{models.PermLogsRead},
			search: func(ctx context.Context, term, _ string) ([]string, error) {
				list, err := a.logs.Search(ctx, term)
				if err != nil {
					return nil, err
				}
				out := make([]string, 0, len(list))
				for _, l := range list {
					out = append(out, fmt.Sprintf("%-22s %-16s %-14s %s", l.Timestamp, l.User, l.Activity, l.Details))
				}
				return out, nil
			},
		},
	}
}

// Show runs one guarded query and prints its rows.
func (a *App) Show(ctx context.Context, entity, term, filter string) error {
	v, ok := a.views()[entity]
	if !ok {
		fmt.Println("Unknown entity:", entity)
		return nil
	}
	if !a.authorize(ctx, v.perms...) {
		return nil
	}
	if filter == "" {
		filter = models.FilterAll
	}

	rows, err := v.search(ctx, term, filter)
	if err != nil {
		a.log.Error(ctx, "query failed", "entity", entity, "err", err)
		fmt.Println("Query failed:", err)
		return err
	}
	printRows(rows)
	return nil
}

func printRows(rows []string) {
	if len(rows) == 0 {
		fmt.Println("(no records)")
		return
	}
	for _, r := range rows {
		fmt.Println(r)
	}
	fmt.Printf("%d record(s)\n", len(rows))
}
