package models

import "strings"

// Permission is one atomic capability tag from a closed enumeration.
// Tags are flat: a broader scope never implies a narrower one, and
// Read never implies Write (or vice versa). Guards that accept either
// must list both.
type Permission string

const (
	PermTimesheetInGroupRead                Permission = "Timesheet_InGroup_Read"
	PermTimesheetInGroupWrite               Permission = "Timesheet_InGroup_Write"
	PermTimesheetInGroupInManagementRead    Permission = "Timesheet_InGroup_InManagement_Read"
	PermTimesheetInGroupInManagementWrite   Permission = "Timesheet_InGroup_InManagement_Write"
	PermMaintenanceRead                     Permission = "Maintenance_Request_Read"
	PermMaintenanceWrite                    Permission = "Maintenance_Request_Write"
	PermMaintenanceInGroupRead              Permission = "Maintenance_Request_InGroup_Read"
	PermMaintenanceInGroupWrite             Permission = "Maintenance_Request_InGroup_Write"
	PermMaintenanceInGroupInManagementRead  Permission = "Maintenance_Request_InGroup_InManagement_Read"
	PermMaintenanceInGroupInManagementWrite Permission = "Maintenance_Request_InGroup_InManagement_Write"
	PermEquipmentsRead                      Permission = "Equipments_Management_Read"
	PermEquipmentsWrite                     Permission = "Equipments_Management_Write"
	PermEquipmentsInGroupRead               Permission = "Equipments_Management_InGroup_Read"
	PermEquipmentsInGroupWrite              Permission = "Equipments_Management_InGroup_Write"
	PermEquipmentsInGroupInManagementRead   Permission = "Equipments_Management_InGroup_InManagement_Read"
	PermEquipmentsInGroupInManagementWrite  Permission = "Equipments_Management_InGroup_InManagement_Write"
	PermRolesRead                           Permission = "Roles_Management_Read"
	PermRolesWrite                          Permission = "Roles_Management_Write"
	PermRolesInGroupRead                    Permission = "Roles_Management_InGroup_Read"
	PermRolesInGroupWrite                   Permission = "Roles_Management_InGroup_Write"
	PermRolesInGroupInManagementRead        Permission = "Roles_Management_InGroup_InManagement_Read"
	PermRolesInGroupInManagementWrite       Permission = "Roles_Management_InGroup_InManagement_Write"
	PermUsersRead                           Permission = "Users_Management_Read"
	PermUsersWrite                          Permission = "Users_Management_Write"
	PermUsersInGroupRead                    Permission = "Users_Management_InGroup_Read"
	PermUsersInGroupWrite                   Permission = "Users_Management_InGroup_Write"
	PermUsersInGroupInManagementRead        Permission = "Users_Management_InGroup_InManagement_Read"
	PermUsersInGroupInManagementWrite       Permission = "Users_Management_InGroup_InManagement_Write"
	PermGroupsRead                          Permission = "Groups_Management_Read"
	PermGroupsWrite                         Permission = "Groups_Management_Write"
	PermLogsRead                            Permission = "Logs_Management_Read"
	PermReportRead                          Permission = "Report_Management_Read"
	PermSettingsWrite                       Permission = "Settings_Management_Write"
	PermMyProfileRead                       Permission = "My_Profile_Read"
	PermMyProfileWrite                      Permission = "My_Profile_Write"
)

// allPermissions is the closed enumeration. Keep in sync with the
// constants above; IsValid and AllPermissions derive from it.
var allPermissions = []Permission{
	PermTimesheetInGroupRead,
	PermTimesheetInGroupWrite,
	PermTimesheetInGroupInManagementRead,
	PermTimesheetInGroupInManagementWrite,
	PermMaintenanceRead,
	PermMaintenanceWrite,
	PermMaintenanceInGroupRead,
	PermMaintenanceInGroupWrite,
	PermMaintenanceInGroupInManagementRead,
	PermMaintenanceInGroupInManagementWrite,
	PermEquipmentsRead,
	PermEquipmentsWrite,
	PermEquipmentsInGroupRead,
	PermEquipmentsInGroupWrite,
	PermEquipmentsInGroupInManagementRead,
	PermEquipmentsInGroupInManagementWrite,
	PermRolesRead,
	PermRolesWrite,
	PermRolesInGroupRead,
	PermRolesInGroupWrite,
	PermRolesInGroupInManagementRead,
	PermRolesInGroupInManagementWrite,
	PermUsersRead,
	PermUsersWrite,
	PermUsersInGroupRead,
	PermUsersInGroupWrite,
	PermUsersInGroupInManagementRead,
	PermUsersInGroupInManagementWrite,
	PermGroupsRead,
	PermGroupsWrite,
	PermLogsRead,
	PermReportRead,
	PermSettingsWrite,
	PermMyProfileRead,
	PermMyProfileWrite,
}

// AllPermissions returns the full enumeration in declaration order.
// The returned slice is a copy.
func AllPermissions() []Permission {
	out := make([]Permission, len(allPermissions))
	copy(out, allPermissions)
	return out
}

// IsValid reports whether p is a member of the closed enumeration.
func (p Permission) IsValid() bool {
	for _, known := range allPermissions {
		if p == known {
			return true
		}
	}
	return false
}

// Label returns a human-readable form of the tag ("My_Profile_Read" becomes
// "My Profile Read").
func (p Permission) Label() string {
	return strings.ReplaceAll(string(p), "_", " ")
}

// PermissionSet is an unordered set of permissions. The zero value is
// the empty set, which grants nothing.
type PermissionSet []Permission

// Contains reports whether the set holds p.
func (s PermissionSet) Contains(p Permission) bool {
	for _, member := range s {
		if member == p {
			return true
		}
	}
	return false
}

// ContainsAny reports whether the set holds at least one of the given
// permissions (OR semantics). An empty argument list yields false.
func (s PermissionSet) ContainsAny(required ...Permission) bool {
	for _, p := range required {
		if s.Contains(p) {
			return true
		}
	}
	return false
}

// Normalized returns a copy with duplicates removed, preserving the
// first occurrence order. Membership is unordered; normalization only
// keeps stored sets tidy.
func (s PermissionSet) Normalized() PermissionSet {
	seen := make(map[Permission]struct{}, len(s))
	out := make(PermissionSet, 0, len(s))
	for _, p := range s {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
