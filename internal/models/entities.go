package models

// FilterAll is the wildcard value accepted by every Search filter
// argument. It matches all rows regardless of the filterable field.
const FilterAll = "all"

// EquipmentStatus is the operational state of a machine.
type EquipmentStatus string

const (
	EquipmentStatusNormal EquipmentStatus = "Normal"
	EquipmentStatusUnder  EquipmentStatus = "Under Maintenance"
	EquipmentStatusNeed   EquipmentStatus = "Need Maintenance"
)

// Priority ranks a maintenance request.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// MaintenanceStatus is the workflow state of a maintenance request.
type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "Pending"
	MaintenanceStatusApproved   MaintenanceStatus = "Approved"
	MaintenanceStatusInProgress MaintenanceStatus = "In Progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "Completed"
)

// TimesheetStatus is the operational state recorded for a timesheet entry.
type TimesheetStatus string

const (
	TimesheetStatusWorking TimesheetStatus = "Working"
	TimesheetStatusMoving  TimesheetStatus = "Moving"
	TimesheetStatusIdle    TimesheetStatus = "Idle"
	TimesheetStatusStop    TimesheetStatus = "Stop"
)

// VendorStatus marks a vendor/group as usable or retired.
type VendorStatus string

const (
	VendorStatusActive   VendorStatus = "Active"
	VendorStatusInactive VendorStatus = "Inactive"
)

// User is a person with access to the dashboard. Role references a Role
// record by name; email uniqueness is not enforced by the model.
type User struct {
	// ID is the numeric storage key assigned by the store on creation.
	ID int64
	// UID is a globally unique opaque identifier.
	UID     string
	Name    string
	Email   string
	Role    string
	Picture string
}

// Role is a named bundle of permissions. Name is one of the built-in
// role names (admin, manager, contractor, operator) or a custom name.
type Role struct {
	ID          int64
	UID         string
	Name        string
	Permissions PermissionSet
}

// Equipment is a tracked machine. Operator references a user by display
// name, not by key; dangling references are tolerated.
type Equipment struct {
	ID              int64
	UID             string
	Name            string
	Type            string
	Status          EquipmentStatus
	Operator        string
	LastMaintenance string
	Duration        string
}

// MaintenanceRequest is a reported machine issue. Machine references an
// Equipment record by name, not by key.
type MaintenanceRequest struct {
	ID          int64
	UID         string
	Date        string
	Machine     string
	Issue       string
	Description string
	Priority    Priority
	Status      MaintenanceStatus
}

// TimesheetEntry records one shift of machine operation.
type TimesheetEntry struct {
	ID         int64
	UID        string
	Contractor string
	Equipment  string
	Date       string
	// HourMeterStart and HourMeterEnd are machine hour-meter readings.
	HourMeterStart float64
	HourMeterEnd   float64
	GPSEnabled     bool
	Blade          string
	Status         TimesheetStatus
}

// Vendor is an external vendor or group.
type Vendor struct {
	ID       int64
	UID      string
	Name     string
	Category string
	Status   VendorStatus
}

// ActivityLog is an audit trail entry written on notable user actions.
type ActivityLog struct {
	ID        int64
	UID       string
	User      string
	Activity  string
	Details   string
	Timestamp string
}
