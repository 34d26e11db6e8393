// Package models defines the entity shapes persisted in the local
// FleetDesk database: users, roles, equipment, maintenance requests,
// timesheet entries, vendors and activity logs, together with the
// closed permission enumeration used by the authorization engine.
package models
