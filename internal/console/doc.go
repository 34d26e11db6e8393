// Package console is the interactive FleetDesk shell. It signs the
// operator in against the embedded store, gates every data command
// through the authorization engine, and exposes live watch sessions
// that re-print query results whenever the underlying tables change.
package console
