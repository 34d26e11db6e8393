// Package datasource is the only component that issues queries against
// the embedded store. It translates semantic requests, in particular
// the (free-text term, structured filter) search pairs, into indexed
// SQL, one method group per entity kind. Matching is case-insensitive
// prefix matching, never substring or fuzzy.
//
// Every read records the table it touched into the live-query capture
// context, so observed queries know their read set.
package datasource

import (
	"strings"

	"github.com/dmitrijs2005/fleetdesk/internal/dbx"
	"github.com/dmitrijs2005/fleetdesk/internal/models"
)

// Table names, shared with the repositories that publish change events.
const (
	TableUsers        = "users"
	TableRoles        = "roles"
	TableVendors      = "vendors"
	TableEquipments   = "equipments"
	TableMaintenance  = "maintenance"
	TableTimesheet    = "timesheet"
	TableActivityLogs = "activity_logs"
)

// DataSource issues all entity queries. Construct with New, passing the
// store's connection.
type DataSource struct {
	db dbx.DBTX
}

// New returns a DataSource bound to the given connection.
func New(db dbx.DBTX) *DataSource {
	return &DataSource{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// prefixPattern builds the LIKE pattern for a case-insensitive
// starts-with match on term. SQLite's LIKE folds ASCII case by default.
func prefixPattern(term string) string {
	return likeEscaper.Replace(term) + "%"
}

// filterIsAll reports whether the structured filter selects all rows.
func filterIsAll(filter string) bool {
	return filter == "" || filter == models.FilterAll
}
