// Package migrations embeds the SQL migration files applied by goose.
// Upgrades are additive only: later versions may add tables, columns
// and indexes, never remove or rename what an earlier version wrote.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
