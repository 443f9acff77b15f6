// Package migrations embeds the SQLite schema migrations.
package migrations

import "embed"

// FS holds the migration SQL files.
//
//go:embed *.sql
var FS embed.FS
