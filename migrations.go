// Package productreader embeds the database migrations so the binary can
// apply them without shipping the SQL files.
package productreader

import "embed"

// Migrations holds the goose migrations under "migrations".
//
//go:embed migrations/*.sql
var Migrations embed.FS
