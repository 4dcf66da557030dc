package migrations

import "embed"

// FS embeds the SQL migrations that create the health_camps source table.
// golang-migrate reads them through the iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the Postgres source expects.
const Version = 1
