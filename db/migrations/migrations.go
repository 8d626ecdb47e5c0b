package migrations

import "embed"

// FS embeds the SQL migration files in this directory for the iofs source
// driver of golang-migrate.
//
//go:embed *.sql
var FS embed.FS

const Version = 1
