// Package migrations embeds the SQL migration files goose runs at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
