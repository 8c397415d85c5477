// Package migrations embeds the SQL migration files so they can be compiled
// into the binary and applied with golang-migrate's iofs source.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
