// Package migrations embeds the PostgreSQL schema of the remote sink.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
