package migrations

import "embed"

// FS contiene las migraciones SQLite de los snapshots de partida.
//
//go:embed *.sql
var FS embed.FS
