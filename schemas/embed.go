// Package schemas provides the embedded SQL schema migrations.
package schemas

import "embed"

// Migrations contains all SQL migration files, applied in filename order.
//
//go:embed migrations/*.sql
var Migrations embed.FS
