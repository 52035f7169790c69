package persistent

import "embed"

// Migrations holds the schema of the relational store.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const MigrationsDir = "migrations"
