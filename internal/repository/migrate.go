package repository

import (
	"database/sql"
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrations returns the schema migrations of the birthdays database.
func Migrations() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}
}

// Migrate applies all pending migrations, or rolls back all applied ones if up is false.
// It returns the number of migrations executed.
func Migrate(sqlDB *sql.DB, up bool) (int, error) {
	direction := migrate.Up
	if !up {
		direction = migrate.Down
	}
	n, err := migrate.Exec(sqlDB, "mysql", Migrations(), direction)
	if err != nil {
		return n, fmt.Errorf("failed to migrate database: %w", err)
	}
	return n, nil
}
