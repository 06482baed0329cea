package migration

import (
	"embed"

	"github.com/cyltest/api/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed scripts/*.json
var migrationFS embed.FS

// RunMongoMigration applies the index migrations for the audit trail and its
// collaborator collections. Already-applied migrations are a no-op.
func RunMongoMigration(cfg config.MongoDBConfig) error {
	src, err := iofs.New(migrationFS, "scripts")
	if err != nil {
		return errors.Wrap(err, "load migration scripts")
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.MigrateURI())
	if err != nil {
		return errors.Wrap(err, "create migrate instance")
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "apply migrations")
	}
	return nil
}
