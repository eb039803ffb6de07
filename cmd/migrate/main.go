package main

import (
	"flag"
	"log/slog"
	"os"

	"atelier/config"
	logs "atelier/internal/infra/log"
	"atelier/internal/infra/persistence/migrations"
	"atelier/internal/infra/persistence/postgres"

	"github.com/golang-migrate/migrate/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	down := flag.Bool("down", false, "roll back every applied migration")
	flag.Parse()

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(func(params migrateParams) error {
			return run(params, *down)
		}),
	)
	if err := app.Err(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(params migrateParams, down bool) error {
	sqlDB, err := params.DB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from gorm")
	}

	m, err := migrations.NewMigrator(sqlDB)
	if err != nil {
		return err
	}

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to apply migrations")
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return errors.Wrap(verr, "failed to read schema version")
	}
	params.Logger.Info("Migrations applied",
		slog.Bool("down", down),
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)

	return nil
}
