package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"marketplace/config"
	"marketplace/infras/postgres"
	"net/url"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const DefaultMigrationsPath = "migrations/postgres"

const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionDrop    = "drop"
	ActionStepUp  = "step-up"
	ActionVersion = "version"
	ActionForce   = "force"
)

var ErrUnknownAction = errors.New("unknown migration action")

// MigrateOptions tunes a migration run. Zero values mean one step for step-up
// and down, and the default migrations directory.
type MigrateOptions struct {
	Path    string
	Steps   int
	Version int
}

// DatabaseURL builds the migrate connection string for the write database.
func DatabaseURL(cfg *config.Config) string {
	write, _ := postgres.Targets(cfg)

	dsn := write.DSN()
	if table := cfg.DB.Postgres.MigrationTable; table != "" {
		separator := "?"
		if strings.Contains(dsn, "?") {
			separator = "&"
		}

		dsn += separator + url.Values{"x-migrations-table": {table}}.Encode()
	}

	return dsn
}

func open(cfg *config.Config, path string) (*migrate.Migrate, error) {
	if path == "" {
		path = DefaultMigrationsPath
	}

	mig, err := migrate.New("file://"+path, DatabaseURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Migrate runs a single migration action against the write database.
func Migrate(cfg *config.Config, action string, opts MigrateOptions) error {
	if !IsMigrateAction(action) {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	mig, err := open(cfg, opts.Path)
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrate instance")
		}
	}()

	steps := opts.Steps
	if steps <= 0 {
		steps = 1
	}

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionStepUp:
		err = mig.Steps(steps)
	case ActionDown:
		err = mig.Steps(-steps)
	case ActionDrop:
		err = mig.Down()
	case ActionForce:
		err = mig.Force(opts.Version)
	case ActionVersion:
		return logVersion(mig)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migration finished")

	return logVersion(mig)
}

func IsMigrateAction(action string) bool {
	switch action {
	case ActionUp, ActionDown, ActionDrop, ActionStepUp, ActionVersion, ActionForce:
		return true
	}

	return false
}

func logVersion(mig *migrate.Migrate) error {
	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info().Msg("Database has no migrations applied")

		return nil
	}

	if err != nil {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Database migration version")

	return nil
}
