package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"

	migrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pkg/errors"
	"github.com/twitsprout/tools"
	"github.com/twitsprout/tools/zap"
)

var (
	db      = flag.String("database", "photo_catalog", "database name")
	host    = flag.String("host", "localhost:5432", "database host and port")
	user    = flag.String("user", "postgres", "database user")
	pass    = flag.String("password", "", "database password")
	sslMode = flag.String("sslmode", "disable", "postgres sslmode")
	source  = flag.String("source", "file://db/migrations", "migrations source url")
	down    = flag.Bool("down", false, "roll back every migration instead of applying them")
	steps   = flag.Int("steps", 0, "apply (or roll back, when negative) only this many migrations")
)

func main() {
	flag.Parse()
	logger := zap.New("photo-catalog-migrate", "", os.Stderr)

	if err := run(logger); err != nil {
		logger.Error("migration failed", "details", err.Error())
		os.Exit(1)
	}
}

func run(logger tools.Logger) error {
	dsn := fmt.Sprintf("postgres://%s@%s/%s?sslmode=%s",
		url.UserPassword(*user, *pass).String(), *host, *db, url.QueryEscape(*sslMode))
	m, err := migrate.New(*source, dsn)
	if err != nil {
		return errors.Wrapf(err, "open migrations %s", *source)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Warn("unable to close migrations", "source_error", srcErr, "database_error", dbErr)
		}
	}()

	switch {
	case *steps != 0:
		err = m.Steps(*steps)
	case *down:
		err = m.Down()
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "apply migrations")
	}

	ver, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errors.Wrap(err, "read schema version")
	}
	logger.Info("migrations applied", "version", ver, "dirty", dirty)
	return nil
}
