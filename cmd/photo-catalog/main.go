package main

import (
	"context"
	"log"
	"os"
	"syscall"
	"time"

	"cloud.google.com/go/compute/metadata"
	"github.com/kelseyhightower/envconfig"
	"github.com/twitsprout/tools"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/lifecycle"
	pgutils "github.com/twitsprout/tools/postgres"
	"github.com/twitsprout/tools/zap"

	"photo-catalog/internal/http"
	"photo-catalog/internal/postgres"
)

var version string

type variables struct {
	Addr            string        `required:"true" envconfig:"addr"`
	PostgresHost    string        `required:"true" envconfig:"postgres_host"`
	PostgresPort    int           `required:"false" envconfig:"postgres_port"`
	PostgresDB      string        `required:"true" envconfig:"postgres_db"`
	PostgresUser    string        `required:"true" envconfig:"postgres_user"`
	PostgresPass    string        `required:"true" envconfig:"postgres_pass"`
	PostgresTimeout time.Duration `required:"false" envconfig:"postgres_timeout" default:"30s"`
	LogLevel        string        `required:"false" envconfig:"log_level" default:"info"`
	AppName         string        `required:"false" envconfig:"app_name" default:"photo-catalog"`
}

var v variables

func init() {
	if metadata.OnGCE() {
		port := os.Getenv("PORT")
		err := os.Setenv("PHOTO_CATALOG_ADDR", ":"+port)
		if err != nil {
			log.Fatal(err)
		}
	}

	envconfig.MustProcess("photo_catalog", &v)
}

func main() {
	logger := zap.NewFromConfig(zap.Config{
		App:     v.AppName,
		Version: version,
		Out:     os.Stdout,
	})
	if err := logger.SetLevel(v.LogLevel); err != nil {
		logger.Error("failed to set log level", "error", err.Error())
	}

	pg := newPostgres(v, nil)
	defer func() {
		if err := pg.Close(); err != nil {
			logger.Error("failed to close postgres", "error", err.Error())
		}
	}()

	ctx := context.Background()

	lc, ctx := lifecycle.New(ctx, logger)
	lc.Start("photo-catalog root context", func() error {
		<-ctx.Done()
		return ctx.Err()
	})

	h := http.Handler{
		Logger:     logger,
		Version:    version,
		AppName:    v.AppName,
		AlbumStore: pg,
		PhotoStore: pg,
	}
	server := httputils.NewServer(v.Addr, h.Handler())
	lc.StartServer(server)
	lc.StartSignals(syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	logger.Info("photo-catalog started", "addr", v.Addr)
	_ = lc.Wait(15 * time.Second)
}

func newPostgres(v variables, sc tools.StatsClient) *postgres.Postgres {
	pgConfig := postgres.Config{
		Host:       v.PostgresHost,
		Name:       v.PostgresDB,
		Password:   v.PostgresPass,
		Username:   v.PostgresUser,
		DisableSSL: true,
	}
	// Only use a Postgres port if one was provided
	if v.PostgresPort > 0 {
		pgConfig.Port = v.PostgresPort
	}
	pg, err := postgres.New(pgConfig, sc, pgutils.WithTimeout(v.PostgresTimeout))
	if err != nil {
		panic(err)
	}
	return pg
}
