package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/twitsprout/tools"
	"github.com/twitsprout/tools/postgres"

	cl "photo-catalog/pkg/catelog"
)

type Config postgres.Config

var matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
var matchAllCap = regexp.MustCompile("([a-z0-9])([A-Z])")

func ToSnakeCase(str string) string {
	snake := matchFirstCap.ReplaceAllString(str, "${1}_${2}")
	snake = matchAllCap.ReplaceAllString(snake, "${1}_${2}")
	return strings.ToLower(snake)
}

// Postgres represents the type to interact with the PostgreSQL database.
type Postgres struct {
	sqldb *sqlx.DB
	db    *postgres.DB
	sb    sq.StatementBuilderType
}

type QueryValues struct {
	query string
	args  []interface{}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// New creates a new Postgres store. When sc is non-nil every query reports
// its duration to it.
func New(c Config, sc tools.StatsClient, ops ...postgres.Option) (*Postgres, error) {
	if sc != nil {
		ops = append(ops, postgres.WithOnComplete(statsOnComplete(sc)))
	}
	db, err := postgres.NewDB(postgres.Config(c), ops...)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	sqldb := sqlx.NewDb(db.SQLDB(), "postgres")
	sqldb.MapperFunc(ToSnakeCase)
	return &Postgres{sqldb: sqldb, db: db, sb: psql}, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return p.sqldb.Close()
}

// do runs fn inside the pool wrapper, which applies the configured timeout,
// concurrency semaphore and completion hook.
func (p *Postgres) do(ctx context.Context, label string, fn func(ctx context.Context) error) error {
	if p.db == nil {
		return fn(ctx)
	}
	return p.db.Do(ctx, label, func(ctx context.Context, _ postgres.Conn) error {
		return fn(ctx)
	})
}

func statsOnComplete(sc tools.StatsClient) func(context.Context, string, time.Time, error) error {
	return func(_ context.Context, label string, start time.Time, err error) error {
		status := "ok"
		if err != nil {
			status = "error"
		}
		sc.Histogram("postgres_query_duration_seconds", time.Since(start).Seconds(),
			[]string{"query", label, "status", status})
		return err
	}
}

// sqliteConstraint is the primary result code SQLite reports for any
// constraint violation.
const sqliteConstraint = 19

type codeError interface {
	Code() int
}

// translateError maps driver errors onto the catalog's sentinel errors.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return cl.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return errors.Wrap(cl.ErrConflict, pqErr.Message)
	}
	var ce codeError
	if errors.As(err, &ce) && ce.Code()&0xff == sqliteConstraint {
		return errors.Wrap(cl.ErrConflict, err.Error())
	}
	return err
}
