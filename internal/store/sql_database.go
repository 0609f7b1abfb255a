package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/organizemymind/go-user-api/internal/config"
	"github.com/organizemymind/go-user-api/internal/logger"
	"github.com/organizemymind/go-user-api/migrations"
)

// DB wraps the shared *sql.DB handle together with the storage engine name,
// so that repositories can pick the right placeholder format and error
// mapping without knowing which driver is underneath.
type DB struct {
	*sql.DB
	engine string
	logger *logger.Logger
}

// NewConnect opens a connection to the configured storage engine, verifies
// it with a ping, and returns the wrapped handle.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Engine {
	case config.EngineSQLite:
		return newConnectSQLite(ctx, cfg, log)
	default:
		return newConnectPostgres(ctx, cfg, log)
	}
}

func newConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "newConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "newConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "newConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		engine: config.EnginePostgres,
		logger: log,
	}, nil
}

func newConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db lives in a local file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "newConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "newConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "newConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "newConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		engine: config.EngineSQLite,
		logger: log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	_, err := os.Stat(dbFile)
	if err == nil {
		// file already exists
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("error checking DB file: %w", err)
	}

	// if not found - create
	f, err := os.Create(dbFile)
	if err != nil {
		return fmt.Errorf("error creating DB file: %w", err)
	}
	return f.Close()
}

// Migrate applies all embedded schema migrations for the active engine.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.engine)
}

// placeholder returns the SQL placeholder format of the active engine:
// $1-style for PostgreSQL, ?-style for SQLite.
func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.engine == config.EngineSQLite {
		return sq.Question
	}
	return sq.Dollar
}

// isUniqueViolation reports whether err is a unique-constraint violation
// raised by either supported driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
