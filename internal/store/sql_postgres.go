package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-engineer-hub/internal/config"
	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	maxOpenConns = 10
	maxIdleConns = 4
)

// DB is the PostgreSQL connection pool shared by all repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens a pgx-backed pool for cfg.DSN and pings it.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database (ping): %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{DB: conn, logger: log}, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error applying migrations")
		return err
	}

	db.logger.Info().Str("func", "*DB.Migrate").Msg("migrations applied")
	return nil
}
