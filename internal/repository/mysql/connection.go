package mysql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/rmontufar/usuarios-service/internal/config"
)

type Connection struct {
	*sql.DB
}

// NewConnection opens the database and provisions the schema. The
// database itself is created through a server-level connection first,
// so a fresh MySQL instance works without manual setup. Every step is
// idempotent and safe to run on each process start.
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	if err := ensureDatabase(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to ensure database exists: %w", err)
	}

	db, err := sql.Open("mysql", cfg.DSN(cfg.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := provisionSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to provision schema: %w", err)
	}

	return &Connection{DB: db}, nil
}

func ensureDatabase(ctx context.Context, cfg config.Database) error {
	db, err := sql.Open("mysql", cfg.DSN(""))
	if err != nil {
		return fmt.Errorf("failed to open server connection: %w", err)
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", cfg.Name))
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	return nil
}

func (s *Connection) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

func (s *Connection) Ping(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("connection is nil")
	}
	return s.DB.PingContext(ctx)
}
