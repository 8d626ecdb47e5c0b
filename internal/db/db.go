package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/clientforge/agencymail-backend/internal/config"
)

// Open connects to Postgres and verifies the connection. The caller owns the
// returned handle and passes it to the repositories; there is no package-level
// database state.
func Open(cfg config.Database) (*sql.DB, error) {
	conn, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return conn, nil
}
