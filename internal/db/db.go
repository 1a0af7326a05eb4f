package db

import (
	"database/sql"
	"fmt"

	"unihub/internal/config"
)

// Open returns a *sql.DB for the configured row-source driver.
// The csv driver has no database behind it and is handled by the caller.
func Open(cfg *config.Config) (*sql.DB, error) {
	switch cfg.SourceDriver {
	case "sqlite":
		return openSQLite(cfg.SourcePath)
	case "postgres":
		return openPostgres(cfg.SourceURL)
	default:
		return nil, fmt.Errorf("unsupported source driver: %s", cfg.SourceDriver)
	}
}
