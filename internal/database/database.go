package database

import (
	"fmt"

	"learnhub/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver
)

func init() {
	// go-ora registers as "oracle", which sqlx does not know; map it to
	// Oracle-style named binding so NamedExecContext works.
	sqlx.BindDriver("oracle", sqlx.NAMED)
}

// NewSQLXOracleDB opens and pings an Oracle connection for the API process.
func NewSQLXOracleDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("oracle", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Oracle database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}

	logger.Get().Info("Successfully connected to Oracle database")
	return db, nil
}
