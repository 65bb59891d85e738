package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"learnhub/internal/config"
	"learnhub/internal/logger"

	"github.com/godror/godror"
	"go.uber.org/zap"
)

// NewMigrateOracleDB opens an Oracle connection for the migration runner.
// Uses godror, which handles the PL/SQL blocks in the migration scripts.
func NewMigrateOracleDB(cfg *config.Config) (*sql.DB, error) {
	params := godror.ConnectionParams{}
	params.Username = cfg.DB.User
	params.Password = godror.NewPassword(cfg.DB.Password)
	params.ConnectString = fmt.Sprintf("%s:%d/%s", cfg.DB.Host, cfg.DB.Port, cfg.DB.DBName)

	db := sql.OpenDB(godror.NewConnector(params))
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not ping database: %w", err)
	}
	return db, nil
}

// RunMigrations executes every .up.sql file under migrationsDir in
// lexical order. Statements are separated by a line containing only "/",
// Oracle script style, so PL/SQL blocks survive intact.
func RunMigrations(db *sql.DB, migrationsDir string) error {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		content, err := os.ReadFile(filepath.Join(migrationsDir, name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		for _, stmt := range splitStatements(string(content)) {
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}

		logger.Get().Info("Executed migration", zap.String("file", name))
	}

	logger.Get().Info("Migrations completed successfully")
	return nil
}

func splitStatements(script string) []string {
	var statements []string
	var current []string

	for _, line := range strings.Split(script, "\n") {
		if strings.TrimSpace(line) == "/" {
			stmt := strings.TrimSpace(strings.Join(current, "\n"))
			if stmt != "" {
				statements = append(statements, stmt)
			}
			current = current[:0]
			continue
		}
		current = append(current, line)
	}

	if stmt := strings.TrimSpace(strings.Join(current, "\n")); stmt != "" {
		statements = append(statements, stmt)
	}
	return statements
}
