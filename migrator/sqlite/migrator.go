package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
	"github.com/diegoclair/weekend-coverage/internal/domain"
	"github.com/diegoclair/weekend-coverage/internal/log"
)

const schemaDir = "sql"

//go:embed sql/*.sql
var schemaFiles embed.FS

var errNoDatabase = errors.New("no database to migrate")

// Migrate brings the submissions schema up to date. darwin tracks the applied
// versions, so it runs on every start.
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, errNoDatabase)
	}

	files, err := schemaFiles.ReadDir(schemaDir)
	if err != nil {
		return fmt.Errorf("failed to list schema files: %w", err)
	}

	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})
	err = migrator.Migrate(schemaFiles, schemaDir, sqlmigrator.WithDescriptionProcessor(describeStep))
	if err != nil {
		return fmt.Errorf("%w: failed to migrate the submissions schema: %w", domain.ErrStorageUnavailable, err)
	}

	log.WithField("files", len(files)).Debug("Submissions schema is up to date")

	return nil
}

// describeStep is what darwin_migrations stores for each statement.
func describeStep(_ string, instruction string) string {
	return strings.ToLower(sqlmigrator.ExtractActionDescription(instruction))
}
