package plan

import (
	"log/slog"

	"github.com/lunafit/lunafit/internal/errors"
	"github.com/lunafit/lunafit/internal/sqlite"
)

// ErrNotFound is returned when a requested catalog row does not exist.
var ErrNotFound = errors.NewSentinel("not found")

// repository bundles the catalog repositories a generation run reads from.
type repository struct {
	exercises *sqliteExerciseRepository
	templates *sqliteTemplateRepository
}

func newRepository(db *sqlite.Database, logger *slog.Logger) *repository {
	return &repository{
		exercises: newSQLiteExerciseRepository(db, logger),
		templates: newSQLiteTemplateRepository(db, logger),
	}
}
