package plan

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/lunafit/lunafit/internal/errors"
	"github.com/lunafit/lunafit/internal/sqlite"
)

// sqliteExerciseRepository reads and writes the exercise catalog.
type sqliteExerciseRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newSQLiteExerciseRepository(db *sqlite.Database, logger *slog.Logger) *sqliteExerciseRepository {
	return &sqliteExerciseRepository{db: db, logger: logger}
}

const exerciseColumns = `id, name, met_value, difficulty, target_muscle, exercise_types, caution, description_markdown`

func scanExercise(row interface{ Scan(...any) error }) (Exercise, error) {
	var (
		e       Exercise
		types   string
		caution sql.NullString
	)
	err := row.Scan(&e.ID, &e.Name, &e.MET, &e.Difficulty, &e.TargetMuscle, &types, &caution, &e.DescriptionMarkdown)
	if err != nil {
		return Exercise{}, err
	}
	e.Types = splitTypes(types)
	e.Caution = caution.String
	return e, nil
}

// splitTypes parses the comma-separated exercise_types column.
func splitTypes(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Get retrieves a single exercise by ID.
func (r *sqliteExerciseRepository) Get(ctx context.Context, id int) (Exercise, error) {
	row := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT `+exerciseColumns+`
		FROM exercises
		WHERE id = ?`, id)
	exercise, err := scanExercise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Exercise{}, ErrNotFound
	}
	if err != nil {
		return Exercise{}, errors.Wrap(err, "query exercise", slog.Int("id", id))
	}
	return exercise, nil
}

// List returns the full exercise catalog ordered by ID.
func (r *sqliteExerciseRepository) List(ctx context.Context) (_ []Exercise, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT `+exerciseColumns+`
		FROM exercises
		ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "query exercises")
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	var exercises []Exercise
	for rows.Next() {
		exercise, err := scanExercise(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan exercise")
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate exercises")
	}
	return exercises, nil
}

// SetDescription stores the rendered description for an exercise.
func (r *sqliteExerciseRepository) SetDescription(ctx context.Context, id int, markdown string) error {
	result, err := r.db.ReadWrite.ExecContext(ctx, `
		UPDATE exercises
		SET description_markdown = ?
		WHERE id = ?`, markdown, id)
	if err != nil {
		return errors.Wrap(err, "update exercise description", slog.Int("id", id))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListWithoutDescription returns exercises still missing generated content.
func (r *sqliteExerciseRepository) ListWithoutDescription(ctx context.Context) (_ []Exercise, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT `+exerciseColumns+`
		FROM exercises
		WHERE description_markdown = ''
		ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "query exercises without description")
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	var exercises []Exercise
	for rows.Next() {
		exercise, err := scanExercise(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan exercise")
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate exercises")
	}
	return exercises, nil
}
