package plan

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"github.com/lunafit/lunafit/internal/errors"
	"github.com/lunafit/lunafit/internal/sqlite"
)

// sqliteTemplateRepository reads the workout template catalog.
type sqliteTemplateRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newSQLiteTemplateRepository(db *sqlite.Database, logger *slog.Logger) *sqliteTemplateRepository {
	return &sqliteTemplateRepository{db: db, logger: logger}
}

func scanTemplate(row interface{ Scan(...any) error }) (Template, error) {
	var (
		t         Template
		focusDays string
	)
	if err := row.Scan(&t.ID, &t.Goal, &focusDays); err != nil {
		return Template{}, err
	}
	if err := json.Unmarshal([]byte(focusDays), &t.FocusDays); err != nil {
		return Template{}, errors.Wrap(err, "decode focus days", slog.String("template_id", t.ID))
	}
	return t, nil
}

// Get retrieves a single template by ID.
func (r *sqliteTemplateRepository) Get(ctx context.Context, id string) (Template, error) {
	row := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT template_id, goal, focus_days
		FROM workout_templates
		WHERE template_id = ?`, id)
	tmpl, err := scanTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Template{}, ErrNotFound
	}
	if err != nil {
		return Template{}, errors.Wrap(err, "query template", slog.String("template_id", id))
	}
	return tmpl, nil
}

// ListByGoal returns the templates aligned with one goal.
func (r *sqliteTemplateRepository) ListByGoal(ctx context.Context, goal Goal) (_ []Template, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT template_id, goal, focus_days
		FROM workout_templates
		WHERE goal = ?
		ORDER BY template_id`, goal)
	if err != nil {
		return nil, errors.Wrap(err, "query templates", slog.String("goal", string(goal)))
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	var templates []Template
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan template")
		}
		templates = append(templates, tmpl)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate templates")
	}
	return templates, nil
}
