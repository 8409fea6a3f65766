package plan

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lunafit/lunafit/internal/classifier"
	"github.com/lunafit/lunafit/internal/errors"
	"github.com/lunafit/lunafit/internal/sqlite"
)

// Service generates workout plans from the catalogs and the success model.
type Service struct {
	repo         *repository
	logger       *slog.Logger
	model        *classifier.Model
	openaiAPIKey string
	now          func() time.Time
	newRand      func() *rand.Rand
}

// Option customizes a Service. Used by tests to pin time and randomness.
type Option func(*Service)

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRandSource overrides the per-request random source.
func WithRandSource(newRand func() *rand.Rand) Option {
	return func(s *Service) { s.newRand = newRand }
}

// NewService creates a plan service. model may be nil, in which case template
// selection runs on the rule scores alone.
func NewService(db *sqlite.Database, logger *slog.Logger, model *classifier.Model, openaiAPIKey string, opts ...Option) *Service {
	s := &Service{
		repo:         newRepository(db, logger),
		logger:       logger,
		model:        model,
		openaiAPIKey: openaiAPIKey,
		now:          time.Now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// restDayClasses returns the weekday names accepted for the rest day. The
// model's fitted classes are authoritative when a model is loaded.
func (s *Service) restDayClasses() []string {
	if s.model != nil {
		return s.model.Classes(classifier.FieldRestDay)
	}
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
}

// Generate produces a personalized plan for the request.
func (s *Service) Generate(ctx context.Context, req Request) (Plan, error) {
	profile, err := newUserProfile(req, s.restDayClasses(), s.now())
	if err != nil {
		return Plan{}, errors.Wrap(err, "build user profile")
	}

	var (
		catalog   []Exercise
		templates []Template
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if catalog, err = s.repo.exercises.List(gctx); err != nil {
			return errors.Wrap(err, "load exercise catalog")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if templates, err = s.repo.templates.ListByGoal(gctx, profile.Goal); err != nil {
			return errors.Wrap(err, "load template catalog")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Plan{}, err
	}
	if len(templates) == 0 {
		return Plan{}, ErrNoCandidateTemplates
	}

	plan, err := generate(profile, templates, catalog, s.model, s.newRand(), s.now())
	if err != nil {
		return Plan{}, err
	}
	for _, day := range plan.Days {
		if day.Focus != focusCompleteRest && len(day.Exercises) == 0 {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "no exercises available for day",
				slog.Int("day_index", day.DayIndex),
				slog.String("focus", day.Focus),
			)
		}
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "plan generated",
		slog.String("plan_id", plan.ID.String()),
		slog.String("template_id", plan.TemplateID),
		slog.String("goal", string(profile.Goal)),
		slog.Int("days", len(plan.Days)),
	)
	return plan, nil
}

// GetExercise retrieves a catalog exercise by ID.
func (s *Service) GetExercise(ctx context.Context, id int) (Exercise, error) {
	exercise, err := s.repo.exercises.Get(ctx, id)
	if err != nil {
		return Exercise{}, errors.Wrap(err, "get exercise", slog.Int("id", id))
	}
	return exercise, nil
}

// ListExercises returns the full exercise catalog.
func (s *Service) ListExercises(ctx context.Context) ([]Exercise, error) {
	exercises, err := s.repo.exercises.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list exercises")
	}
	return exercises, nil
}
