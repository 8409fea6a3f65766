package plan_test

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lunafit/lunafit/internal/classifier"
	"github.com/lunafit/lunafit/internal/plan"
	"github.com/lunafit/lunafit/internal/sqlite"
	"github.com/lunafit/lunafit/internal/testhelpers"
)

func newTestService(t *testing.T) *plan.Service {
	t.Helper()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})
	model, err := classifier.Default()
	if err != nil {
		t.Fatalf("load default classifier: %v", err)
	}
	return plan.NewService(db, logger, model, "",
		plan.WithClock(func() time.Time { return time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC) }),
		plan.WithRandSource(func() *rand.Rand { return rand.New(rand.NewPCG(7, 11)) }),
	)
}

func testRequest() plan.Request {
	return plan.Request{
		Age:                  28,
		WeightKg:             65,
		HeightCm:             170,
		ActivitySlider:       55,
		Goal:                 "weight_loss",
		FocusAreas:           plan.StringList{"Stomach"},
		PreferredRestWeekday: "Sunday",
		ProgramDurationDays:  14,
		PlanStartDate:        "2025-03-10", // a Monday
	}
}

func TestGenerate(t *testing.T) {
	svc := newTestService(t)
	generated, err := svc.Generate(t.Context(), testRequest())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(generated.Days) != 14 {
		t.Fatalf("day count = %d, want 14", len(generated.Days))
	}
	if generated.TemplateID == "" {
		t.Error("plan has no template ID")
	}
	if generated.Intensity != "moderate" {
		t.Errorf("intensity = %q, want moderate", generated.Intensity)
	}

	for _, day := range generated.Days {
		switch day.Focus {
		case "Complete Rest Day":
			if day.Weekday != "Sunday" {
				t.Errorf("day %d: complete rest fell on %s", day.DayIndex, day.Weekday)
			}
			if len(day.Exercises) != 0 {
				t.Errorf("day %d: complete rest has %d exercises", day.DayIndex, len(day.Exercises))
			}
		default:
			if len(day.Exercises) == 0 {
				t.Errorf("day %d (%s): no exercises assigned", day.DayIndex, day.Focus)
			}
			var wantTotal float64
			for _, e := range day.Exercises {
				if e.DurationMin <= 0 {
					t.Errorf("day %d: %s has non-positive duration", day.DayIndex, e.Name)
				}
				if e.Calories <= 0 {
					t.Errorf("day %d: %s has non-positive calories", day.DayIndex, e.Name)
				}
				wantTotal += e.DurationMin
			}
			if diff := day.TotalDurationMin - wantTotal; diff > 0.05 || diff < -0.05 {
				t.Errorf("day %d: total duration %v does not match exercise sum %v", day.DayIndex, day.TotalDurationMin, wantTotal)
			}
		}
	}
}

func TestGenerateDeterministicWithFixedSeed(t *testing.T) {
	first, err := newTestService(t).Generate(t.Context(), testRequest())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := newTestService(t).Generate(t.Context(), testRequest())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if first.TemplateID != second.TemplateID {
		t.Errorf("template IDs differ across identical seeded runs: %q vs %q", first.TemplateID, second.TemplateID)
	}
}

func TestGenerateHealthConditionCaps(t *testing.T) {
	svc := newTestService(t)
	req := testRequest()
	req.HealthConditions = plan.StringList{"Hypertension"}
	generated, err := svc.Generate(t.Context(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, day := range generated.Days {
		for _, e := range day.Exercises {
			if e.MET > 5.5 {
				t.Errorf("day %d: %s has MET %v above the hypertension cap", day.DayIndex, e.Name, e.MET)
			}
			if e.Caution == "Isometric Hold" {
				t.Errorf("day %d: %s is an isometric hold", day.DayIndex, e.Name)
			}
			if e.Sets > 3 {
				t.Errorf("day %d: %s has %d sets, cap is 3", day.DayIndex, e.Name, e.Sets)
			}
		}
	}
}

func TestGenerateMenstruationOverride(t *testing.T) {
	svc := newTestService(t)
	req := testRequest()
	req.CycleLength = 28
	req.CyclePhaseTimeline = []plan.CycleDay{
		{CycleDay: 1, Phase: plan.PhaseMenstruation},
		{CycleDay: 2, Phase: plan.PhaseMenstruation},
	}
	generated, err := svc.Generate(t.Context(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for i := 0; i < 2; i++ {
		if generated.Days[i].Focus != "Pain Relief Stretches" {
			t.Errorf("day %d focus = %q, want Pain Relief Stretches", i, generated.Days[i].Focus)
		}
	}
}

func TestGenerateRejectsInvalidProfile(t *testing.T) {
	svc := newTestService(t)
	req := testRequest()
	req.Goal = "unknown"
	_, err := svc.Generate(t.Context(), req)
	var profileErr *plan.ProfileError
	if !errors.As(err, &profileErr) {
		t.Fatalf("expected ProfileError, got %v", err)
	}
}

func TestGetExercise(t *testing.T) {
	svc := newTestService(t)

	exercises, err := svc.ListExercises(t.Context())
	if err != nil {
		t.Fatalf("list exercises: %v", err)
	}
	if len(exercises) == 0 {
		t.Fatal("exercise catalog is empty")
	}

	got, err := svc.GetExercise(t.Context(), exercises[0].ID)
	if err != nil {
		t.Fatalf("get exercise: %v", err)
	}
	if got.Name != exercises[0].Name {
		t.Errorf("name = %q, want %q", got.Name, exercises[0].Name)
	}

	_, err = svc.GetExercise(t.Context(), 999999)
	if !errors.Is(err, plan.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
