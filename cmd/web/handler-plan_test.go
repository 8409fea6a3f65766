package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lunafit/lunafit/internal/classifier"
	"github.com/lunafit/lunafit/internal/plan"
	"github.com/lunafit/lunafit/internal/sqlite"
	"github.com/lunafit/lunafit/internal/testhelpers"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(t.Context(), ":memory:", logger)
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
	return &application{
		logger:      logger,
		planService: plan.NewService(db, logger, model, ""),
	}
}

const validPlanRequest = `{
	"age": 28,
	"weight_kg": 65,
	"height_cm": 170,
	"activity_slider": 55,
	"goal": "weight_loss",
	"focus_areas": ["Stomach"],
	"preferred_rest_weekday": "Sunday",
	"program_duration_days": 7,
	"plan_start_date": "2025-03-10"
}`

func TestPlanCreatePOST(t *testing.T) {
	app := newTestApplication(t)
	routes := app.routes()

	t.Run("valid request returns a plan", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/plans", strings.NewReader(validPlanRequest))
		routes.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
		}
		var generated plan.Plan
		if err := json.NewDecoder(rec.Body).Decode(&generated); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(generated.Days) != 7 {
			t.Errorf("day count = %d, want 7", len(generated.Days))
		}
		if generated.TemplateID == "" {
			t.Error("response has no template ID")
		}
	})

	t.Run("unknown goal is a client error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := strings.Replace(validPlanRequest, "weight_loss", "get_jacked", 1)
		req := httptest.NewRequest(http.MethodPost, "/api/plans", strings.NewReader(body))
		routes.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("malformed body is a client error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/plans", strings.NewReader(`{"age": `))
		routes.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestExerciseEndpoints(t *testing.T) {
	app := newTestApplication(t)
	routes := app.routes()

	t.Run("list returns the catalog", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/exercises", nil)
		routes.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var exercises []plan.Exercise
		if err := json.NewDecoder(rec.Body).Decode(&exercises); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(exercises) == 0 {
			t.Fatal("catalog is empty")
		}
	})

	t.Run("get by id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/exercises/1", nil)
		routes.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/exercises/999999", nil)
		routes.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("non-numeric id is not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/exercises/abc", nil)
		routes.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestHealthy(t *testing.T) {
	app := newTestApplication(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/healthy", nil)
	app.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s, want status ok", rec.Body.String())
	}
}
