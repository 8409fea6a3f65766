package envstruct_test

import (
	"testing"

	"github.com/lunafit/lunafit/internal/envstruct"
)

func lookupFromMap(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestPopulate(t *testing.T) {
	type config struct {
		Addr      string `env:"TEST_ADDR" envDefault:"localhost:8080"`
		SqliteURL string `env:"TEST_SQLITE_URL"`
		MaxDays   int    `env:"TEST_MAX_DAYS" envDefault:"30"`
		Debug     bool   `env:"TEST_DEBUG" envDefault:"false"`
		Untagged  string
	}

	t.Run("values from environment", func(t *testing.T) {
		var cfg config
		err := envstruct.Populate(&cfg, lookupFromMap(map[string]string{
			"TEST_ADDR":       "localhost:9999",
			"TEST_SQLITE_URL": ":memory:",
			"TEST_MAX_DAYS":   "14",
			"TEST_DEBUG":      "true",
		}))
		if err != nil {
			t.Fatalf("Populate() error = %v", err)
		}
		if cfg.Addr != "localhost:9999" {
			t.Errorf("Addr = %q, want localhost:9999", cfg.Addr)
		}
		if cfg.MaxDays != 14 {
			t.Errorf("MaxDays = %d, want 14", cfg.MaxDays)
		}
		if !cfg.Debug {
			t.Error("Debug = false, want true")
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		var cfg config
		err := envstruct.Populate(&cfg, lookupFromMap(map[string]string{
			"TEST_SQLITE_URL": "./lunafit.sqlite3",
		}))
		if err != nil {
			t.Fatalf("Populate() error = %v", err)
		}
		if cfg.Addr != "localhost:8080" {
			t.Errorf("Addr = %q, want default localhost:8080", cfg.Addr)
		}
		if cfg.MaxDays != 30 {
			t.Errorf("MaxDays = %d, want default 30", cfg.MaxDays)
		}
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg config
		err := envstruct.Populate(&cfg, lookupFromMap(nil))
		if err == nil {
			t.Fatal("Populate() error = nil, want ErrEnvNotSet")
		}
	})

	t.Run("invalid int", func(t *testing.T) {
		var cfg config
		err := envstruct.Populate(&cfg, lookupFromMap(map[string]string{
			"TEST_SQLITE_URL": ":memory:",
			"TEST_MAX_DAYS":   "not-a-number",
		}))
		if err == nil {
			t.Fatal("Populate() error = nil, want parse error")
		}
	})

	t.Run("not a struct pointer", func(t *testing.T) {
		var s string
		if err := envstruct.Populate(&s, lookupFromMap(nil)); err == nil {
			t.Fatal("Populate() error = nil, want ErrInvalidValue")
		}
		if err := envstruct.Populate(config{}, lookupFromMap(nil)); err == nil { //nolint:govet // intentional
			t.Fatal("Populate() error = nil, want ErrInvalidValue")
		}
	})
}
