package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/lunafit/lunafit/internal/classifier"
	"github.com/lunafit/lunafit/internal/envstruct"
	"github.com/lunafit/lunafit/internal/errors"
	"github.com/lunafit/lunafit/internal/logging"
	"github.com/lunafit/lunafit/internal/plan"
	"github.com/lunafit/lunafit/internal/sqlite"
)

type application struct {
	logger      *slog.Logger
	planService *plan.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"LUNAFIT_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"LUNAFIT_SQLITE_URL" envDefault:"./lunafit.sqlite3"`
	// ModelPath points to an exported classifier artifact. Empty uses the embedded default model.
	ModelPath string `env:"LUNAFIT_MODEL_PATH" envDefault:""`
	// OpenAIAPIKey enables AI generation of exercise descriptions when set.
	OpenAIAPIKey string `env:"OPENAI_API_KEY" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	var model *classifier.Model
	if cfg.ModelPath != "" {
		model, err = classifier.Load(cfg.ModelPath)
	} else {
		model, err = classifier.Default()
	}
	if err != nil {
		return errors.Wrap(err, "load classifier model", slog.String("path", cfg.ModelPath))
	}

	app := application{
		logger:      logger,
		planService: plan.NewService(db, logger, model, cfg.OpenAIAPIKey),
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx := context.Background()
	// Missing .env is fine, the environment may be configured externally.
	_ = godotenv.Load()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
