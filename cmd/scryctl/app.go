package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/scry-engine/internal/config"
	"github.com/phrazzld/scry-engine/internal/difficulty"
	"github.com/phrazzld/scry-engine/internal/domain/srs"
	"github.com/phrazzld/scry-engine/internal/evaluation"
	"github.com/phrazzld/scry-engine/internal/events"
	"github.com/phrazzld/scry-engine/internal/judge"
	"github.com/phrazzld/scry-engine/internal/platform/logger"
	"github.com/phrazzld/scry-engine/internal/review"
)

// application holds the engine components built from configuration.
type application struct {
	config *config.Config
	logger *slog.Logger

	evaluator     *evaluation.Evaluator
	inferencer    *difficulty.Inferencer
	scheduler     srs.Service
	emitter       *events.InMemoryEmitter
	reviewService review.Service

	closeJudge func() error
}

// loadAppConfig reads configPath when set, otherwise the optional
// config.yaml in the working directory plus SCRY_ environment variables.
func loadAppConfig(configPath string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newApplication wires the engine. Log output goes to logOut so command
// results on stdout stay machine-readable.
func newApplication(ctx context.Context, cfg *config.Config, logOut io.Writer) (*application, error) {
	l, err := logger.SetupWithWriter(cfg.Server, logOut)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	app := &application{
		config: cfg,
		logger: l,
	}

	l.Debug("configuration loaded",
		"log_level", cfg.Server.LogLevel,
		"llm_provider", cfg.LLM.Provider,
		"cache_enabled", cfg.Cache.Enabled)

	semanticJudge, closeJudge, err := judge.FromConfig(ctx, *cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize semantic judge: %w", err)
	}
	app.closeJudge = closeJudge

	opts := []evaluation.Option{
		evaluation.WithLogger(l),
		evaluation.WithJudgeTimeout(cfg.LLM.Timeout),
	}
	if semanticJudge != nil {
		opts = append(opts, evaluation.WithJudge(semanticJudge))
		l.Info("semantic judge enabled", "provider", cfg.LLM.Provider)
	}
	app.evaluator = evaluation.New(opts...)

	app.inferencer = difficulty.New(difficulty.Thresholds{
		QuickMs:            cfg.Inference.QuickResponseMs,
		NormalMs:           cfg.Inference.NormalResponseMs,
		SlowMs:             cfg.Inference.SlowResponseMs,
		MatureIntervalDays: cfg.Inference.MatureIntervalDays,
		MatureScale:        cfg.Inference.MatureScale,
	})

	app.scheduler = srs.NewDefaultService()

	app.emitter = events.NewInMemoryEmitter(l)
	app.emitter.Register(events.LogHandler(l.With("component", "session_log")))

	app.reviewService = review.NewService(app.evaluator, app.inferencer, app.scheduler, app.emitter, l)

	return app, nil
}

// cleanup releases external connections.
func (app *application) cleanup() {
	if app.closeJudge == nil {
		return
	}
	if err := app.closeJudge(); err != nil {
		app.logger.Error("error closing verdict cache", "error", err)
	}
}
