// Package app assembles the process: config, logging, database, outbound
// clients, the advisory pipeline and the HTTP server.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"agroadvisor/internal/advisor"
	"agroadvisor/internal/artifact"
	"agroadvisor/internal/auth"
	"agroadvisor/internal/config"
	"agroadvisor/internal/ent"
	"agroadvisor/internal/handler"
	"agroadvisor/internal/llm"
	"agroadvisor/internal/repository"
	"agroadvisor/internal/server"
	"agroadvisor/internal/weather"
)

type App struct {
	server *server.Server
	model  llm.Client
	db     *ent.Client
	log    *zap.Logger
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	// Database
	entClient, err := repository.Open(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := repository.Migrate(ctx, entClient); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	users := repository.NewUserRepository(entClient, logger)
	tokens := repository.NewTokenRepository(entClient, logger)
	reports := repository.NewReportRepository(entClient, logger)
	snapshots := repository.NewSnapshotRepository(entClient, logger)

	// Model gateway
	gemini, err := llm.NewGeminiClient(ctx, llm.Config{
		Model:           cfg.Model.Model,
		Temperature:     cfg.Model.Temperature,
		MaxOutputTokens: cfg.Model.MaxOutputTokens,
		RequestTimeout:  cfg.Model.RequestTimeout,
		APIKey:          cfg.Model.APIKey,
		BaseURL:         cfg.Model.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("init model client: %w", err)
	}
	model := llm.Chain(gemini,
		llm.WithLogging(logger),
		llm.WithRateLimit(float64(cfg.Model.RequestsPerSec), cfg.Model.RequestsPerSec),
	)
	adv := advisor.New(advisor.NewGateway(model, logger), advisor.NewNormalizer(nil), logger)

	// Outbound weather boundary
	wc := weather.New(weather.Config{
		APIKey:   cfg.Weather.APIKey,
		BaseURL:  cfg.Weather.BaseURL,
		CacheTTL: cfg.Weather.CacheTTL,
	}, logger)

	// Upload archive
	var store artifact.Store = artifact.NoopStore{}
	if cfg.Artifact.Enabled {
		s3, err := artifact.NewS3Store(artifact.S3Config{
			Endpoint:  cfg.Artifact.Endpoint,
			Region:    cfg.Artifact.Region,
			AccessKey: cfg.Artifact.AccessKey,
			SecretKey: cfg.Artifact.SecretKey,
			Bucket:    cfg.Artifact.Bucket,
			UseSSL:    cfg.Artifact.UseSSL,
		})
		if err != nil {
			logger.Warn("artifact store disabled", zap.Error(err))
		} else {
			store = s3
		}
	}

	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	h := handler.New(handler.Deps{
		Advisor:   adv,
		Weather:   wc,
		Users:     users,
		Tokens:    tokens,
		Reports:   reports,
		Snapshots: snapshots,
		Store:     store,
		Issuer:    issuer,
		Logger:    logger,
	})

	router := server.NewRouter(h, issuer, tokens, logger)
	srv := server.New(cfg.Port, router, logger)

	return &App{server: srv, model: model, db: entClient, log: logger}, nil
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func (a *App) Logger() *zap.Logger { return a.log }

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if cerr := a.model.Close(); err == nil {
		err = cerr
	}
	if cerr := a.db.Close(); err == nil {
		err = cerr
	}
	_ = a.log.Sync()
	return err
}
