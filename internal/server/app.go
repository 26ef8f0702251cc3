// Package server initializes and runs the application: configuration,
// database, migrations, domain services and the HTTP endpoint, with
// graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"qanda-service/internal/logging"
	"qanda-service/internal/server/auth"
	"qanda-service/internal/server/config"
	"qanda-service/internal/server/httpapi"
	"qanda-service/internal/server/moderation"
	"qanda-service/internal/server/repositories/repomanager"
	"qanda-service/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	http   *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	rm, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	codec, err := auth.NewTokenCodec(cfg.SessionSecret, cfg.SessionValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("token codec init error: %w", err)
	}

	moderator := moderation.NewClient(cfg.BadWordsEndpoint, cfg.BadWordsAPIKey, cfg.CensorChar, logger)

	httpServer := httpapi.NewServer(
		cfg.EndpointAddr,
		logger,
		auth.NewGuard(codec),
		services.NewAccountService(rm.Accounts(), codec),
		services.NewQuestionService(rm.Questions(), moderator),
		services.NewAnswerService(rm.Answers(), moderator),
	)

	return &App{config: cfg, logger: logger, repos: rm, http: httpServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	if err := app.http.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server error", "error", err)
	}

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
