package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/munraito/asset-web-service/deploy/config"
	"github.com/munraito/asset-web-service/internal/api_service/adapter/api_client/cbr"
	"github.com/munraito/asset-web-service/internal/api_service/adapter/storage/memory"
	"github.com/munraito/asset-web-service/internal/api_service/ports/http/public"
	"github.com/munraito/asset-web-service/internal/api_service/service"
)

type App struct {
	cfg *config.Config
}

func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

func (a *App) Start(ctx context.Context) <-chan struct{} {
	a.initLogger()
	slog.Info("Logger initialized")

	slog.With("config", a.cfg).Info("starting server")

	store := memory.NewStorage()
	slog.Info("Asset storage initialized")

	client := cbr.NewClient()
	slog.Info("Upstream client initialized")

	assetService := service.NewService(store, client, a.cfg)
	slog.Info("Service initialized")

	serverDone := public.StartServer(ctx, assetService, a.cfg)
	slog.Info("server started")

	return serverDone
}

func (a *App) initLogger() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: false,
	}))
	slog.SetDefault(logger)
}
