package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/constella/constella/internal/config"
	"github.com/constella/constella/internal/handlers"
	"github.com/constella/constella/internal/paymentsclient"
	"github.com/constella/constella/internal/pg"
	"github.com/constella/constella/internal/repo"
	"github.com/constella/constella/internal/service"
	storefrontmigrations "github.com/constella/constella/migrations/storefront"
	"github.com/constella/constella/pkg/clients"
	"github.com/constella/constella/pkg/logger"
)

type StorefrontApplication struct {
	runtime

	cfg  *config.StorefrontConfig
	api  *handlers.StorefrontHandlers
	srv  *service.StorefrontServices
	repo *repo.StorefrontRepositories
	ext  *paymentsclient.Client
}

func NewStorefront() *StorefrontApplication {
	return &StorefrontApplication{
		runtime: newRuntime(),
	}
}

func (a *StorefrontApplication) Start(ctx context.Context) error {
	cfg := config.NewStorefront()

	err := logger.InitLogger(cfg.LogLvl)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg.Database)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool, storefrontmigrations.Migrations); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.NewStorefront(conn)
	a.ext = paymentsclient.New(cfg.PaymentsAddress, clients.NewHTTPClient())
	a.srv = service.NewStorefront(cfg, a.repo, a.ext)
	a.api = handlers.NewStorefront(cfg, a.srv)

	router := chi.NewRouter()
	a.api.InitRoutes(router)
	a.startHTTPServer(ctx, cfg.Address, router)

	a.ready = true
	zap.L().Info("storefront server started successfully")
	return nil
}
