package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-webauthn/webauthn/webauthn"
	"go.uber.org/zap"

	"github.com/constella/constella/internal/config"
	"github.com/constella/constella/internal/handlers"
	"github.com/constella/constella/internal/pg"
	"github.com/constella/constella/internal/repo"
	"github.com/constella/constella/internal/service"
	walletmigrations "github.com/constella/constella/migrations/wallet"
	"github.com/constella/constella/pkg/logger"
)

type WalletApplication struct {
	runtime

	cfg  *config.WalletConfig
	api  *handlers.WalletHandlers
	srv  *service.WalletServices
	repo *repo.WalletRepositories
}

func NewWallet() *WalletApplication {
	return &WalletApplication{
		runtime: newRuntime(),
	}
}

func (a *WalletApplication) Start(ctx context.Context) error {
	cfg := config.NewWallet()

	err := logger.InitLogger(cfg.LogLvl)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg.Database)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool, walletmigrations.Migrations); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	ceremony, err := webauthn.New(&webauthn.Config{
		RPDisplayName: cfg.RPDisplayName,
		RPID:          cfg.RPID,
		RPOrigins:     []string{cfg.RPOrigin},
	})
	if err != nil {
		zap.L().Error("webauthn init failed: ", zap.Error(err))
		return fmt.Errorf("can't init webauthn: %w", err)
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.NewWallet(conn, txManager)
	a.srv = service.NewWallet(cfg, a.repo, ceremony)
	a.api = handlers.NewWallet(cfg, a.srv)

	router := chi.NewRouter()
	a.api.InitRoutes(router)
	a.startHTTPServer(ctx, cfg.Address, router)

	a.ready = true
	zap.L().Info("wallet server started successfully")
	return nil
}
