package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/constella/constella/internal/config"
	"github.com/constella/constella/internal/handlers"
	"github.com/constella/constella/internal/pg"
	"github.com/constella/constella/internal/repo"
	"github.com/constella/constella/internal/service"
	paymentmigrations "github.com/constella/constella/migrations/payments"
	"github.com/constella/constella/pkg/logger"
)

type PaymentsApplication struct {
	runtime

	cfg  *config.PaymentsConfig
	api  *handlers.PaymentsHandlers
	srv  *service.PaymentsServices
	repo *repo.PaymentsRepositories
}

func NewPayments() *PaymentsApplication {
	return &PaymentsApplication{
		runtime: newRuntime(),
	}
}

func (a *PaymentsApplication) Start(ctx context.Context) error {
	cfg := config.NewPayments()

	err := logger.InitLogger(cfg.LogLvl)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg.Database)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool, paymentmigrations.Migrations); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.NewPayments(conn, txManager)
	a.srv = service.NewPayments(cfg, a.repo)
	a.api = handlers.NewPayments(a.srv)

	router := chi.NewRouter()
	a.api.InitRoutes(router)
	a.startHTTPServer(ctx, cfg.Address, router)

	a.ready = true
	zap.L().Info("payments server started successfully")
	return nil
}
