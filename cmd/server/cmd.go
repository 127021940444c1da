package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/bootstrap"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/config"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/dto"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/export"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/handlers"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/outbox"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/response"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/router"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/services"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/syncer"
	"github.com/arslanameen227/Malik-MoneyFlow/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	applicationCtx := logger.ToContext(context.Background(), bs.Log)

	// outbox and sync engine
	ob := outbox.New(bs.Local.Pending)
	engine := syncer.New(bs.Local, ob, bs.Remote, bs.Oracle)

	// services
	auserv := services.NewAuthService(bs.Remote, bs.Local.Sessions, bs.Oracle)
	aserv := services.NewAccountService(bs.Local.Accounts, bs.Remote, bs.Oracle)
	cserv := services.NewCustomerService(bs.Local.Customers, bs.Local.CustomerAccounts, bs.Remote, bs.Oracle)
	tserv := services.NewTransactionService(bs.Local.Transactions, ob, bs.Remote, bs.Oracle)
	dserv := services.NewDashboardService(bs.Local.Accounts, bs.Local.Transactions, bs.Local.CashPositions, ob)
	sserv := services.NewSyncService(engine, ob, bs.Oracle, bs.Local.Store)

	// exporter
	exporter := export.NewExporter(bs.Local.Transactions, bs.Local.Customers, bs.Local.Accounts)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.AuthSvc = auserv
	deps.AccountSvc = aserv
	deps.CustomerSvc = cserv
	deps.TransactionSvc = tserv
	deps.DashboardSvc = dserv
	deps.SyncSvc = sserv
	deps.Exporter = exporter

	// connectivity probing and background sync
	go bs.Oracle.Run(applicationCtx, cfg.ProbeInterval)
	bs.Oracle.Probe(applicationCtx)
	auserv.Restore(applicationCtx)
	go runPeriodicSync(applicationCtx, cfg.SyncInterval, auserv, sserv, bs.Log)

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("listening", "addr", cfg.ListenAddr)
	err = http.ListenAndServe(cfg.ListenAddr, r)
	exitOnError("server start failed", err, bs.Log)
}

type sessionSource interface {
	Current(ctx context.Context) (*models.Session, error)
}

type syncRunner interface {
	Sync(ctx context.Context, uid string) (*dto.SyncAudit, error)
}

// runPeriodicSync drains the outbox and pulls fresh state on a timer. It
// stays quiet while nobody is signed in; the sync endpoints cover manual
// triggering.
func runPeriodicSync(ctx context.Context, interval time.Duration, auth sessionSource, sync syncRunner, log *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sess, err := auth.Current(ctx)
			if err != nil {
				continue
			}
			if _, err := sync.Sync(ctx, sess.UID); err != nil && !errors.Is(err, syncer.ErrSyncInProgress) {
				log.Warn("periodic sync failed", "error", err)
			}
		}
	}
}
