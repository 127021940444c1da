package bootstrap

import (
	"log/slog"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/config"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/connectivity"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/localstore"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/remote"
	"github.com/arslanameen227/Malik-MoneyFlow/pkg/logger"
)

type Bootstrap struct {
	Log    *slog.Logger
	Local  *localstore.Registry
	Remote *remote.Client
	Oracle *connectivity.Oracle
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewJSONHandler)

	store, err := localstore.Open(cfg.DataDir)
	if err != nil {
		return bs, err
	}
	bs.Local = localstore.NewRegistry(store)

	bs.Remote = remote.NewClient(cfg.RemoteURL, cfg.RemoteAPIKey)
	bs.Oracle = connectivity.New(bs.Remote.Health)

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Local != nil {
		if err := bs.Local.Store.Close(); err != nil {
			bs.Log.Error("failed to close local store", "error", err)
		}
	}
}
