package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/nikolayk812/tuckshop/internal/checkout"
	"github.com/nikolayk812/tuckshop/internal/config"
	"github.com/nikolayk812/tuckshop/internal/nav"
	"github.com/nikolayk812/tuckshop/internal/store"
	"github.com/nikolayk812/tuckshop/internal/ui"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Fatal("tuckshop exited", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	catalog, err := store.NewCatalog(store.SeedItems(cfg.Currency))
	if err != nil {
		return err
	}

	cart, err := store.NewCart(catalog)
	if err != nil {
		return err
	}

	ledger := store.NewLedger(logger)

	svc, err := checkout.New(catalog, cart, ledger, cfg.PaymentDelay, logger)
	if err != nil {
		return err
	}

	shell, err := ui.NewShell(nav.New(), catalog, cart, ledger, svc, ui.QueueSettings{
		InitialMinutes: cfg.QueueInitialMinutes,
		PollInterval:   cfg.QueuePollInterval,
		MaxIncrement:   cfg.QueueMaxIncrement,
	}, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return shell.Run(ctx, os.Stdin, os.Stdout)
}
