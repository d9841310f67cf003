// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package serve

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/luxfi/database/memdb"
	"github.com/luxfi/log"
	"github.com/luxfi/metric"

	"github.com/luxfi/locker/vms/lockervm"
	"github.com/luxfi/locker/vms/lockervm/config"
	"github.com/luxfi/locker/vms/lockervm/countries"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serves the locker JSON-RPC API over an in-memory database",
		RunE:  serveFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func serveFunc(c *cobra.Command, args []string) error {
	cfg, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	logger := log.NewLogger("lockerctl")
	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	genesisBytes, err := os.ReadFile(cfg.Genesis)
	if err != nil {
		return err
	}
	bans, err := countries.Load(cfg.CountriesFile)
	if err != nil {
		return err
	}

	factory := &lockervm.Factory{Params: config.DefaultParams()}
	intf, err := factory.New(logger)
	if err != nil {
		return err
	}
	vm := intf.(*lockervm.VM)
	if err := vm.Initialize(ctx, memdb.New(), genesisBytes, bans, metric.NewRegistry()); err != nil {
		return err
	}

	handlers, err := vm.CreateHandlers(ctx)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	for path, handler := range handlers {
		mux.Handle("/ext/"+lockervm.Name+path, handler)
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("serving locker API",
			log.String("addr", cfg.HTTPAddr),
		)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return errors.Join(
			server.Shutdown(shutdownCtx),
			vm.Shutdown(shutdownCtx),
		)
	})
	return g.Wait()
}
