package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/kcmvp/commerce/app"
	"github.com/kcmvp/commerce/store"
	"github.com/kcmvp/commerce/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the commerce HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var svcs web.Services
		if db, ok := store.DefaultDS(); ok {
			driver, _ := store.DriverOf("")
			color.Green("datasource: %s", driver)
			svcs = web.SQLServices(db)
		} else {
			color.Yellow("no datasource configured, using in-memory stores")
			svcs = web.MemoryServices()
		}
		defer func() { _ = store.CloseAllDataSources() }()

		port := app.ServerPort()
		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           web.NewRouter(svcs),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
		color.Cyan("commerce server listening on :%d", port)

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
