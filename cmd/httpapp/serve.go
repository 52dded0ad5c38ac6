// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xmidt-org/httpapp"
	"github.com/xmidt-org/httpapp/appfx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Binds the server and serves until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}

			debug, _ := cmd.Flags().GetBool(debugFlag)
			logger, err := newLogger(debug)
			if err != nil {
				return err
			}

			defer logger.Sync() //nolint:errcheck
			return serve(cmd.Context(), v, logger)
		},
	}

	cmd.Flags().AddFlagSet(serveFlags())
	return cmd
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func foo(response http.ResponseWriter, _ *http.Request) {
	response.Header().Set("Content-Type", "text/plain")
	response.Write([]byte("bar"))
}

// serveOptions assembles the fx.App that binds and serves.
func serveOptions(v *viper.Viper, logger *zap.Logger) fx.Option {
	return fx.Options(
		fx.Supply(logger),
		appfx.Logger(),
		appfx.ForViper(v, ""),
		appfx.Provide(),
		appfx.Metrics("httpapp"),
		appfx.Route(
			httpapp.Handle("/foo", http.HandlerFunc(foo), http.MethodGet),
			httpapp.Handle("/metrics", promhttp.Handler(), http.MethodGet),
		),
		appfx.AppOption(
			httpapp.WithBinder(httpapp.HTTPBinder{
				Logger:        logger,
				ServerOptions: []httpapp.Option[http.Server]{httpapp.ErrorLog(logger)},
			}),
		),
	)
}

// serve runs the fx.App until it receives SIGINT or SIGTERM, or until the
// server stops on its own.
func serve(ctx context.Context, v *viper.Viper, logger *zap.Logger) error {
	app := fx.New(serveOptions(v, logger))
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	sig := <-app.Wait()
	logger.Info("stopping", zap.Stringer("signal", sig))

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		return err
	}

	if sig.ExitCode != 0 {
		return httpapp.UseExitCode(
			fmt.Errorf("server exited with code %d", sig.ExitCode),
			sig.ExitCode,
		)
	}

	return nil
}
