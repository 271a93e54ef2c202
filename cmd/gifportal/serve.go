package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AlexZinkM/gif-portal/internal/api"
	"github.com/AlexZinkM/gif-portal/internal/config"
	"github.com/AlexZinkM/gif-portal/internal/keypair"
	"github.com/AlexZinkM/gif-portal/internal/logging"
	"github.com/AlexZinkM/gif-portal/internal/portal"
	"github.com/AlexZinkM/gif-portal/internal/wallet"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the portal HTTP API",
		Long: `Loads the board keypair, asks for the wallet password, looks for the
wallet keystore and tries a silent connect. The JSON API and Swagger UI are
then served until interrupted.`,
		Example: `  # Start server on PORT (default 8080)
  gifportal serve

  # Start server on custom port
  gifportal serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}

			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			kp, err := keypair.Load(cfg.KeypairPath)
			if err != nil {
				return fmt.Errorf("%w (run createkeypair first)", err)
			}

			password, err := config.PromptForPassword()
			if err != nil {
				return err
			}
			defer password.Clear()

			env := wallet.NewFileEnvironment(cfg.WalletFilePath, password, cfg.WalletTrusted, logger)
			bridge := portal.NewBridge(cfg, kp, logger)
			p := portal.New(env, bridge, logger)

			d := p.Load(cmd.Context())
			logger.Info("Portal loaded",
				zap.Bool("provider_found", d.Found),
				zap.String("state", string(p.Status().State)),
				zap.String("base_account", bridge.BaseAccount().String()),
				zap.String("program_id", bridge.ProgramID().String()),
			)

			addr := ":" + cfg.Port
			server := &http.Server{
				Addr:              addr,
				Handler:           api.SetupRouter(cfg, p, password, logger),
				ReadHeaderTimeout: 10 * time.Second,
			}

			serverErr := make(chan error, 1)
			go func() {
				logger.Info("GIF portal available", zap.String("addr", addr), zap.String("swagger", "http://localhost"+addr+"/swagger/"))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			select {
			case <-cmd.Context().Done():
				logger.Info("Shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error("Server shutdown failed", zap.Error(err))
					return err
				}
				logger.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")

	return cmd
}
