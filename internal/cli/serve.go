package cli

import (
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/kwalters/stay-catalog/internal/config"
	"github.com/kwalters/stay-catalog/internal/logging"
	"github.com/kwalters/stay-catalog/internal/web"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the HTTP JSON API server. Configuration comes from the environment; --addr overrides the listen address.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: SC_LISTEN_ADDR or :8080)")

	return cmd
}

func runServe(addr string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.DevMode)

	if addr == "" {
		addr = cfg.ListenAddr
	}

	svcs, err := buildServices(cfg)
	if err != nil {
		return err
	}
	defer closeDB(svcs.database)

	server := web.NewServer(svcs.catalog, svcs.auth, svcs.tokens)
	slog.Info("starting server", "addr", addr, "store", cfg.Store)
	return http.ListenAndServe(addr, logging.RequestLogger(server))
}
