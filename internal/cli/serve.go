package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"tzconv/internal/platform/config"
	"tzconv/internal/platform/logger"
	phttp "tzconv/internal/platform/net/http"
	"tzconv/internal/services/api"

	"github.com/spf13/cobra"
)

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve conversions over HTTP",
		Long: `Serve the converter as a JSON API until interrupted.

  GET /v1/convert?time=1pm&origin=est&destination=bst
  GET /v1/zones?filter=europe
  GET /v1/meta/health
  GET /healthz
  GET /docs/index.html  (with TZCONV_HTTP_DOCS=true)

The listen address comes from TZCONV_HTTP_ADDR (default :4000) and
cross-origin callers from TZCONV_HTTP_CORS_ORIGINS.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			httpCfg := a.cfg.Prefix(config.AppPrefix + "HTTP_")
			srv := phttp.NewServer(httpCfg)

			api.Mount(srv.Router(), api.Options{
				Config:      httpCfg,
				Logger:      logger.Get(),
				Clock:       a.clock,
				Converter:   a.svc,
				CORSOrigins: a.st.CORSOrigins,
				Timeout:     httpCfg.MayDuration("TIMEOUT", 10*time.Second),
				MaxInFlight: httpCfg.MayInt("MAX_IN_FLIGHT", 0),
				EnableDocs:  httpCfg.MayBool("DOCS", false),
			})

			return srv.Run(ctx)
		},
	}
}
