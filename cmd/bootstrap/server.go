package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"slotbook/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
)

var ServerModule = fx.Module("server",
	fx.Provide(
		func() *gin.Engine {
			return gin.New()
		},
		NewHTTPServer,
	),
	fx.Invoke(StartServer),
)

func NewHTTPServer(engine *gin.Engine, cfg config.Config) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           otelhttp.NewHandler(engine, "slotbook"),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// @title           slotbook
// @version         1.0
// @description     Availability and booking conflict engine

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func StartServer(lc fx.Lifecycle, srv *http.Server, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("starting server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return srv.Shutdown(ctx)
		},
	})
}
