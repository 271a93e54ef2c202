package api

import (
	"net/http"
	"time"

	_ "github.com/AlexZinkM/gif-portal/docs"
	"github.com/AlexZinkM/gif-portal/internal/config"
	"github.com/AlexZinkM/gif-portal/internal/handler"
	"github.com/AlexZinkM/gif-portal/internal/portal"
	"github.com/AlexZinkM/gif-portal/internal/wallet"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// SetupRouter sets up router with handlers
func SetupRouter(cfg *config.Config, p *portal.Portal, password wallet.PasswordSource, logger *zap.Logger) http.Handler {
	portalHandler := handler.NewPortalHandler(p, cfg)
	walletHandler := handler.NewWalletHandler(p, cfg.WalletFilePath, password)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Portal endpoints
	mux.HandleFunc("/portal/status", portalHandler.Status)
	mux.HandleFunc("/portal/connect", portalHandler.Connect)
	mux.HandleFunc("/portal/disconnect", portalHandler.Disconnect)
	mux.HandleFunc("/portal/initialize", portalHandler.Initialize)
	mux.HandleFunc("/portal/gifs", portalHandler.Gifs)

	// Wallet endpoints
	mux.HandleFunc("/wallet/generate", walletHandler.Generate)
	mux.HandleFunc("/wallet/balance", walletHandler.GetBalance)
	mux.HandleFunc("/wallet/airdrop", walletHandler.Airdrop)

	mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("Unable to write healthcheck", zap.Error(err))
		}
	})

	return withRequestLogging(mux, logger)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func withRequestLogging(next http.Handler, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		logger.Info("HTTP request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
