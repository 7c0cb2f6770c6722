package brieflyservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/StronkOnes/BrieflyOS/internal/api"
	"github.com/StronkOnes/BrieflyOS/internal/completion"
	"github.com/StronkOnes/BrieflyOS/internal/config"
	"github.com/StronkOnes/BrieflyOS/internal/factory"
	"github.com/StronkOnes/BrieflyOS/internal/logger"
	"github.com/StronkOnes/BrieflyOS/internal/pipeline"
	"github.com/rs/zerolog"
)

// Run starts the BrieflyOS backend HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("briefly-backend")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Str("data_dir", cfg.DataDir).
		Int("http_port", cfg.HTTPPort).
		Str("completion_model", cfg.CompletionModel).
		Msg("Briefly backend starting")

	// Cancellable root context bound to SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := factory.NewStore(cfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Store adapter unavailable")
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn().Err(err).Msg("store close failed")
		}
	}()

	client := completion.NewOpenRouter(
		cfg.OpenRouterBaseURL,
		cfg.OpenRouterAPIKey,
		cfg.CompletionModel,
		time.Duration(cfg.CompletionTimeoutSeconds)*time.Second,
	)
	router := api.NewRouter(st, pipeline.NewService(client), log)

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		// The article pipeline makes two sequential completion calls,
		// each with its own upstream timeout, so the write deadline must
		// outlast the worst case of both.
		WriteTimeout: time.Duration(2*cfg.CompletionTimeoutSeconds+10) * time.Second,
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}
