package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/biased-framework/go-service/config"
	"github.com/biased-framework/go-service/internal/logging"
)

func NewServer(cfg config.ServerConfig, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// Serve runs srv until ctx is cancelled, then drains in-flight requests for
// at most shutdownTO.
func Serve(ctx context.Context, srv *http.Server, shutdownTO time.Duration) error {
	logger := logging.NewLogger(ctx)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("serve", "listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			logger.Errorf("serve", "listen on %s: %v", srv.Addr, err)
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Infof("shutdown", "draining connections (timeout %s)", shutdownTO)
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTO)
	defer cancel()

	if err := srv.Shutdown(sctx); err != nil {
		logger.Warnf("shutdown", "connections not drained: %v", err)
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
