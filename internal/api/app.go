package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"PayPalCheckout/config"
	"PayPalCheckout/internal/api/handlers"
	"PayPalCheckout/internal/shared/domain/checkout"
	"PayPalCheckout/internal/shared/external/paypal"
	"PayPalCheckout/pkg/health"
	"PayPalCheckout/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const (
	// ServiceName labels health probe responses.
	ServiceName = "paypal-checkout"

	shutdownTimeout = 10 * time.Second
)

func Run(cfg config.Config) {
	logger.Setup(logger.Options{Level: cfg.LogLevel, Console: cfg.LogFormat == "console"})
	l := logger.New(cfg.LogLevel)

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	paypalClient := paypal.New(
		cfg.PayPalBaseURL,
		checkout.Credentials{ClientID: cfg.PayPalClientID, ClientSecret: cfg.PayPalClientSecret},
		&http.Client{Timeout: cfg.HTTPPayPalClientTimeout},
	)

	paypalAddr, err := paypalClient.Addr()
	if err != nil {
		l.Fatal(fmt.Errorf("api - Run - paypal address: %w", err))
	}
	healthRegistry := health.NewRegistry(ServiceName, health.NewTCPChecker("paypal", paypalAddr))

	checkoutService := checkout.NewService(paypalClient, paypalClient)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	engine := NewGinEngine(l)
	NewRouter(checkoutHandler, healthRegistry).SetUp(engine)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("starting checkout HTTP server", "port", cfg.Port, "paypal_base_url", cfg.PayPalBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down checkout HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			// In-flight requests were cut off. Not fatal.
			l.Error("api - Run - shutdown: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		l.Fatal(fmt.Errorf("api - Run: %w", err))
	}
	l.Info("checkout HTTP server stopped")
}
