// File: cmd/app/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"checkout-payments/internal/config"
	"checkout-payments/internal/domain/ports/adapter"
	payAdapters "checkout-payments/internal/infra/adapters/payment"
	"checkout-payments/internal/infra/api"
	"checkout-payments/internal/infra/logging"
	"checkout-payments/internal/infra/metrics"
	"checkout-payments/internal/infra/payment"
	red "checkout-payments/internal/infra/redis"
	"checkout-payments/internal/usecase"
)

// set via -ldflags "-X main.version=... -X main.commit=..."
var (
	version = "dev"
	commit  = "none"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---- CLI flags ----
	cfgPath := flag.String("config", config.DefaultPath, "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (noop gateway, console logs)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("[DEV MODE] Enabled")
	}

	metrics.MustRegister()
	metrics.SetBuildInfo(version, commit)

	// ---- Payment gateway ----
	var gateway adapter.PaymentGateway
	if cfg.Runtime.Dev && !cfg.GatewayConfigured() {
		gateway = payAdapters.NewNoopPaymentGateway()
		logger.Warn().Msg("razorpay keys not set; using noop gateway")
	} else {
		if !cfg.GatewayConfigured() {
			logger.Warn().Msg("RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET not set; order creation and verification will fail")
		}
		gateway = payAdapters.NewRazorpayGateway(cfg.Payment.Razorpay.KeyID, cfg.Payment.Razorpay.KeySecret)
	}
	verifier := payment.NewSignatureVerifier(cfg.Payment.Razorpay.KeySecret)
	paymentUC := usecase.NewPaymentUseCase(
		gateway,
		verifier,
		cfg.Payment.Razorpay.AllowedAmounts,
		cfg.Payment.Razorpay.Currency,
		logger,
		cfg.Runtime.Dev,
	)

	// ---- Redis (optional) ----
	var limiter api.Limiter
	if cfg.Redis.URL != "" {
		redisClient, err := red.NewClient(ctx, &cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable; rate limiting disabled")
		} else {
			defer redisClient.Close()
			limiter = red.NewRateLimiter(redisClient)
		}
	}

	// ---- HTTP server ----
	srv := api.NewServer(paymentUC, limiter, api.Options{
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		RequestTimeout:    cfg.Server.RequestTimeout,
		TrustProxy:        cfg.Server.TrustProxy,
		CreateOrderLimit:  cfg.RateLimit.CreateOrderLimit,
		CreateOrderWindow: cfg.RateLimit.CreateOrderWindow,
	}, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", cfg.Server.Port),
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Str("gateway", gateway.Name()).Msg("payment server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	// ---- Graceful shutdown ----
	select {
	case <-ctx.Done():
		logger.Info().Msg("shutdown requested")
	case err := <-errc:
		if err != nil {
			logger.Error().Err(err).Msg("http server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
}
