package api

import (
	"net/http"
	"time"

	"checkout-payments/internal/infra/metrics"
	"checkout-payments/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

const livenessText = "Checkout payments backend is running"

type Options struct {
	AllowedOrigins    []string
	RequestTimeout    time.Duration
	CreateOrderLimit  int
	CreateOrderWindow time.Duration
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Only enable behind a proxy that overwrites those headers.
	TrustProxy        bool
}

// Server wires the checkout routes to PaymentUseCase.
type Server struct {
	payUC   usecase.PaymentUseCase
	limiter Limiter
	opts    Options
	log     *zerolog.Logger
}

// NewServer constructs the HTTP layer. limiter may be nil to disable rate limiting.
func NewServer(payUC usecase.PaymentUseCase, limiter Limiter, opts Options, logger *zerolog.Logger) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	return &Server{payUC: payUC, limiter: limiter, opts: opts, log: logger}
}

// Handler returns the full router wrapped in CORS.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	if s.opts.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(
		TraceID(s.log),
		RequestLog(s.log),
		Recover(s.log),
		Timeout(s.opts.RequestTimeout),
	)
	s.Register(r)

	c := cors.New(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
	})
	return c.Handler(r)
}

// Register attaches handlers to the provided router.
func (s *Server) Register(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(livenessText))
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.With(RateLimit(s.limiter, "/create-order", s.opts.CreateOrderLimit, s.opts.CreateOrderWindow, s.log)).
		Post("/create-order", s.handleCreateOrder)
	r.Post("/verify-payment", s.handleVerifyPayment)
}
