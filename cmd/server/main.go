package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/HammerMeetNail/bloomnext/internal/assets"
	"github.com/HammerMeetNail/bloomnext/internal/config"
	"github.com/HammerMeetNail/bloomnext/internal/database"
	"github.com/HammerMeetNail/bloomnext/internal/handlers"
	"github.com/HammerMeetNail/bloomnext/internal/logging"
	"github.com/HammerMeetNail/bloomnext/internal/middleware"
	"github.com/HammerMeetNail/bloomnext/internal/services"
	"github.com/HammerMeetNail/bloomnext/internal/services/ai"
)

const (
	productImageOrigin = "https://placehold.co"
	contactRateLimit   = 5
)

func main() {
	if err := run(); err != nil {
		logging.Error("Application error", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}

func run() error {
	logger := logging.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := logging.ParseLevel(cfg.Server.LogLevel)
	if cfg.Server.Debug {
		level = logging.LevelDebug
	}
	logger.SetLevel(level)
	logging.SetDefaultLevel(level)

	logger.Info("Starting BloomNext server...", map[string]interface{}{
		"env": cfg.Server.Environment,
	})

	ctx := context.Background()

	var redisDB *database.RedisDB
	if cfg.Redis.Enabled {
		logger.Info("Connecting to Redis", map[string]interface{}{
			"addr": cfg.Redis.Addr(),
		})
		redisDB, err = database.NewRedisDB(ctx, cfg.Redis)
		switch {
		case err != nil && cfg.Server.Environment == "development":
			logger.Warn("Redis unavailable; rate limiting disabled", map[string]interface{}{
				"error": err.Error(),
			})
		case err != nil:
			return fmt.Errorf("connecting to redis: %w", err)
		default:
			defer func() { _ = redisDB.Close() }()
			logger.Info("Connected to Redis")
		}
	}

	generator, generatorName, err := newGenerator(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("creating recommendation generator: %w", err)
	}

	handler, err := newRouter(routerDeps{
		cfg:           cfg,
		logger:        logger,
		redis:         redisDB,
		generator:     generator,
		generatorName: generatorName,
	})
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:        addr,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		// Recommendations may run up to the AI timeout; leave room for the JSON reply.
		WriteTimeout: cfg.AI.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Could not gracefully shutdown the server", map[string]interface{}{
				"error": err.Error(),
			})
		}
		close(done)
	}()

	logger.Info("Server listening", map[string]interface{}{
		"addr":            addr,
		"recommendations": generatorName,
	})
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	<-done
	logger.Info("Server stopped")
	return nil
}

// newGenerator picks the recommendation backend. Without an API key the stub
// serves development and every other environment reports recommendations as
// unavailable.
func newGenerator(ctx context.Context, cfg *config.Config, logger *logging.Logger) (ai.Generator, string, error) {
	if cfg.AI.Stub {
		logger.Info("Using stub recommendation generator")
		return ai.NewStubGenerator(), "stub", nil
	}

	gen, err := ai.NewGeminiGenerator(ctx, cfg.AI)
	switch {
	case errors.Is(err, ai.ErrAINotConfigured) && cfg.Server.Environment == "development":
		logger.Warn("GEMINI_API_KEY not set; using stub recommendation generator")
		return ai.NewStubGenerator(), "stub", nil
	case errors.Is(err, ai.ErrAINotConfigured):
		logger.Warn("GEMINI_API_KEY not set; recommendations are unavailable")
		return ai.UnavailableGenerator{}, "unavailable", nil
	case err != nil:
		return nil, "", err
	}

	logger.Info("Using Gemini recommendation generator", map[string]interface{}{
		"model": cfg.AI.Model,
	})
	return gen, "gemini", nil
}

type routerDeps struct {
	cfg           *config.Config
	logger        *logging.Logger
	redis         *database.RedisDB
	generator     ai.Generator
	generatorName string
}

func newRouter(d routerDeps) (http.Handler, error) {
	cfg := d.cfg

	// Services
	forms := services.NewFormValidator()
	notifier := services.NewConsoleNotifier()
	catalogService := services.NewCatalogService(nil)
	cartService := services.NewCartService(catalogService)
	authService := services.NewAuthService(forms)
	contactService := services.NewContactService(forms, notifier)
	checkoutService := services.NewCheckoutService(forms, notifier)
	recommendService := ai.NewService(d.generator, cfg.AI.Timeout)

	manifest := assets.NewManifest(cfg.Web.StaticDir)
	if err := manifest.Load(); err != nil {
		return nil, fmt.Errorf("loading asset manifest: %w", err)
	}

	// Handlers
	var redisCheck handlers.HealthChecker
	var counters middleware.CounterStore
	if d.redis != nil {
		redisCheck = d.redis
		counters = middleware.NewRedisCounterStore(d.redis.Client)
	}

	healthHandler := handlers.NewHealthHandler(redisCheck, d.generatorName)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService, cfg.Server.Secure)
	authHandler := handlers.NewAuthHandler(authService, cfg.Server.Secure)
	contactHandler := handlers.NewContactHandler(contactService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, cartService, cfg.Server.Secure)
	recommendHandler := handlers.NewRecommendationHandler(recommendService)
	pageHandler, err := handlers.NewPageHandler(cfg.Web.TemplatesDir, catalogService, cartService, manifest)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	// Middleware
	csrfMiddleware := middleware.NewCSRFMiddleware(cfg.Server.Secure)
	sessionMiddleware := middleware.NewSessionMiddleware()
	securityHeaders := middleware.NewSecurityHeaders(cfg.Server.Secure, productImageOrigin)
	cacheControl := middleware.NewCacheControl("/recommendations", "/contact", "/checkout", "/login", "/register")
	compress := middleware.NewCompress("/metrics")
	requestLogger := middleware.NewRequestLogger(d.logger)
	metrics := middleware.NewMetrics()

	aiRateLimiter := middleware.NewRateLimiter(counters, cfg.AI.RateLimit, time.Hour, "ratelimit:ai", nil)
	contactRateLimiter := middleware.NewRateLimiter(counters, contactRateLimit, time.Hour, "ratelimit:contact", nil)

	mux := http.NewServeMux()

	// Health and metrics
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/csrf", csrfMiddleware.GetToken)

	// Catalog
	mux.HandleFunc("GET /api/products", catalogHandler.List)
	mux.HandleFunc("GET /api/products/filters", catalogHandler.Filters)
	mux.HandleFunc("GET /api/products/seasonal", catalogHandler.Seasonal)
	mux.HandleFunc("GET /api/products/{id}", catalogHandler.Get)

	// Cart
	mux.HandleFunc("GET /api/cart", cartHandler.Get)
	mux.HandleFunc("POST /api/cart/items", cartHandler.AddItem)
	mux.HandleFunc("PUT /api/cart/items/{id}", cartHandler.UpdateItem)
	mux.HandleFunc("DELETE /api/cart/items/{id}", cartHandler.RemoveItem)
	mux.HandleFunc("DELETE /api/cart", cartHandler.Clear)

	// Auth
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/auth/me", authHandler.Me)

	// Forms
	mux.Handle("POST /api/contact", contactRateLimiter.Middleware(http.HandlerFunc(contactHandler.Submit)))
	mux.HandleFunc("POST /api/checkout", checkoutHandler.PlaceOrder)
	mux.Handle("POST /api/recommendations", aiRateLimiter.Middleware(http.HandlerFunc(recommendHandler.Recommend)))

	mux.HandleFunc("/api/", handlers.APINotFound)

	// Static files
	fs := http.FileServer(http.Dir(cfg.Web.StaticDir))
	mux.Handle("GET /static/", http.StripPrefix("/static/", fs))

	// Pages
	mux.HandleFunc("GET /{$}", pageHandler.Home)
	mux.HandleFunc("GET /recommendations", pageHandler.Recommendations)
	mux.HandleFunc("GET /contact", pageHandler.Contact)
	mux.HandleFunc("GET /checkout", pageHandler.Checkout)
	mux.HandleFunc("GET /login", pageHandler.Login)
	mux.HandleFunc("GET /register", pageHandler.Register)
	mux.HandleFunc("/", pageHandler.NotFound)

	// Build middleware chain (order matters: outermost last). Metrics wraps
	// the mux directly so it sees the matched route pattern.
	var handler http.Handler = mux
	handler = metrics.Apply(handler)
	handler = sessionMiddleware.Authenticate(handler)
	handler = csrfMiddleware.Protect(handler)
	handler = cacheControl.Apply(handler)
	handler = compress.Apply(handler)
	handler = securityHeaders.Apply(handler)
	handler = requestLogger.Apply(handler)

	return handler, nil
}
