package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/grocery-storefront/docs"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/cache"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/config"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/health"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/metrics"
	repository "github.com/aaravmahajanofficial/grocery-storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/grocery-storefront/internal/services"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/tracing"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils"
	"github.com/aaravmahajanofficial/grocery-storefront/pkg/sendgrid"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						Grocery Storefront API
//	@version					1.0
//	@description				Bilingual grocery storefront: catalog, session cart, custom boxes and WhatsApp checkout hand-off.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	shutdownTracing, err := tracing.Setup(context.Background(), cfg.OTel, health.Version)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	db, err := repository.NewDatabase(&cfg.Database)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	if err := repository.Migrate(db); err != nil {
		slog.Error("❌ Error migrating the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Redis connection closed")
		}
	}()

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	productCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	productRepo := repository.NewProductRepo(db)
	adminRepo := repository.NewAdminRepo(db)
	maskRepo := repository.NewMaskRepo(redisClient)
	sessionRepo := repository.NewSessionRepo(redisClient, cfg.Session.TTL)
	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg.RateConfig)

	pricing := cart.Pricing{DeliveryFee: cfg.Pricing.DeliveryFee, MinimumOrder: cfg.Pricing.MinimumOrder}
	sessions := service.NewSessionStore(sessionRepo)

	var orderCopy *service.OrderCopy
	if cfg.SendGrid.NotificationsEnabled {
		orderCopy = &service.OrderCopy{
			Mailer: sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName),
			To:     cfg.SendGrid.OwnerEmail,
		}
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	catalogService := service.NewCatalogService(productRepo, maskRepo, productCache)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartService := service.NewCartService(sessions, catalogService, pricing)
	cartHandler := handlers.NewCartHandler(cartService)
	boxService := service.NewBoxService(sessions, catalogService, pricing)
	boxHandler := handlers.NewBoxHandler(boxService)
	checkoutService := service.NewCheckoutService(sessions, utils.NewValidator(), pricing, cfg.Checkout, orderCopy)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	preferenceService := service.NewPreferenceService(sessions)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)
	adminProductService := service.NewAdminProductService(productRepo, maskRepo, catalogService)
	adminProductHandler := handlers.NewAdminProductHandler(adminProductService)
	authService := service.NewAuthService(adminRepo, rateLimitRepo, jwtKey, time.Duration(cfg.Security.JWTExpiryHours)*time.Hour)
	authHandler := handlers.NewAuthHandler(authService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", health.Version))

	// shopper routes carry the X-Session-ID session; admin routes carry a bearer token
	shopper := func(h http.HandlerFunc) http.Handler { return middleware.Session(h) }
	admin := authMiddleware.Authenticate

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.Handle("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.Handle("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.Handle("GET /api/v1/boxes", catalogHandler.ListBoxes())
	routerMux.Handle("GET /api/v1/cart", shopper(cartHandler.GetCart()))
	routerMux.Handle("DELETE /api/v1/cart", shopper(cartHandler.ClearCart()))
	routerMux.Handle("POST /api/v1/cart/items", shopper(cartHandler.AddItem()))
	routerMux.Handle("PUT /api/v1/cart/items/{id}", shopper(cartHandler.UpdateQuantity()))
	routerMux.Handle("DELETE /api/v1/cart/items/{id}", shopper(cartHandler.RemoveItem()))
	routerMux.Handle("GET /api/v1/custom-boxes", shopper(boxHandler.ListBoxes()))
	routerMux.Handle("POST /api/v1/custom-boxes", shopper(boxHandler.SaveBox()))
	routerMux.Handle("DELETE /api/v1/custom-boxes/{id}", shopper(boxHandler.DeleteBox()))
	routerMux.Handle("POST /api/v1/custom-boxes/{id}/edit", shopper(boxHandler.EditBox()))
	routerMux.Handle("GET /api/v1/custom-boxes/draft", shopper(boxHandler.GetDraft()))
	routerMux.Handle("DELETE /api/v1/custom-boxes/draft", shopper(boxHandler.ClearDraft()))
	routerMux.Handle("POST /api/v1/custom-boxes/draft/items", shopper(boxHandler.AddToDraft()))
	routerMux.Handle("DELETE /api/v1/custom-boxes/draft/items/{id}", shopper(boxHandler.RemoveFromDraft()))
	routerMux.Handle("POST /api/v1/custom-boxes/draft/cart", shopper(boxHandler.AddDraftToCart()))
	routerMux.Handle("GET /api/v1/preferences/language", shopper(preferenceHandler.GetLanguage()))
	routerMux.Handle("PUT /api/v1/preferences/language", shopper(preferenceHandler.SetLanguage()))
	routerMux.Handle("POST /api/v1/checkout", shopper(checkoutHandler.Checkout()))
	routerMux.Handle("POST /api/v1/admin/login", authHandler.Login())
	routerMux.Handle("GET /api/v1/admin/products", admin(adminProductHandler.ListProducts()))
	routerMux.Handle("POST /api/v1/admin/products", admin(adminProductHandler.CreateProduct()))
	routerMux.Handle("PUT /api/v1/admin/products/{id}", admin(adminProductHandler.UpdateProduct()))
	routerMux.Handle("DELETE /api/v1/admin/products/{id}", admin(adminProductHandler.DeleteProduct()))
	routerMux.Handle("POST /api/v1/admin/products/seed", admin(adminProductHandler.SeedProducts()))
	routerMux.Handle("POST /api/v1/admin/products/dedupe", admin(adminProductHandler.RemoveDuplicates()))
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining, metrics innermost so it sees the matched pattern
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.OTel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}
