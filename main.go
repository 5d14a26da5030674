// main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"dira-storefront/catalog"
	"dira-storefront/checkout"
	"dira-storefront/config"
	"dira-storefront/confirmation"
	"dira-storefront/controllers"
	"dira-storefront/i18n"
	"dira-storefront/pricing"
	"dira-storefront/routes"
	"dira-storefront/session"
	"dira-storefront/store"
	"dira-storefront/utils"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Set the session token secret
	utils.JwtKey = []byte(cfg.SessionSecret)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load the catalog from MongoDB when configured
	cat := catalog.Default()
	if cfg.MongoDB.URI != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		client, err := utils.ConnectDB(connectCtx, cfg.MongoDB.URI)
		if err != nil {
			cancel()
			logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		cat, err = catalog.LoadFromMongo(connectCtx, client.Database(cfg.MongoDB.Database).Collection("products"))
		cancel()
		if err != nil {
			logger.Fatal("Failed to load catalog", zap.Error(err))
		}
		// The catalog is immutable once loaded
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("MongoDB disconnect failed", zap.Error(err))
		}
	}
	logger.Info("Catalog loaded", zap.Int("products", cat.Len()))

	// Last-order snapshots live in Redis when configured
	var snapshots store.SnapshotStore = store.NewMemoryStore()
	if cfg.Redis.Addr != "" {
		redisClient, err := utils.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		snapshots = store.NewRedisStore(redisClient, cfg.Redis.SnapshotTTL)
	}

	// Initialize EmailService
	var emailService *utils.EmailService
	switch cfg.Email.Provider {
	case config.EmailProviderSendGrid:
		emailService = utils.NewSendGridEmailService(cfg.Email.SendGridAPIKey, cfg.Email.Sender, logger)
	case config.EmailProviderPostmark:
		emailService = utils.NewPostmarkEmailService(cfg.Email.PostmarkToken, cfg.Email.Sender, logger)
	default:
		emailService = utils.NewDisabledEmailService()
	}
	emailService.Currency = cfg.Shop.Currency

	orderEvents := utils.NewOrderEvents(cfg.Kafka.Brokers, cfg.Kafka.OrderTopic)
	defer orderEvents.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := utils.NewMetrics(registry)

	translator := i18n.NewDefault()
	calculator := pricing.NewCalculator(cfg.Shop.DeliveryFee, cfg.Shop.VATRate)
	orchestrator := checkout.NewOrchestrator(
		checkout.Config{
			ShopPhone:     cfg.Shop.WhatsAppNumber,
			Currency:      cfg.Shop.Currency,
			DispatchDelay: cfg.Shop.DispatchDelay,
		},
		calculator,
		checkout.NewWhatsAppDispatcher(),
		snapshots,
		checkout.NewTxIDGenerator(),
		logger,
		emailService,
		orderEvents,
	)
	if !orchestrator.Configured() {
		logger.Warn("SHOP_WHATSAPP_NUMBER is not configured; checkout will refuse orders")
	}
	renderer := confirmation.NewRenderer(snapshots, translator, cfg.Shop.Currency, cfg.Shop.VATRate, logger)

	sessions := session.NewManager(cfg.SessionTTL)
	go sessions.RunSweeper(ctx, time.Minute, logger)

	// Initialize controllers
	router := routes.NewRouter(routes.Controllers{
		Landing:  controllers.NewLandingController(cat, translator),
		Product:  controllers.NewProductController(cat, translator),
		Cart:     controllers.NewCartController(cat, translator),
		Order:    controllers.NewOrderController(calculator, pricing.DefaultPromos(), orchestrator, renderer, translator, metrics, logger),
		Language: controllers.NewLanguageController(translator),
	}, routes.Infra{
		Sessions:   sessions,
		Translator: translator,
		Metrics:    metrics,
		Gatherer:   registry,
		Logger:     logger,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server
	go func() {
		logger.Info("Server is running", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	orchestrator.Wait()
	logger.Info("Server exited")
}
