package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jackoske/AllGoGrand/audit"
	"github.com/jackoske/AllGoGrand/config"
	"github.com/jackoske/AllGoGrand/controller"
	"github.com/jackoske/AllGoGrand/db"
	"github.com/jackoske/AllGoGrand/ledger"
	logger "github.com/jackoske/AllGoGrand/logging"
	"github.com/jackoske/AllGoGrand/router"
	"github.com/jackoske/AllGoGrand/service"
	"github.com/jackoske/AllGoGrand/util"
	"github.com/jackoske/AllGoGrand/verify"
	"github.com/jackoske/AllGoGrand/weather"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize collaborators
	gateway := ledger.NewAlgodClient(
		config.GetString("ledger.address"),
		config.GetString("ledger.token"),
	)
	verifier := verify.New(gateway)
	provider := weather.New()

	validationUtil := util.NewValidationUtil()
	cacheService := util.NewCacheService(config.GetDuration("weather.cacheTTL"))

	auditRepository, err := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"))
	if err != nil {
		logger.Fatal("Failed to initialize audit repository", zap.Error(err))
	}
	auditService := audit.NewService(auditRepository)

	// Initialize services
	tokenDuration := time.Duration(config.GetInt("marketplace.tokenDuration")) * time.Second
	brokerService := service.NewBrokerService(
		verifier,
		provider,
		validationUtil,
		cacheService,
		eventBus,
		auditService,
		service.HintConfig{
			RequiredTokenType: "OpenWeather Access Token",
			PriceMicroAlgos:   config.GetUint64("marketplace.priceMicro"),
			MarketplaceAppID:  config.GetString("marketplace.appId"),
			PurchaseEndpoint:  "/marketplace/buy",
			TokenID:           "weather_access_token",
			TokenDuration:     tokenDuration,
		},
	)
	tokenService := service.NewTokenService(
		gateway,
		validationUtil,
		config.GetUint64("marketplace.assetId"),
		tokenDuration,
	)
	services := &service.Services{
		Broker: brokerService,
		Token:  tokenService,
	}

	// Initialize controllers and routes
	controllers := controller.NewControllers(services, gateway)

	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(controllers, 100, time.Minute)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
