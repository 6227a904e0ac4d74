package main

// @title Hellesylt Cruise Companion API
// @version 1.0.0
// @description Backend for a single-day shore excursion companion covering the Hellesylt/Geiranger port call. Serves the timed itinerary with live statuses, the checkpoint countdown, the budget ledger with EUR/NOK conversion, map markers with distances from the latest device position, the weather and daylight panels, the Norwegian phrasebook and the audio guide narration slot.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/aquihaydragonesgonzalo/hellesylt-crucero/docs/swagger"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/config"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/content"
	httpDelivery "github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/delivery/http"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/delivery/http/handler"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain/repository"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/infrastructure/exchangerate"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/infrastructure/openmeteo"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/infrastructure/speech"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/logger"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/repository/cache"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/repository/redisstream"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/state"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/usecase"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/worker"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/worker/position"
)

const positionConsumerGroup = "companion-position"

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Hellesylt Cruise Companion")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	// 3. Port-of-call clock: timezone and checkpoint times
	location, err := time.LoadLocation(cfg.Port.Timezone)
	if err != nil {
		log.Fatal("Failed to load port timezone", zap.Error(err))
	}

	arrival, err := domain.ParseClock(cfg.Port.ArrivalTime)
	if err != nil {
		log.Fatal("Invalid arrival time", zap.Error(err))
	}
	allAboard, err := domain.ParseClock(cfg.Port.AllAboardTime)
	if err != nil {
		log.Fatal("Invalid all-aboard time", zap.Error(err))
	}
	checkpoints := domain.Checkpoints{Arrival: arrival, AllAboard: allAboard}

	// 4. Optional Redis: last-known-good cache and position stream.
	// Without it the service runs fully in process memory.
	var (
		redisClient *cache.Redis
		cacheRepo   repository.CacheRepository
		streamRepo  repository.StreamRepository
	)
	manager := worker.NewManager(log)

	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		log.Info("Redis connected")

		cacheRepo = cache.NewCacheRepository(redisClient)
		streamRepo = redisstream.NewStreamRepository(redisClient.Client(), log)
	}

	// 5. In-process state and static day content
	store := content.NewStore()
	appState := state.New(cfg.Exchange.FallbackRate)

	// 6. External-data clients
	rateRepo := exchangerate.NewExchangeRateClient(&cfg.Exchange, log)
	weatherRepo, err := openmeteo.NewOpenMeteoClient(&cfg.Weather, &cfg.Port, log)
	if err != nil {
		log.Fatal("Failed to initialize weather client", zap.Error(err))
	}
	speechEngine := speech.NewEngine(&cfg.Narration, log)

	// 7. Initialize use cases
	timelineUC := usecase.NewTimelineUseCase(store, appState, location, log)
	countdownUC := usecase.NewCountdownUseCase(checkpoints, location, log)
	budgetUC := usecase.NewBudgetUseCase(store, appState, log)
	mapUC := usecase.NewMapUseCase(store, appState, streamRepo, log)
	guideUC := usecase.NewGuideUseCase(store, appState, location, log)
	narrationUC := usecase.NewNarrationUseCase(store, speechEngine, log)
	refreshUC := usecase.NewRefreshUseCase(
		rateRepo,
		weatherRepo,
		cacheRepo,
		appState,
		&cfg.Exchange,
		&cfg.Weather,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	itineraryHandler := handler.NewItineraryHandler(timelineUC, log)
	countdownHandler := handler.NewCountdownHandler(countdownUC, log)
	budgetHandler := handler.NewBudgetHandler(budgetUC, log)
	mapHandler := handler.NewMapHandler(mapUC, log)
	guideHandler := handler.NewGuideHandler(guideUC, log)
	narrationHandler := handler.NewNarrationHandler(narrationUC, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		itineraryHandler,
		countdownHandler,
		budgetHandler,
		mapHandler,
		guideHandler,
		narrationHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Seed snapshots and launch the fetch-once refreshes
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	refreshUC.SeedFromCache(rootCtx)
	refreshUC.RunAll(rootCtx)

	// 11. Start the position stream consumer when Redis is wired
	if streamRepo != nil {
		manager.Register(position.NewWorker(streamRepo, appState, positionConsumerGroup, log))
		if err := manager.Start(rootCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
		log.Info("Position worker started")
	}

	// 12. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 13. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	rootCancel()

	if err := manager.Stop(); err != nil {
		log.Error("Worker shutdown error", zap.Error(err))
	}

	narrationUC.Stop(context.Background())

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
