package routes

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	_ "mecanica_parts/docs" // This will be auto-generated
	"mecanica_parts/internal/adapter/http/handlers"
	"mecanica_parts/internal/adapter/persistence/queue"
	repository2 "mecanica_parts/internal/adapter/persistence/repository"
	"mecanica_parts/internal/infrastructure/config"
	"mecanica_parts/internal/infrastructure/database"
	"mecanica_parts/internal/infrastructure/logger"
	"mecanica_parts/internal/infrastructure/metrics"
	"mecanica_parts/internal/scanner"
	"mecanica_parts/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	slogger := logger.New(cfg.App.Env)

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	syncUseCase := getRoutes(cfg, slogger)
	startSyncLoop(cfg.Sync.Interval, syncUseCase, slogger)

	if err := router.Run(cfg.HTTP.Addr); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config, slogger *slog.Logger) usecase.ISyncUseCase {
	ddb := database.ConnectDynamoDB()
	store := repository2.NewRecordStoreDynamoRepository(ddb)

	scanQueue, err := queue.Open(cfg.Queue.Path)
	if err != nil {
		log.Fatalf("Failed to open scan queue %q: %v", cfg.Queue.Path, err)
	}

	orderUseCase := usecase.NewOrderUseCase(store, scanQueue)
	scanUseCase := usecase.NewScanUseCase(store, scanQueue, cfg.Commit.Timeout)
	syncUseCase := usecase.NewSyncUseCase(scanQueue, scanUseCase, slogger)
	finalizeUseCase := usecase.NewFinalizeUseCase(store, scanQueue, scanUseCase)

	cameras := scanner.NewManager(scanner.NewPipeline(), scanner.SessionConfig{
		SingleShot:    cfg.Camera.SingleShot,
		FrameInterval: cfg.Camera.FrameInterval,
	}, slogger)

	orderHandler := handlers.NewOrderHandler(orderUseCase, scanUseCase)
	scanHandler := handlers.NewScanHandler(scanUseCase, syncUseCase, cameras)
	finalizeHandler := handlers.NewFinalizeHandler(finalizeUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPartsRoutes(v1, orderHandler, scanHandler, finalizeHandler)

	return syncUseCase
}

// startSyncLoop reconciles the offline queue in the background so scans
// queued during an outage drain without operator action.
func startSyncLoop(interval time.Duration, sync usecase.ISyncUseCase, slogger *slog.Logger) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			results, err := sync.DrainAll(context.Background())
			if err != nil {
				slogger.Error("background sync failed", "err", err)
				continue
			}
			for orderID, r := range results {
				if len(r.Committed) > 0 || len(r.StillFailed) > 0 {
					slogger.Info("background sync pass", "order_id", orderID, "committed", len(r.Committed), "retained", len(r.StillFailed))
				}
			}
		}
	}()
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
