package main

import (
	"context"
	"log"

	"soly-ticketing/config"
	"soly-ticketing/internal/cache"
	"soly-ticketing/internal/database"
	"soly-ticketing/internal/handler"
	"soly-ticketing/internal/queue"
	"soly-ticketing/internal/repository"
	"soly-ticketing/internal/service"
	"soly-ticketing/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env 不存在時直接吃環境變數
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	// repositories
	adTypeRepo := repository.NewAdTypeRepository(pool)
	reservationRepo := repository.NewAdReservationRepository(pool)
	directoryRepo := repository.NewDirectoryRepository(pool)
	seatingRepo := repository.NewSeatingRepository(pool)
	categoryRepo := repository.NewTicketCategoryRepository(pool)
	auditRepo := repository.NewAuditRepository(pool)

	// redis 閘門與稽核隊列
	inventoryManager := cache.NewAdSlotInventoryManager(rdb)
	reservationQueue, err := queue.NewRedisStreamReservationQueue(rdb, "", nil)
	if err != nil {
		log.Fatalf("Failed to initialize reservation queue: %v", err)
	}

	// services
	adService := service.NewAdService(pool, adTypeRepo, reservationRepo, directoryRepo,
		inventoryManager, reservationQueue, cfg.Ads.WindowDays)
	seatingService := service.NewSeatingService(seatingRepo, categoryRepo, directoryRepo)

	// 稽核 worker
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	auditWorker := worker.NewAuditWorker(auditRepo, reservationQueue)
	if err := auditWorker.Start(ctx); err != nil {
		log.Fatalf("Failed to start audit worker: %v", err)
	}

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewAdHandler(adService).RegisterRoutes(router)
	handler.NewSeatingHandler(seatingService).RegisterRoutes(router)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
