package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"parley-chat/config"
	"parley-chat/internal/redis"
	"parley-chat/internal/repository"
	"parley-chat/internal/server"
	"parley-chat/internal/services"
	"parley-chat/pkg/database"
	"parley-chat/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	mode := logger.DevelopmentMode
	if cfg.AppMode == "release" {
		mode = logger.ProductionMode
	}
	appLogger := logger.New(mode)
	logger.SetGlobalLogger(appLogger)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := repository.InitSchema(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	redisClient := redis.NewClient(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
	})
	cacheConfig := redis.DefaultCacheConfig()
	if cfg.TokenCacheTTLMin > 0 {
		cacheConfig.TokenTTL = time.Duration(cfg.TokenCacheTTLMin) * time.Minute
	}
	cache := redis.NewCacheStore(redisClient, cacheConfig)
	if err := cache.Ping(context.Background()); err != nil {
		appLogger.Errorf("Redis unreachable, serving without warm cache: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewChatRoomRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	authService := services.NewAuthService(userRepo, cache)
	roomService := services.NewRoomService(roomRepo, userRepo)
	messageService := services.NewMessageService(db, messageRepo, userRepo, roomRepo)

	r := server.NewRouter(cfg.AppMode, appLogger, authService, roomService, messageService)

	appLogger.Infof("Starting server on port %s", cfg.AppPort)
	if err := r.Run(fmt.Sprintf(":%s", cfg.AppPort)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
