package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"devconnector/internal/config"
	"devconnector/internal/db"
	apihttp "devconnector/internal/http"
	"devconnector/internal/repository"
	"devconnector/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	userRepo := repository.NewPgUserRepository(pool)
	profileRepo := repository.NewPgProfileRepository(pool)
	postRepo := repository.NewPgPostRepository(pool)

	loginWindow := time.Duration(cfg.LoginWindowMin) * time.Minute
	var loginLimiter service.LoginRateLimiter = service.NewLoginRateLimiter(loginWindow, cfg.LoginMaxTries)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			loginLimiter = service.NewRedisLoginRateLimiter(redisClient, loginWindow, cfg.LoginMaxTries)
		}
		cancel()
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	userSvc := service.NewUserService(logger, userRepo, profileRepo, cfg.BcryptCost, loginLimiter)
	profileSvc := service.NewProfileService(logger, profileRepo)
	postSvc := service.NewPostService(logger, postRepo)

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc)
	profileHandler := apihttp.NewProfileHandler(logger, profileSvc)
	postHandler := apihttp.NewPostHandler(logger, postSvc)
	router := apihttp.NewRouter(logger, jwtSvc, userSvc, userHandler, profileHandler, postHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
