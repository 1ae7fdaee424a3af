package main

import (
	"log"
	"os"
	"strconv"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"spots_backend/internal/app/di"
	"spots_backend/internal/app/middleware"
	"spots_backend/internal/app/router"
	authadapters "spots_backend/internal/feature/auth/adapters"
	authhandler "spots_backend/internal/feature/auth/transport/handler"
	authusecase "spots_backend/internal/feature/auth/usecase"
	spothandler "spots_backend/internal/feature/spots/transport/handler"
	spotusecase "spots_backend/internal/feature/spots/usecase"
	"spots_backend/internal/platform/db"
	platformredis "spots_backend/internal/platform/redis"
	"spots_backend/internal/platform/token"
)

const defaultTokenExpiration = 24 * time.Hour

func main() {
	// The signing secret is the one piece of process-wide state.
	// Without it no token could ever be verified, so refuse to start.
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set; refusing to start")
	}
	expiration := defaultTokenExpiration
	if h := os.Getenv("JWT_EXPIRATION_HOURS"); h != "" {
		if n, err := strconv.Atoi(h); err == nil && n > 0 {
			expiration = time.Duration(n) * time.Hour
		}
	}

	// db
	gormDB := db.OpenDB()

	// Redis (optional: the listing cache degrades to pass-through)
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(gormDB)
	spotRepo := di.NewSpotRepository(rdb, gormDB, 5*time.Minute)

	// Token service
	tokens := token.NewService(secret, expiration)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	spotUC := spotusecase.NewSpotUsecase(spotRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	spotH := spothandler.NewSpotHandler(spotUC)

	// Access gate
	gate := middleware.NewAuth(tokens, userRepo)

	r := router.NewRouter(gate, authH, spotH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
