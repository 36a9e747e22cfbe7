package main

import (
	"context"
	"fmt"
	"log"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/yourusername/quiz-portal/internal/config"
	"github.com/yourusername/quiz-portal/internal/session"
)

// setupSessionStore は SESSION_REDIS_URL があれば Redis、無ければプロセス内メモリのストアを返します。
func setupSessionStore(cfg *config.Config) (session.Store, func(), error) {
	if cfg.SessionRedisURL == "" {
		log.Printf("SESSION_REDIS_URL is not set; sessions are kept in memory")
		return session.NewMemoryStore(), func() {}, nil
	}

	opt, err := redis.ParseURL(cfg.SessionRedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	redisClient := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	closeFn := func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("failed to close redis client: %v", err)
		}
	}
	return session.NewRedisStore(redisClient), closeFn, nil
}
