package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis is optional like the sync database: without REDIS_URL the rate
// limiter passes everything through and change events stay in-process.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("⚠️  REDIS_URL not set, rate limiting and cross-device events disabled")
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("⚠️  invalid REDIS_URL, continuing without Redis: %v", err)
		return
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("⚠️  failed to connect to Redis, continuing without it: %v", err)
		return
	}

	RedisClient = client
	log.Println("✅ Connected to Redis")
}
