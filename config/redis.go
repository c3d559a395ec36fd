package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient backs the rate limiter and catalog preferences.
var RedisClient *redis.Client

const defaultRedisURL = "redis://localhost:6379"

func ConnectRedis() {
	redisURL := getEnv("REDIS_URL", "")
	if redisURL == "" {
		redisURL = defaultRedisURL
		Log.Warnf("⚠️  REDIS_URL not set, using local Redis: %s", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		Log.Fatalf("❌ invalid REDIS_URL: %v", err)
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 2 * time.Second
	opt.WriteTimeout = 2 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		Log.Fatalf("❌ failed to connect to Redis at %s: %v", opt.Addr, err)
	}

	RedisClient = client
	Log.Infof("✅ Connected to Redis (%s, db %d)", opt.Addr, opt.DB)
}

func CloseRedis() {
	if RedisClient == nil {
		return
	}
	if err := RedisClient.Close(); err != nil {
		Log.Warnf("redis close: %v", err)
	}
}
