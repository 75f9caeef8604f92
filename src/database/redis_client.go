package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var RedisCtx = context.Background()
var RedisURI string

// InitRedis connects the shared Redis client. Redis is optional in dev:
// when REDIS_URI is unset, the client stays nil and callers fall back.
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI")
	if RedisURI == "" {
		log.Println("⚠️ REDIS_URI not set. Token blacklist and login throttling disabled.")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     RedisURI,
		Password: "",
		DB:       0,
	})
	_, err := RedisClient.Ping(RedisCtx).Result()
	if err != nil {
		log.Println("❌ Failed to connect Redis: " + err.Error())
		RedisClient = nil
		return
	}
	log.Println("✅ Redis connected successfully")
}
