package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"coderfest/config"

	"github.com/redis/go-redis/v9"
)

// REDIS is the shared client for the registration record store
var REDIS *redis.Client

// RegistrationKeyPrefix namespaces all registration records in the store
const RegistrationKeyPrefix = "registration:"

// InitRedis connects to the key-value store and verifies the connection.
// Registration records are stored as JSON under registration:<registrationId>.
func InitRedis() {
	REDIS = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.RedisHost, config.RedisPort),
		Password: config.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := REDIS.Ping(ctx).Result(); err != nil {
		log.Fatal("failed to connect to redis: ", err)
	}

	log.Println("Redis connection established")
}

// RegistrationKey builds the store key for a registration ID
func RegistrationKey(registrationID string) string {
	return RegistrationKeyPrefix + registrationID
}
