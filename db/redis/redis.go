package redis

import (
	"context"
	"errors"
	"movie_recommender/configs"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	redisClient *redis.Client
	clientMux   sync.RWMutex
)

var ErrNotConnected = errors.New("redis: client not connected")

func ConnectRedis() {
	time.Sleep(time.Duration(configs.GetConfigs().WaitForRedisConnectionSec) * time.Second)
	client := redis.NewClient(&redis.Options{
		Addr:     configs.GetConfigs().RedisUrl,
		Password: configs.GetConfigs().RedisPassword,
		DB:       0,
	})
	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		log.Error().Err(err).Msg("redis ping failed")
	} else {
		log.Info().Str("pong", pong).Msg("redis connected")
	}
	SetClient(client)
}

// SetClient swaps the shared client. A nil client makes every call fail with ErrNotConnected.
func SetClient(client *redis.Client) {
	clientMux.Lock()
	defer clientMux.Unlock()
	redisClient = client
}

func getClient() (*redis.Client, error) {
	clientMux.RLock()
	defer clientMux.RUnlock()
	if redisClient == nil {
		return nil, ErrNotConnected
	}
	return redisClient, nil
}

func CloseRedis() error {
	client, err := getClient()
	if err != nil {
		return nil
	}
	return client.Close()
}

func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

func GetRedis(ctx context.Context, key string) (string, error) {
	client, err := getClient()
	if err != nil {
		return "", err
	}
	return client.Get(ctx, key).Result()
}

func SetRedis(ctx context.Context, key string, value interface{}, duration time.Duration) error {
	client, err := getClient()
	if err != nil {
		return err
	}
	return client.Set(ctx, key, value, duration).Err()
}
