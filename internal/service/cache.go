package service

import (
	"context"
	"encoding/json"
	"fmt"
	"movie_recommender/db/redis"
	"movie_recommender/model"
	errorHandler "movie_recommender/pkg/error"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	jwtDataCachePrefix = "jwtKey:"
)

//------------------------------------------
//------------------------------------------

// CatalogCache keeps catalog answers in redis. Every redis failure is a miss.
type CatalogCache struct{}

func NewCatalogCache() *CatalogCache {
	return &CatalogCache{}
}

func (CatalogCache) Get(ctx context.Context, key string) ([]model.Movie, bool) {
	result, err := redis.GetRedis(ctx, key)
	if err != nil {
		if !redis.IsNil(err) {
			log.Debug().Err(err).Str("key", key).Msg("catalog cache read failed")
		}
		return nil, false
	}

	var movies []model.Movie
	if err = json.Unmarshal([]byte(result), &movies); err != nil {
		return nil, false
	}
	return movies, true
}

func (CatalogCache) Set(ctx context.Context, key string, movies []model.Movie, ttl time.Duration) {
	jsonData, err := json.Marshal(movies)
	if err != nil {
		return
	}
	if err = redis.SetRedis(ctx, key, jsonData, ttl); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
}

//------------------------------------------
//------------------------------------------

func GetJwtDataCache(ctx context.Context, key string) (string, error) {
	result, err := redis.GetRedis(ctx, jwtDataCachePrefix+key)
	return result, err
}

func setJwtDataCache(ctx context.Context, key string, value string, duration time.Duration) error {
	err := redis.SetRedis(ctx, jwtDataCachePrefix+key, value, duration)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving jwt: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}

// IsTokenBlacklisted reports whether the access token was logged out.
// Redis being unavailable counts as not blacklisted.
func IsTokenBlacklisted(ctx context.Context, accessToken string) bool {
	result, err := GetJwtDataCache(ctx, accessToken)
	return err == nil && result != ""
}
