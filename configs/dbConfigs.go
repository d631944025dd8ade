package configs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	DefaultCatalogLanguage        = "en-GB"
	DefaultCatalogCacheTtlMinutes = 360
)

type DbConfigData struct {
	Id                     primitive.ObjectID `bson:"_id"`
	Title                  string             `bson:"title"`
	CorsAllowedOrigins     []string           `bson:"corsAllowedOrigins"`
	CatalogLanguage        string             `bson:"catalogLanguage"`
	CatalogIncludeAdult    bool               `bson:"catalogIncludeAdult"`
	CatalogCacheTtlMinutes int64              `bson:"catalogCacheTtlMinutes"`
	DisableRecommendations bool               `bson:"disableRecommendations"`
}

var rwm sync.RWMutex
var dbConfigs DbConfigData

func GetDbConfigs() DbConfigData {
	rwm.RLock()
	defer rwm.RUnlock()
	return dbConfigs
}

// SetDbConfigs replaces the dynamic configs without a database round trip.
func SetDbConfigs(c DbConfigData) {
	rwm.Lock()
	defer rwm.Unlock()
	dbConfigs = c
}

func (d DbConfigData) GetCatalogLanguage() string {
	if d.CatalogLanguage == "" {
		return DefaultCatalogLanguage
	}
	return d.CatalogLanguage
}

func (d DbConfigData) GetCatalogCacheTtl() time.Duration {
	if d.CatalogCacheTtlMinutes <= 0 {
		return DefaultCatalogCacheTtlMinutes * time.Minute
	}
	return time.Duration(d.CatalogCacheTtlMinutes) * time.Minute
}

//------------------------------------------
//------------------------------------------

func LoadDbConfigs(ctx context.Context, mongodb *mongo.Database) {
	tick := time.NewTicker(15 * time.Minute)
	defer tick.Stop()
	_ = FetchDbConfigs(ctx, mongodb)
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			_ = FetchDbConfigs(ctx, mongodb)
		}
	}
}

func FetchDbConfigs(ctx context.Context, mongodb *mongo.Database) error {
	var result DbConfigData
	err := mongodb.
		Collection("configs").
		FindOne(ctx, bson.D{{Key: "title", Value: "server configs"}}).
		Decode(&result)
	if err != nil {
		errorMessage := fmt.Sprintf("could not get dbConfig from mongodb: %s", err)
		if configs.PrintErrors {
			log.Error().Err(err).Msg(errorMessage)
		}
		sentry.CaptureException(err)
		return err
	}

	SetDbConfigs(result)
	return nil
}
