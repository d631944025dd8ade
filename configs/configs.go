package configs

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type ConfigStruct struct {
	Port                      string
	AccessTokenSecret         string
	AccessTokenExpireHour     int
	WaitForRedisConnectionSec int
	RedisUrl                  string
	RedisPassword             string
	MongodbDatabaseUrl        string
	MongodbDatabaseName       string
	RabbitmqUrl               string
	RabbitmqExchange          string
	EventQueueFile            string
	CorsAllowedOrigins        []string
	SentryDns                 string
	SentryRelease             string
	PrintErrors               bool
	LogLevel                  string
	LogFormat                 string
	DbUrl                     string
	DbAutoMigrate             bool
	TmdbBaseUrl               string
	TmdbBearerToken           string
	CatalogTimeoutSec         int
	CatalogRps                float64
	CatalogConcurrency        int
}

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

// SetConfigs replaces the loaded configs, tests use it to avoid touching the environment.
func SetConfigs(c ConfigStruct) {
	configs = c
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("Error loading .env file")
	}

	configs.Port = getEnv("PORT", "3000")
	configs.DbUrl = os.Getenv("POSTGRES_DATABASE_URL")
	configs.DbAutoMigrate = os.Getenv("DB_AUTO_MIGRATE") == "true"
	configs.AccessTokenSecret = os.Getenv("ACCESS_TOKEN_SECRET")
	configs.AccessTokenExpireHour = getEnvInt("ACCESS_TOKEN_EXPIRE_HOUR", 24)
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.MongodbDatabaseUrl = os.Getenv("MONGODB_DATABASE_URL")
	configs.MongodbDatabaseName = getEnv("MONGODB_DATABASE_NAME", "movie_recommender")
	configs.RabbitmqUrl = os.Getenv("RABBITMQ_URL")
	configs.RabbitmqExchange = getEnv("RABBITMQ_EXCHANGE", "movie_recommender.events")
	configs.EventQueueFile = getEnv("EVENT_QUEUE_FILE", "./event_queue.json")
	configs.WaitForRedisConnectionSec = getEnvInt("WAIT_REDIS_CONNECTION_SEC", 0)
	configs.CorsAllowedOrigins = splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
	configs.LogLevel = getEnv("LOG_LEVEL", "info")
	configs.LogFormat = getEnv("LOG_FORMAT", "json")
	configs.TmdbBaseUrl = getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	configs.TmdbBearerToken = os.Getenv("TMDB_BEARER_TOKEN")
	configs.CatalogTimeoutSec = getEnvInt("CATALOG_TIMEOUT_SEC", 10)
	configs.CatalogRps = getEnvFloat("CATALOG_RPS", 40)
	configs.CatalogConcurrency = getEnvInt("CATALOG_CONCURRENCY", 4)
}

//------------------------------------------
//------------------------------------------

func splitOrigins(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}
	origins := strings.Split(value, "---")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
