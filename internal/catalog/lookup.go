package catalog

import (
	"context"
	"errors"
	"fmt"
	"movie_recommender/configs"
	"movie_recommender/model"
	errorHandler "movie_recommender/pkg/error"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"
)

// Cache stores catalog answers. Implementations must treat every failure as a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]model.Movie, bool)
	Set(ctx context.Context, key string, movies []model.Movie, ttl time.Duration)
}

// Lookup resolves movie names and related titles. It never returns catalog errors,
// a failed call is reported and treated as not-found or empty.
type Lookup struct {
	client IClient
	cache  Cache
}

func NewLookup(client IClient, cache Cache) *Lookup {
	return &Lookup{
		client: client,
		cache:  cache,
	}
}

//------------------------------------------
//------------------------------------------

func (l *Lookup) FindByName(ctx context.Context, name string) (*model.Movie, bool) {
	query, year := ParseTitle(name)
	if query == "" {
		return nil, false
	}

	dbConfigs := configs.GetDbConfigs()
	opts := SearchOptions{
		Language:     dbConfigs.GetCatalogLanguage(),
		IncludeAdult: dbConfigs.CatalogIncludeAdult,
	}
	key := fmt.Sprintf("catalog:search:%s:%s:%s:%s",
		opts.Language, strconv.FormatBool(opts.IncludeAdult), strings.ToLower(query), year)

	movies, ok := l.getCache(ctx, key)
	if !ok {
		var err error
		movies, err = l.client.SearchMovies(ctx, query, year, opts)
		if err != nil {
			reportError("catalog search failed for "+strconv.Quote(name), err)
			return nil, false
		}
		if len(movies) > 0 {
			// only the canonical first result is ever read back
			l.setCache(ctx, key, movies[:1], dbConfigs.GetCatalogCacheTtl())
		}
	}

	if len(movies) == 0 {
		log.Debug().Str("movie_name", name).Msg("no catalog match")
		return nil, false
	}
	movie := movies[0]
	return &movie, true
}

func (l *Lookup) Related(ctx context.Context, movieId int64) []model.Movie {
	dbConfigs := configs.GetDbConfigs()
	language := dbConfigs.GetCatalogLanguage()
	key := fmt.Sprintf("catalog:related:%s:%d", language, movieId)

	if movies, ok := l.getCache(ctx, key); ok {
		return movies
	}

	movies, err := l.client.MovieRecommendations(ctx, movieId, language)
	if err != nil {
		reportError(fmt.Sprintf("catalog recommendations failed for movie %d", movieId), err)
		return []model.Movie{}
	}

	movies = TopByPopularity(movies, RelatedLimit)
	l.setCache(ctx, key, movies, dbConfigs.GetCatalogCacheTtl())
	return movies
}

//------------------------------------------
//------------------------------------------

func (l *Lookup) getCache(ctx context.Context, key string) ([]model.Movie, bool) {
	if l.cache == nil {
		return nil, false
	}
	return l.cache.Get(ctx, key)
}

func (l *Lookup) setCache(ctx context.Context, key string, movies []model.Movie, ttl time.Duration) {
	if l.cache == nil {
		return
	}
	l.cache.Set(ctx, key, movies, ttl)
}

var saveError = errorHandler.SaveError

// reportError sends only unexpected upstream failures to sentry. An open breaker
// already logged its state change once.
func reportError(message string, err error) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Debug().Err(err).Msg(message)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		log.Warn().Err(err).Msg(message)
	default:
		saveError(message, err)
	}
}
