package service

import (
	"context"
	"fmt"
	"movie_recommender/configs"
	"movie_recommender/internal/repository"
	"movie_recommender/model"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// MaxRecommendations is the size of the returned list.
const MaxRecommendations = 25

type IRecommendationService interface {
	Recommend(ctx context.Context, userId int64) ([]model.Movie, error)
}

// ICatalogLookup resolves titles against the movie catalog. Failures surface as
// not-found or an empty list, never as an error.
type ICatalogLookup interface {
	FindByName(ctx context.Context, name string) (*model.Movie, bool)
	Related(ctx context.Context, movieId int64) []model.Movie
}

type RecommendationService struct {
	movieRepo   repository.IMovieRepository
	catalog     ICatalogLookup
	events      IEventQueue
	concurrency int
}

func NewRecommendationService(movieRepo repository.IMovieRepository, catalog ICatalogLookup, events IEventQueue, concurrency int) *RecommendationService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &RecommendationService{
		movieRepo:   movieRepo,
		catalog:     catalog,
		events:      events,
		concurrency: concurrency,
	}
}

//------------------------------------------
//------------------------------------------

// candidateSet keeps movies in first-seen order, keyed by id.
type candidateSet struct {
	movies []model.Movie
	seen   map[int64]struct{}
}

func newCandidateSet() *candidateSet {
	return &candidateSet{
		movies: make([]model.Movie, 0),
		seen:   make(map[int64]struct{}),
	}
}

func (c *candidateSet) add(movie model.Movie) {
	if _, ok := c.seen[movie.MovieId]; ok {
		return
	}
	c.seen[movie.MovieId] = struct{}{}
	c.movies = append(c.movies, movie)
}

// resolvedEntry is the catalog answer for one peer entry. A nil movie means the
// entry was skipped.
type resolvedEntry struct {
	movie   *model.Movie
	related []model.Movie
}

//------------------------------------------
//------------------------------------------

func (s *RecommendationService) Recommend(ctx context.Context, userId int64) ([]model.Movie, error) {
	if configs.GetDbConfigs().DisableRecommendations {
		return nil, model.ErrRecommendationsDisabled
	}

	logger := zerolog.Ctx(ctx).With().Int64("user_id", userId).Logger()

	entries, err := s.movieRepo.GetMovieTopFiveForSimilarUsers(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrPeerSourceUnavailable, err)
	}
	if len(entries) == 0 {
		logger.Debug().Msg("no peer top 5 entries")
		return []model.Movie{}, nil
	}

	resolved := s.resolveEntries(ctx, entries)
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	candidates := newCandidateSet()
	ownTopFiveIds := make(map[int64]struct{})
	skipped := 0

	for i, entry := range entries {
		r := resolved[i]
		if r.movie == nil {
			skipped++
			continue
		}
		if entry.IsOwnTopFive {
			ownTopFiveIds[r.movie.MovieId] = struct{}{}
		} else {
			candidates.add(*r.movie)
		}
		for _, related := range r.related {
			candidates.add(related)
		}
	}

	result := make([]model.Movie, 0, len(candidates.movies))
	for _, movie := range candidates.movies {
		if _, own := ownTopFiveIds[movie.MovieId]; !own {
			result = append(result, movie)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].MoviePopularity > result[j].MoviePopularity
	})
	if len(result) > MaxRecommendations {
		result = result[:MaxRecommendations]
	}

	logger.Info().
		Int("peer_entries", len(entries)).
		Int("skipped_entries", skipped).
		Int("candidates", len(candidates.movies)).
		Int("recommendations", len(result)).
		Msg("recommendations computed")

	enqueueEvent(s.events, model.NewEvent(model.RecommendationsServedEvent, userId, map[string]interface{}{
		"count": len(result),
	}))

	return result, nil
}

// resolveEntries runs the catalog calls for every entry. Each answer lands in the
// slot of its entry, so merging the slots in order gives the same result as a
// sequential run. No new lookup starts once ctx is done.
func (s *RecommendationService) resolveEntries(ctx context.Context, entries []model.PeerTopFiveEntry) []resolvedEntry {
	resolved := make([]resolvedEntry, len(entries))

	if s.concurrency == 1 || len(entries) == 1 {
		for i := range entries {
			if ctx.Err() != nil {
				break
			}
			resolved[i] = s.resolveEntry(ctx, entries[i])
		}
		return resolved
	}

	sem := make(chan struct{}, s.concurrency)
	wg := sync.WaitGroup{}
loop:
	for i := range entries {
		select {
		case <-ctx.Done():
			break loop
		case sem <- struct{}{}:
		}
		if ctx.Err() != nil {
			<-sem
			break
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			resolved[i] = s.resolveEntry(ctx, entries[i])
		}(i)
	}
	wg.Wait()

	return resolved
}

func (s *RecommendationService) resolveEntry(ctx context.Context, entry model.PeerTopFiveEntry) resolvedEntry {
	movie, ok := s.catalog.FindByName(ctx, entry.MovieName)
	if !ok {
		return resolvedEntry{}
	}
	if ctx.Err() != nil {
		return resolvedEntry{movie: movie}
	}
	return resolvedEntry{
		movie:   movie,
		related: s.catalog.Related(ctx, movie.MovieId),
	}
}
