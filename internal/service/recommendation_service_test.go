package service

import (
	"context"
	"errors"
	"fmt"
	"movie_recommender/configs"
	"movie_recommender/model"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMovieRepo struct {
	entries []model.PeerTopFiveEntry
	err     error

	replaced map[int64][]string
}

func (f *fakeMovieRepo) GetMovieTopFiveForSimilarUsers(_ context.Context, _ int64) ([]model.PeerTopFiveEntry, error) {
	return f.entries, f.err
}

func (f *fakeMovieRepo) GetUserMovieTopFive(_ context.Context, userId int64) ([]model.UserMovieTopFive, error) {
	rows := make([]model.UserMovieTopFive, 0)
	for i, name := range f.replaced[userId] {
		rows = append(rows, model.UserMovieTopFive{UserId: userId, MovieRank: i + 1, MovieName: name})
	}
	return rows, nil
}

func (f *fakeMovieRepo) ReplaceUserMovieTopFive(_ context.Context, userId int64, movieNames []string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.replaced == nil {
		f.replaced = map[int64][]string{}
	}
	f.replaced[userId] = movieNames
	return int64(len(movieNames)), nil
}

type fakeCatalog struct {
	mu           sync.Mutex
	movies       map[string]model.Movie
	related      map[int64][]model.Movie
	relatedCalls []int64
	findCalls    int
	onFind       func()
}

func (f *fakeCatalog) FindByName(_ context.Context, name string) (*model.Movie, bool) {
	f.mu.Lock()
	f.findCalls++
	onFind := f.onFind
	f.mu.Unlock()
	if onFind != nil {
		onFind()
	}
	movie, ok := f.movies[name]
	if !ok {
		return nil, false
	}
	return &movie, true
}

func (f *fakeCatalog) Related(_ context.Context, movieId int64) []model.Movie {
	f.mu.Lock()
	f.relatedCalls = append(f.relatedCalls, movieId)
	f.mu.Unlock()
	return f.related[movieId]
}

type fakeEventQueue struct {
	mu     sync.Mutex
	events []model.Event
	err    error
}

func (f *fakeEventQueue) Enqueue(event model.Event) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return -1, f.err
	}
	f.events = append(f.events, event)
	return len(f.events) - 1, nil
}

func (f *fakeEventQueue) Dequeue() (model.Event, bool) { return model.Event{}, false }

func (f *fakeEventQueue) Len() int { return len(f.events) }

func (f *fakeEventQueue) Start(ConsumerFunc, time.Duration) {}

func (f *fakeEventQueue) Close() {}

func movie(id int64, name string, popularity float64) model.Movie {
	return model.Movie{MovieId: id, MovieName: name, MoviePopularity: popularity, MovieReleaseDate: "2001-01-01"}
}

func names(movies []model.Movie) []string {
	out := make([]string, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.MovieName)
	}
	return out
}

// runBoth checks a case sequentially and with parallel catalog resolution.
func runBoth(t *testing.T, fn func(t *testing.T, concurrency int)) {
	for _, concurrency := range []int{1, 4} {
		t.Run(fmt.Sprintf("concurrency=%d", concurrency), func(t *testing.T) {
			fn(t, concurrency)
		})
	}
}

//------------------------------------------
//------------------------------------------

func peerCatalog() *fakeCatalog {
	return &fakeCatalog{
		movies: map[string]model.Movie{
			"Shrek":      movie(808, "Shrek", 144.817),
			"Spy":        movie(238713, "Spy", 29.197),
			"Star Wars":  movie(11, "Star Wars", 80.1),
			"Titanic":    movie(597, "Titanic", 120.5),
			"Top Gun":    movie(744, "Top Gun", 60.2),
			"Terminator": movie(218, "Terminator", 25.3),
		},
		related: map[int64][]model.Movie{
			808: {movie(10192, "Shrek Forever After", 119.245)},
		},
	}
}

func TestRecommend_ExcludesOwnTopFiveAndRanksByPopularity(t *testing.T) {
	runBoth(t, func(t *testing.T, concurrency int) {
		repo := &fakeMovieRepo{entries: []model.PeerTopFiveEntry{
			{MovieName: "Shrek"},
			{MovieName: "Spy"},
			{MovieName: "Star Wars", IsOwnTopFive: true},
			{MovieName: "Titanic", IsOwnTopFive: true},
			{MovieName: "Top Gun", IsOwnTopFive: true},
			{MovieName: "Terminator"},
		}}
		catalog := peerCatalog()
		svc := NewRecommendationService(repo, catalog, nil, concurrency)

		movies, err := svc.Recommend(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, []string{"Shrek", "Shrek Forever After", "Spy", "Terminator"}, names(movies))
		assert.ElementsMatch(t, []int64{808, 238713, 11, 597, 744, 218}, catalog.relatedCalls)
	})
}

func TestRecommend_NoPeerEntries(t *testing.T) {
	catalog := peerCatalog()
	svc := NewRecommendationService(&fakeMovieRepo{}, catalog, nil, 1)

	movies, err := svc.Recommend(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
	assert.Empty(t, catalog.relatedCalls)
}

func TestRecommend_SkipsUnresolvedTitle(t *testing.T) {
	runBoth(t, func(t *testing.T, concurrency int) {
		repo := &fakeMovieRepo{entries: []model.PeerTopFiveEntry{
			{MovieName: "Shrek"},
			{MovieName: "No Such Movie"},
			{MovieName: "Spy"},
		}}
		catalog := peerCatalog()
		svc := NewRecommendationService(repo, catalog, nil, concurrency)

		movies, err := svc.Recommend(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, []string{"Shrek", "Shrek Forever After", "Spy"}, names(movies))
		assert.ElementsMatch(t, []int64{808, 238713}, catalog.relatedCalls)
	})
}

func TestRecommend_TruncatesTo25(t *testing.T) {
	runBoth(t, func(t *testing.T, concurrency int) {
		catalog := &fakeCatalog{
			movies:  map[string]model.Movie{},
			related: map[int64][]model.Movie{},
		}
		entries := make([]model.PeerTopFiveEntry, 0)
		// 4 peer titles with 10 related each gives 44 unique candidates
		for i := int64(0); i < 4; i++ {
			name := fmt.Sprintf("Peer %d", i)
			catalog.movies[name] = movie(i+1, name, float64(i))
			related := make([]model.Movie, 0, 10)
			for j := int64(0); j < 10; j++ {
				id := 1000 + i*10 + j
				related = append(related, movie(id, fmt.Sprintf("Related %d", id), float64(id)))
			}
			catalog.related[i+1] = related
			entries = append(entries, model.PeerTopFiveEntry{MovieName: name})
		}
		svc := NewRecommendationService(&fakeMovieRepo{entries: entries}, catalog, nil, concurrency)

		movies, err := svc.Recommend(context.Background(), 1)
		require.NoError(t, err)

		require.Len(t, movies, MaxRecommendations)
		assert.Equal(t, int64(1039), movies[0].MovieId)
		assert.Equal(t, int64(1015), movies[MaxRecommendations-1].MovieId)
		for i := 1; i < len(movies); i++ {
			assert.GreaterOrEqual(t, movies[i-1].MoviePopularity, movies[i].MoviePopularity)
		}
	})
}

func TestRecommend_DuplicateFirstWins(t *testing.T) {
	runBoth(t, func(t *testing.T, concurrency int) {
		catalog := &fakeCatalog{
			movies: map[string]model.Movie{
				"Alien":  movie(348, "Alien", 50),
				"Aliens": movie(679, "Aliens", 40),
			},
			related: map[int64][]model.Movie{
				// same id as the direct candidate, with different data
				679: {{MovieId: 348, MovieName: "Alien (related copy)", MoviePopularity: 99}},
				348: {movie(679, "Aliens (related copy)", 1)},
			},
		}
		repo := &fakeMovieRepo{entries: []model.PeerTopFiveEntry{
			{MovieName: "Alien"},
			{MovieName: "Aliens"},
		}}
		svc := NewRecommendationService(repo, catalog, nil, concurrency)

		movies, err := svc.Recommend(context.Background(), 1)
		require.NoError(t, err)

		// Alien's related list is merged before the Aliens entry itself
		assert.Equal(t, []string{"Alien", "Aliens (related copy)"}, names(movies))
		assert.Equal(t, 1.0, movies[1].MoviePopularity)
	})
}

func TestRecommend_OwnTopFiveExcludedEvenWhenRelated(t *testing.T) {
	runBoth(t, func(t *testing.T, concurrency int) {
		catalog := &fakeCatalog{
			movies: map[string]model.Movie{
				"Heat":  movie(949, "Heat", 30),
				"Ronin": movie(8195, "Ronin", 20),
			},
			related: map[int64][]model.Movie{
				// a peer title points back at an own favorite seen earlier
				8195: {movie(949, "Heat", 30), movie(5, "Thief", 10)},
				949:  {movie(6, "Collateral", 40)},
			},
		}
		repo := &fakeMovieRepo{entries: []model.PeerTopFiveEntry{
			{MovieName: "Ronin"},
			{MovieName: "Heat", IsOwnTopFive: true},
		}}
		svc := NewRecommendationService(repo, catalog, nil, concurrency)

		movies, err := svc.Recommend(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, []string{"Collateral", "Ronin", "Thief"}, names(movies))
	})
}

func TestRecommend_StableTies(t *testing.T) {
	catalog := &fakeCatalog{
		movies: map[string]model.Movie{
			"A": movie(1, "A", 10),
			"B": movie(2, "B", 10),
			"C": movie(3, "C", 10),
		},
	}
	repo := &fakeMovieRepo{entries: []model.PeerTopFiveEntry{
		{MovieName: "B"}, {MovieName: "A"}, {MovieName: "C"},
	}}
	svc := NewRecommendationService(repo, catalog, nil, 4)

	for i := 0; i < 20; i++ {
		movies, err := svc.Recommend(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"B", "A", "C"}, names(movies))
	}
}

func TestRecommend_PeerSourceError(t *testing.T) {
	dbErr := errors.New("connection refused")
	catalog := peerCatalog()
	svc := NewRecommendationService(&fakeMovieRepo{err: dbErr}, catalog, nil, 1)

	movies, err := svc.Recommend(context.Background(), 1)
	assert.Nil(t, movies)
	assert.ErrorIs(t, err, model.ErrPeerSourceUnavailable)
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, 503, model.GetErrorCode(err))
	assert.Empty(t, catalog.relatedCalls)
}

func TestRecommend_Disabled(t *testing.T) {
	prev := configs.GetDbConfigs()
	t.Cleanup(func() { configs.SetDbConfigs(prev) })
	configs.SetDbConfigs(configs.DbConfigData{DisableRecommendations: true})

	svc := NewRecommendationService(&fakeMovieRepo{}, peerCatalog(), nil, 1)

	_, err := svc.Recommend(context.Background(), 1)
	assert.ErrorIs(t, err, model.ErrRecommendationsDisabled)
}

func TestRecommend_CancelledContext(t *testing.T) {
	repo := &fakeMovieRepo{entries: []model.PeerTopFiveEntry{{MovieName: "Shrek"}}}
	svc := NewRecommendationService(repo, peerCatalog(), nil, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Recommend(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecommend_StopsLookupsAfterCancel(t *testing.T) {
	entries := make([]model.PeerTopFiveEntry, 0, 12)
	movies := map[string]model.Movie{}
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("Movie %d", i)
		entries = append(entries, model.PeerTopFiveEntry{MovieName: name})
		movies[name] = movie(int64(i+1), name, float64(i))
	}

	runBoth(t, func(t *testing.T, concurrency int) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		catalog := &fakeCatalog{movies: movies, onFind: cancel}
		svc := NewRecommendationService(&fakeMovieRepo{entries: entries}, catalog, nil, concurrency)

		_, err := svc.Recommend(ctx, 1)
		assert.ErrorIs(t, err, context.Canceled)
		assert.LessOrEqual(t, catalog.findCalls, concurrency)
		assert.Empty(t, catalog.relatedCalls)
	})
}

func TestRecommend_EnqueuesEvent(t *testing.T) {
	repo := &fakeMovieRepo{entries: []model.PeerTopFiveEntry{{MovieName: "Shrek"}}}
	events := &fakeEventQueue{}
	svc := NewRecommendationService(repo, peerCatalog(), events, 1)

	_, err := svc.Recommend(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, events.events, 1)
	assert.Equal(t, model.RecommendationsServedEvent, events.events[0].Type)
	assert.Equal(t, int64(7), events.events[0].UserId)
	assert.Equal(t, 2, events.events[0].Payload["count"])
}

func TestRecommend_FullQueueDoesNotFail(t *testing.T) {
	repo := &fakeMovieRepo{entries: []model.PeerTopFiveEntry{{MovieName: "Shrek"}}}
	svc := NewRecommendationService(repo, peerCatalog(), &fakeEventQueue{err: ErrOverflow}, 1)

	movies, err := svc.Recommend(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, movies, 2)
}
