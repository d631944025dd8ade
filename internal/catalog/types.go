package catalog

import (
	"movie_recommender/model"
	"regexp"
	"sort"
	"strings"
)

const (
	// RelatedLimit is the number of related titles kept per movie.
	RelatedLimit = 10
)

type rawMovieResults struct {
	Results []rawMovie `json:"results"`
}

type rawMovie struct {
	Id          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	Popularity  float64 `json:"popularity"`
	ReleaseDate string  `json:"release_date"`
}

func (r rawMovie) toMovie() model.Movie {
	return model.Movie{
		MovieId:          r.Id,
		MovieName:        r.Title,
		MovieOverview:    r.Overview,
		MoviePopularity:  r.Popularity,
		MovieReleaseDate: r.ReleaseDate,
	}
}

func toMovies(raw []rawMovie) []model.Movie {
	movies := make([]model.Movie, 0, len(raw))
	for _, r := range raw {
		movies = append(movies, r.toMovie())
	}
	return movies
}

//------------------------------------------
//------------------------------------------

var titleYearRegex = regexp.MustCompile(`^(.*)\((\d{4})\)$`)

// ParseTitle splits a trailing "(YYYY)" off a movie name.
// "Heat (1995)" gives ("Heat", "1995"), "Heat" gives ("Heat", "").
func ParseTitle(name string) (query string, year string) {
	name = strings.TrimSpace(name)
	match := titleYearRegex.FindStringSubmatch(name)
	if match == nil {
		return name, ""
	}
	return strings.TrimSpace(match[1]), match[2]
}

// TopByPopularity returns at most n movies ordered by descending popularity.
// Equal popularity keeps the input order. The input slice is not modified.
func TopByPopularity(movies []model.Movie, n int) []model.Movie {
	sorted := make([]model.Movie, len(movies))
	copy(sorted, movies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MoviePopularity > sorted[j].MoviePopularity
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
