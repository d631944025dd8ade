package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"movie_recommender/model"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 10 * time.Second
	defaultRPS     = 40.0
	defaultBurst   = 10
)

type IClient interface {
	SearchMovies(ctx context.Context, query string, year string, opts SearchOptions) ([]model.Movie, error)
	MovieRecommendations(ctx context.Context, movieId int64, language string) ([]model.Movie, error)
}

type SearchOptions struct {
	Language     string
	IncludeAdult bool
}

// Client is a rate-limited TMDB API client guarded by a circuit breaker.
type Client struct {
	http    *fasthttp.Client
	baseUrl string
	token   string
	timeout time.Duration
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(baseUrl string, token string, timeout time.Duration, rps float64) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if rps <= 0 {
		rps = defaultRPS
	}

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "tmdb-api",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
		// a missing title is a valid answer, and an ended caller context says nothing about the upstream
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrBadRequest) ||
				errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
	})

	return &Client{
		http: &fasthttp.Client{
			Name:                "movie_recommender",
			MaxConnsPerHost:     64,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		},
		baseUrl: strings.TrimRight(baseUrl, "/"),
		token:   token,
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(rps), defaultBurst),
		cb:      cb,
	}
}

//------------------------------------------
//------------------------------------------

func (c *Client) SearchMovies(ctx context.Context, query string, year string, opts SearchOptions) ([]model.Movie, error) {
	params := url.Values{}
	params.Set("include_adult", strconv.FormatBool(opts.IncludeAdult))
	params.Set("language", opts.Language)
	params.Set("page", "1")
	params.Set("query", query)
	if year != "" {
		params.Set("year", year)
	}

	body, err := c.execute(ctx, "/search/movie", params)
	if err != nil {
		return nil, wrapError("search", query, err)
	}

	var res rawMovieResults
	if err = json.Unmarshal(body, &res); err != nil {
		return nil, wrapError("search", query, fmt.Errorf("decode response: %w", err))
	}
	return toMovies(res.Results), nil
}

func (c *Client) MovieRecommendations(ctx context.Context, movieId int64, language string) ([]model.Movie, error) {
	params := url.Values{}
	params.Set("language", language)
	params.Set("page", "1")

	key := strconv.FormatInt(movieId, 10)
	body, err := c.execute(ctx, "/movie/"+key+"/recommendations", params)
	if err != nil {
		return nil, wrapError("recommendations", key, err)
	}

	var res rawMovieResults
	if err = json.Unmarshal(body, &res); err != nil {
		return nil, wrapError("recommendations", key, fmt.Errorf("decode response: %w", err))
	}
	return toMovies(res.Results), nil
}

//------------------------------------------
//------------------------------------------

func (c *Client) execute(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.cb.Execute(func() ([]byte, error) {
		return c.doRequest(ctx, path, params)
	})
}

func (c *Client) doRequest(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("rate limit wait: %w", ctxErr)
		}
		// the next token comes after the caller's deadline
		return nil, fmt.Errorf("rate limit wait: %w: %w", context.DeadlineExceeded, err)
	}

	timeout := c.timeout
	shortened := false
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
			shortened = true
		}
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseUrl + path + "?" + params.Encode())
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if c.token != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+c.token)
	}

	log.Debug().Str("path", path).Msg("catalog request")

	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("execute request: %w", ctxErr)
		}
		if shortened && errors.Is(err, fasthttp.ErrTimeout) {
			return nil, fmt.Errorf("execute request: %w: %w", context.DeadlineExceeded, err)
		}
		return nil, fmt.Errorf("execute request: %w", err)
	}

	switch status := resp.StatusCode(); {
	case status == fasthttp.StatusOK:
		// the response is released on return
		body := make([]byte, len(resp.Body()))
		copy(body, resp.Body())
		return body, nil
	case status == fasthttp.StatusUnauthorized:
		return nil, ErrUnauthorized
	case status == fasthttp.StatusNotFound:
		return nil, ErrNotFound
	case status == fasthttp.StatusTooManyRequests:
		return nil, ErrRateLimited
	case status == fasthttp.StatusBadRequest:
		return nil, ErrBadRequest
	case status >= 500:
		return nil, ErrServer
	default:
		return nil, fmt.Errorf("unexpected status %d: %s", status, string(resp.Body()))
	}
}
