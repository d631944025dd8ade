package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"movie_recommender/model"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

type IAPIClient interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.UserTokenRes, error)
	Login(ctx context.Context, email string, password string) (*model.UserTokenRes, error)
	AddMovieTopFive(ctx context.Context, session Session, movieNames string) (int64, error)
	GetQuizzes(ctx context.Context) ([]model.QuizRes, error)
	AddQuizResponses(ctx context.Context, session Session, quizId int64, optionIds []int64) (int64, error)
	GetRecommendations(ctx context.Context, session Session) ([]model.Movie, error)
}

// Session identifies the logged in user for every call that needs one.
type Session struct {
	UserId      int64
	AccessToken string
}

func (s Session) Valid() bool {
	return s.UserId > 0 && s.AccessToken != ""
}

// APIError is a non 200 answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type envelope struct {
	Code         int             `json:"code"`
	Data         json.RawMessage `json:"data"`
	ErrorMessage string          `json:"errorMessage"`
}

type APIClient struct {
	http    *fasthttp.Client
	baseUrl string
	timeout time.Duration
}

func NewAPIClient(baseUrl string, timeout time.Duration) *APIClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &APIClient{
		http: &fasthttp.Client{
			Name:                "movie-recommender-cli",
			MaxIdleConnDuration: time.Minute,
		},
		baseUrl: strings.TrimRight(baseUrl, "/"),
		timeout: timeout,
	}
}

//------------------------------------------
//------------------------------------------

func (c *APIClient) Register(ctx context.Context, req model.RegisterReq) (*model.UserTokenRes, error) {
	var res model.UserTokenRes
	err := c.do(ctx, fasthttp.MethodPost, "/v1/user", "", req, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *APIClient) Login(ctx context.Context, email string, password string) (*model.UserTokenRes, error) {
	var res model.UserTokenRes
	req := model.LoginReq{UserEmail: email, UserPassword: password}
	err := c.do(ctx, fasthttp.MethodPost, "/v1/user/login", "", req, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *APIClient) AddMovieTopFive(ctx context.Context, session Session, movieNames string) (int64, error) {
	var res model.UpdateCountRes
	path := "/v1/user/" + strconv.FormatInt(session.UserId, 10) + "/movie/top_5"
	err := c.do(ctx, fasthttp.MethodPost, path, session.AccessToken, model.AddMovieTopFiveReq{MovieNames: movieNames}, &res)
	return res.UpdateCount, err
}

func (c *APIClient) GetQuizzes(ctx context.Context) ([]model.QuizRes, error) {
	var res model.QuizzesRes
	err := c.do(ctx, fasthttp.MethodGet, "/v1/quizzes", "", nil, &res)
	return res.Quizzes, err
}

func (c *APIClient) AddQuizResponses(ctx context.Context, session Session, quizId int64, optionIds []int64) (int64, error) {
	req := model.AddQuizResponsesReq{QuizResponses: make([]model.QuizResponseItem, 0, len(optionIds))}
	for _, id := range optionIds {
		req.QuizResponses = append(req.QuizResponses, model.QuizResponseItem{QuizPromptOptionId: id})
	}

	var res model.UpdateCountRes
	path := fmt.Sprintf("/v1/user/%d/quiz/%d", session.UserId, quizId)
	err := c.do(ctx, fasthttp.MethodPost, path, session.AccessToken, req, &res)
	return res.UpdateCount, err
}

func (c *APIClient) GetRecommendations(ctx context.Context, session Session) ([]model.Movie, error) {
	var res model.RecommendationsRes
	path := "/v1/user/" + strconv.FormatInt(session.UserId, 10) + "/movie/recommendations"
	err := c.do(ctx, fasthttp.MethodGet, path, session.AccessToken, nil, &res)
	return res.Movies, err
}

//------------------------------------------
//------------------------------------------

func (c *APIClient) do(ctx context.Context, method string, path string, accessToken string, body interface{}, out interface{}) error {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = min(timeout, time.Until(deadline))
	}
	if timeout <= 0 {
		return context.DeadlineExceeded
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseUrl + path)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if accessToken != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+accessToken)
	}
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		req.Header.SetContentType("application/json")
		req.SetBodyRaw(payload)
	}

	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			return fmt.Errorf("%s %s: %w", method, path, context.DeadlineExceeded)
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return &APIError{Status: resp.StatusCode(), Message: env.ErrorMessage}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}
