package service

import (
	"context"
	"errors"
	"movie_recommender/internal/repository"
	"movie_recommender/model"
	"movie_recommender/util"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Register(ctx context.Context, req *model.RegisterReq) (*model.UserTokenRes, error)
	Login(ctx context.Context, email string, password string) (*model.UserTokenRes, error)
	Logout(ctx context.Context, accessToken string, expiresAt int64) error
	AddUserMovieTopFive(ctx context.Context, userId int64, movieNames string) (int64, error)
}

type UserService struct {
	userRepo  repository.IUserRepository
	movieRepo repository.IMovieRepository
	events    IEventQueue
	timeout   time.Duration
}

func NewUserService(userRepo repository.IUserRepository, movieRepo repository.IMovieRepository, events IEventQueue) *UserService {
	return &UserService{
		userRepo:  userRepo,
		movieRepo: movieRepo,
		events:    events,
		timeout:   time.Duration(5) * time.Second,
	}
}

//------------------------------------------
//------------------------------------------

func (u *UserService) Register(ctx context.Context, req *model.RegisterReq) (*model.UserTokenRes, error) {
	if err := util.ValidateEmail(req.UserEmail); err != nil {
		return nil, err
	}
	if err := util.ValidatePassword(req.UserPassword); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	user := &model.User{
		UserFirstName: strings.TrimSpace(req.UserFirstName),
		UserLastName:  strings.TrimSpace(req.UserLastName),
		UserEmail:     strings.TrimSpace(req.UserEmail),
		UserPassword:  string(hash),
		UserRole:      model.DefaultUserRole,
	}
	if err = u.userRepo.AddUser(ctx, user); err != nil {
		return nil, err
	}

	log.Info().Int64("user_id", user.UserId).Msg("user registered")
	enqueueEvent(u.events, model.NewEvent(model.UserRegisteredEvent, user.UserId, nil))

	return createTokenRes(user)
}

func (u *UserService) Login(ctx context.Context, email string, password string) (*model.UserTokenRes, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrUserPassNotMatch
		}
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(password))
	if err != nil {
		return nil, model.ErrUserPassNotMatch
	}

	return createTokenRes(user)
}

// Logout blacklists the access token until it would have expired anyway.
func (u *UserService) Logout(ctx context.Context, accessToken string, expiresAt int64) error {
	remaining := time.Until(time.UnixMilli(expiresAt))
	if remaining <= 0 {
		return nil
	}
	return setJwtDataCache(ctx, accessToken, "logout", remaining)
}

func (u *UserService) AddUserMovieTopFive(ctx context.Context, userId int64, movieNames string) (int64, error) {
	names, err := util.ParseMovieNames(movieNames)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	updateCount, err := u.movieRepo.ReplaceUserMovieTopFive(ctx, userId, names)
	if err != nil {
		return 0, err
	}

	enqueueEvent(u.events, model.NewEvent(model.UserTopFiveUpdatedEvent, userId, map[string]interface{}{
		"movie_names": names,
	}))

	return updateCount, nil
}

//------------------------------------------
//------------------------------------------

func createTokenRes(user *model.User) (*model.UserTokenRes, error) {
	token, err := util.CreateJwtToken(user.UserId, user.UserEmail, user.UserRole)
	if err != nil {
		return nil, err
	}
	return &model.UserTokenRes{
		UserId:      user.UserId,
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt,
	}, nil
}
