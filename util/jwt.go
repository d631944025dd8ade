package util

import (
	"errors"
	"fmt"
	"movie_recommender/configs"
	"movie_recommender/model"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type MyJwtClaims struct {
	UserId      int64          `json:"userId"`
	Email       string         `json:"email"`
	Role        model.UserRole `json:"role"`
	GeneratedAt int64          `json:"generatedAt"`
	ExpiresAt   int64          `json:"expiresAt"`
	jwt.RegisteredClaims
}

type TokenDetail struct {
	AccessToken string
	ExpiresAt   int64
}

var ErrMissingSecret = errors.New("access token secret is not configured")

func CreateJwtToken(userId int64, email string, role model.UserRole) (*TokenDetail, error) {
	secret := configs.GetConfigs().AccessTokenSecret
	if secret == "" {
		return nil, ErrMissingSecret
	}

	hours := configs.GetConfigs().AccessTokenExpireHour
	if hours <= 0 {
		hours = 24
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(hours) * time.Hour)

	claims := MyJwtClaims{
		UserId:      userId,
		Email:       email,
		Role:        role,
		GeneratedAt: now.UnixMilli(),
		ExpiresAt:   expiresAt.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userId, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &TokenDetail{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt.UnixMilli(),
	}, nil
}

func VerifyToken(tokenString string) (*jwt.Token, *MyJwtClaims, error) {
	claims := MyJwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signature method")
		}
		return []byte(configs.GetConfigs().AccessTokenSecret), nil
	})

	if err != nil {
		return nil, nil, err
	}

	return token, &claims, nil
}
