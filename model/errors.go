package model

import (
	"errors"
	"slices"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserPassNotMatch = errors.New("email and password do not match")
var ErrEmailAlreadyExist = errors.New("this email already exists")
var ErrInvalidEmail = errors.New("invalid email address")
var ErrWeakPassword = errors.New("password is not strong enough")
var ErrInvalidTopFive = errors.New("between 1 and 5 movie names are required")
var ErrInvalidQuizResponse = errors.New("at least one quiz response is required")
var ErrQuizNotFound = errors.New("quiz not found")
var ErrRecommendationsDisabled = errors.New("recommendations are disabled")
var ErrPeerSourceUnavailable = errors.New("peer top 5 source unavailable")

func GetErrorCode(err error) int {
	code400 := []error{
		ErrInvalidEmail,
		ErrWeakPassword,
		ErrInvalidTopFive,
		ErrInvalidQuizResponse,
	}
	code401 := []error{
		ErrUserPassNotMatch,
	}
	code404 := []error{
		ErrUserNotFound,
		ErrQuizNotFound,
	}
	code409 := []error{
		ErrEmailAlreadyExist,
	}
	code503 := []error{
		ErrRecommendationsDisabled,
		ErrPeerSourceUnavailable,
	}

	contains := func(list []error) bool {
		return slices.ContainsFunc(list, func(target error) bool {
			return errors.Is(err, target)
		})
	}

	if contains(code400) {
		return 400
	}
	if contains(code401) {
		return 401
	}
	if contains(code404) {
		return 404
	}
	if contains(code409) {
		return 409
	}
	if contains(code503) {
		return 503
	}

	return 0
}
