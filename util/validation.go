package util

import (
	"movie_recommender/model"
	"strings"
	"unicode"

	"github.com/badoux/checkmail"
)

const (
	MinPasswordLength    = 8
	PasswordSpecialChars = "#?!@$%^&*-"
	MaxTopFiveMovies     = 5
)

func ValidateEmail(email string) error {
	if err := checkmail.ValidateFormat(strings.TrimSpace(email)); err != nil {
		return model.ErrInvalidEmail
	}
	return nil
}

// ValidatePassword requires 8 characters with an upper case letter, a lower case
// letter, a digit and one of #?!@$%^&*-.
func ValidatePassword(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return model.ErrWeakPassword
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(PasswordSpecialChars, r):
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return model.ErrWeakPassword
	}
	return nil
}

// ParseMovieNames splits a comma separated list, dropping blank names.
func ParseMovieNames(input string) ([]string, error) {
	names := make([]string, 0, MaxTopFiveMovies)
	for _, name := range strings.Split(input, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 || len(names) > MaxTopFiveMovies {
		return nil, model.ErrInvalidTopFive
	}
	return names, nil
}
