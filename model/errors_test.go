package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrWeakPassword, 400},
		{ErrUserPassNotMatch, 401},
		{ErrQuizNotFound, 404},
		{ErrEmailAlreadyExist, 409},
		{fmt.Errorf("get peer rows: %w", ErrPeerSourceUnavailable), 503},
		{errors.New("boom"), 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetErrorCode(tt.err), tt.err.Error())
	}
}

func TestMovieReleaseYear(t *testing.T) {
	assert.Equal(t, "2001", Movie{MovieReleaseDate: "2001-05-18"}.ReleaseYear())
	assert.Equal(t, "", Movie{}.ReleaseYear())
}

func TestPeerTopFiveRowToEntry(t *testing.T) {
	assert.True(t, PeerTopFiveRow{MovieName: "Heat", UserTopFive: 1}.ToEntry().IsOwnTopFive)
	assert.False(t, PeerTopFiveRow{MovieName: "Heat", UserTopFive: 0}.ToEntry().IsOwnTopFive)
}
