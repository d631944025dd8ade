package util

import (
	"movie_recommender/configs"
	"movie_recommender/model"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSecret(t *testing.T, secret string) {
	t.Helper()
	prev := configs.GetConfigs()
	t.Cleanup(func() { configs.SetConfigs(prev) })

	c := prev
	c.AccessTokenSecret = secret
	c.AccessTokenExpireHour = 1
	configs.SetConfigs(c)
}

func TestCreateAndVerifyToken(t *testing.T) {
	setSecret(t, "test-secret")

	detail, err := CreateJwtToken(42, "a@example.com", model.AdminRole)
	require.NoError(t, err)
	assert.NotEmpty(t, detail.AccessToken)
	assert.InDelta(t, time.Now().Add(time.Hour).UnixMilli(), detail.ExpiresAt, float64(5*time.Second/time.Millisecond))

	token, claims, err := VerifyToken(detail.AccessToken)
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, int64(42), claims.UserId)
	assert.Equal(t, model.AdminRole, claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	setSecret(t, "first")
	detail, err := CreateJwtToken(1, "a@example.com", model.DefaultUserRole)
	require.NoError(t, err)

	setSecret(t, "second")
	_, _, err = VerifyToken(detail.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestVerifyToken_Expired(t *testing.T) {
	setSecret(t, "test-secret")

	claims := MyJwtClaims{
		UserId: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, _, err = VerifyToken(tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestCreateJwtToken_NoSecret(t *testing.T) {
	setSecret(t, "")

	_, err := CreateJwtToken(1, "a@example.com", model.DefaultUserRole)
	assert.ErrorIs(t, err, ErrMissingSecret)
}
