package main

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	now := time.Now()

	raw, err := generateToken("reception", "admin", "s3cret", time.Hour, now)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte("s3cret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "reception", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
	assert.EqualValues(t, now.Add(time.Hour).Unix(), claims["exp"])
}

func TestGenerateToken_WrongSecretRejected(t *testing.T) {
	raw, err := generateToken("reception", "admin", "s3cret", time.Hour, time.Now())
	require.NoError(t, err)

	_, err = jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return []byte("other"), nil
	})
	assert.Error(t, err)
}
