package middleware

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/wellnest/backend/api/transport"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "3f1f8e7e-0c4a-4b5e-9a8a-6a2f0c9d1b2e",
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func runGuarded(t *testing.T, authorization string) (*fasthttp.RequestCtx, bool) {
	t.Helper()
	called := false
	guard := JWTAuth(testSecret, nil)(func(ctx *fasthttp.RequestCtx) {
		called = true
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/api/v1/user-activities")
	if authorization != "" {
		ctx.Request.Header.Set("Authorization", authorization)
	}
	guard(ctx)
	return ctx, called
}

func decodeAuthError(t *testing.T, ctx *fasthttp.RequestCtx) transport.AuthErrorResponse {
	t.Helper()
	var body transport.AuthErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	return body
}

func TestJWTAuthMissingHeader(t *testing.T) {
	ctx, called := runGuarded(t, "")
	assert.False(t, called)
	assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())

	var body transport.MessageResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	assert.Equal(t, "Unauthorized", body.Message)
}

func TestJWTAuthMalformedToken(t *testing.T) {
	ctx, called := runGuarded(t, "Bearer not-a-jwt")
	assert.False(t, called)
	assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())

	body := decodeAuthError(t, ctx)
	assert.Equal(t, "UnauthorizedError", body.Name)
	assert.Equal(t, "Token is invalid", body.Message)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	token := signedToken(t, testSecret, -time.Minute)
	ctx, called := runGuarded(t, "Bearer "+token)
	assert.False(t, called)

	body := decodeAuthError(t, ctx)
	assert.Equal(t, "UnauthorizedError", body.Name)
	assert.Equal(t, "Token expired", body.Message)
}

func TestJWTAuthWrongSignature(t *testing.T) {
	token := signedToken(t, "another-secret", time.Hour)
	ctx, called := runGuarded(t, "Bearer "+token)
	assert.False(t, called)

	body := decodeAuthError(t, ctx)
	assert.Equal(t, "Token is invalid", body.Message)
}

func TestJWTAuthValidTokenPassesThrough(t *testing.T) {
	token := signedToken(t, testSecret, time.Hour)
	ctx, called := runGuarded(t, "Bearer "+token)

	assert.True(t, called)
	assert.Equal(t, "3f1f8e7e-0c4a-4b5e-9a8a-6a2f0c9d1b2e",
		string(ctx.Request.Header.Peek("X-User-ID")))
}
