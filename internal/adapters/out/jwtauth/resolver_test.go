package jwtauth_test

import (
	"testing"
	"time"

	"marketplace/internal/adapters/out/jwtauth"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwtauth.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func claimsFor(sub, role string, expires time.Time) jwtauth.Claims {
	return jwtauth.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
}

func TestNewResolver_EmptySecret(t *testing.T) {
	_, err := jwtauth.NewResolver("")
	assert.Error(t, err)
}

func TestResolver_Resolve(t *testing.T) {
	resolver, err := jwtauth.NewResolver(secret)
	require.NoError(t, err)

	id := kernel.NewUUID()
	token := sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(id.String(), "provider", time.Now().Add(time.Hour)))

	principal, err := resolver.Resolve(t.Context(), token)

	require.NoError(t, err)
	assert.True(t, id.IsEqual(principal.UserID))
	assert.Equal(t, user.Provider, principal.Role)
}

func TestResolver_Resolve_Rejects(t *testing.T) {
	resolver, err := jwtauth.NewResolver(secret)
	require.NoError(t, err)

	valid := time.Now().Add(time.Hour)
	id := kernel.NewUUID().String()

	tests := map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": sign(t, jwt.SigningMethodHS256, []byte("other"), claimsFor(id, "ADMIN", valid)),
		"wrong method": sign(t, jwt.SigningMethodHS512, []byte(secret), claimsFor(id, "ADMIN", valid)),
		"expired":      sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(id, "ADMIN", time.Now().Add(-time.Minute))),
		"bad subject":  sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor("42", "ADMIN", valid)),
		"unknown role": sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(id, "ROOT", valid)),
		"missing role": sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(id, "", valid)),
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := resolver.Resolve(t.Context(), token)
			assert.ErrorIs(t, err, jwtauth.ErrInvalidToken)
		})
	}
}
