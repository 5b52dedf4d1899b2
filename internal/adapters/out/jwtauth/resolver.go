// Package jwtauth verifies bearer tokens issued by the auth service.
package jwtauth

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"

	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the user id in "sub" and the account role in "role".
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Resolver accepts HS256 tokens signed with a shared secret.
type Resolver struct {
	secret []byte
	parser *jwt.Parser
}

func NewResolver(secret string) (*Resolver, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	return &Resolver{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

func (r *Resolver) Resolve(_ context.Context, raw string) (ports.Principal, error) {
	claims := &Claims{}
	_, err := r.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return r.secret, nil
	})
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: subject: %v", ErrInvalidToken, err)
	}
	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return ports.Principal{UserID: userID, Role: role}, nil
}
