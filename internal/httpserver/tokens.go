// apps/go-term/internal/httpserver/tokens.go
//
// Round tokens for the HTTP host.
//
// Every round started over HTTP gets a short-lived HS256 JWT whose "gid"
// claim names the round. Guesses must present the token as a bearer
// credential; a token for one round cannot drive another.

package httpserver

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const tokenIssuer = "cordl"

// Tokens signs and verifies round tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens builds a token manager. An empty secret is replaced with random
// bytes, which invalidates outstanding tokens on restart. Rounds do not
// survive a restart either.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("httpserver: token secret: %v", err))
		}
		log.Warn().Msg("GAME_TOKEN_SECRET not set; using an ephemeral secret")
	}
	return &Tokens{secret: key, ttl: ttl, now: time.Now}
}

// roundClaims extends standard JWT claims with the round ID.
type roundClaims struct {
	jwt.RegisteredClaims
	GameID string `json:"gid"`
}

// Sign issues a token bound to round gid.
func (t *Tokens) Sign(gid string) (string, error) {
	now := t.now()
	claims := roundClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		GameID: gid,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns its round ID.
func (t *Tokens) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", errors.New("token is empty")
	}
	token, err := jwt.ParseWithClaims(tokenString, &roundClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(t.now))
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	claims, ok := token.Claims.(*roundClaims)
	if !ok || !token.Valid || claims.GameID == "" {
		return "", errors.New("invalid token claims")
	}
	return claims.GameID, nil
}

// ctxRoundKey is the context key type for the token's round ID.
type ctxRoundKey struct{}

// requireRoundToken enforces a valid bearer token and injects its round ID
// into the request context.
func (t *Tokens) requireRoundToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := bearer(r)
		if tokenStr == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			return
		}
		gid, err := t.Verify(tokenStr)
		if err != nil {
			log.Debug().Err(err).Msg("reject round token")
			writeError(w, http.StatusUnauthorized, "invalid_token", "token rejected")
			return
		}
		ctx := context.WithValue(r.Context(), ctxRoundKey{}, gid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenRound returns the round ID stored by requireRoundToken.
func tokenRound(ctx context.Context) string {
	gid, _ := ctx.Value(ctxRoundKey{}).(string)
	return gid
}

// bearer extracts a token from "Authorization: Bearer <token>".
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
