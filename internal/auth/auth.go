// Package auth authenticates API callers with HS256 signed JSON Web Tokens.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// ContextSubject is the gin context key the subject of the token is stored at.
const ContextSubject = "sikuang-auth-subject"

// Issuer is set on all tokens issued by NewToken.
const Issuer = "sikuang"

var (
	ErrAuthorizationMissing = errors.New("the Authorization header must be set")
	ErrAuthorizationFormat  = errors.New("the Authorization header must have the format 'Bearer <token>'")
	ErrTokenInvalid         = errors.New("the token is invalid or has expired")
)

type httpError struct {
	Error string `json:"error" example:"the token is invalid or has expired"`
}

// NewToken issues a token for the subject that is valid for the duration.
func NewToken(secret, subject string, validFor time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validFor)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse validates the token and returns its subject.
func Parse(secret, token string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(Issuer))
	if err != nil {
		return "", err
	}

	return claims.Subject, nil
}

// Middleware rejects all requests without a valid bearer token.
//
// With an empty secret, authentication is disabled and all requests pass.
func Middleware(secret string) gin.HandlerFunc {
	if secret == "" {
		log.Warn().Msg("JWT_SECRET is not set, API authentication is disabled")
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, ErrAuthorizationMissing)
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
			abort(c, ErrAuthorizationFormat)
			return
		}

		subject, err := Parse(secret, token)
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("token rejected")
			abort(c, ErrTokenInvalid)
			return
		}

		c.Set(ContextSubject, subject)
		c.Next()
	}
}

func abort(c *gin.Context, err error) {
	c.Header("WWW-Authenticate", `Bearer realm="sikuang"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: err.Error()})
}
