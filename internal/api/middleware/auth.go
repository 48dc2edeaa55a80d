package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/eminentestates/residence-api/internal/api/metrics"
	"github.com/eminentestates/residence-api/internal/core/domain"
)

// Context keys set by Auth for downstream middleware and handlers.
const (
	CtxEmail  = "email"
	CtxClaims = "claims"
)

// Auth validates the bearer token and injects the decoded claims into
// the request context. Expiry is enforced by the parser via the exp
// claim. This middleware never touches the store.
//
// Failures surface as domain.ErrUnauthenticated; the central error
// handler renders the 401.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthDenialsTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthDenialsTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrUnauthenticated
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.AuthDenialsTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrUnauthenticated
			}

			email, _ := claims["email"].(string)
			c.Set(CtxEmail, email)
			c.Set(CtxClaims, claims)

			return next(c)
		}
	}
}
