package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenParser validates an access token and returns its claims. Satisfied by
// the auth provider, which owns the signing secret.
type TokenParser interface {
	ParseAccessToken(token string) (jwt.MapClaims, error)
}

// Auth validates the bearer token and injects its claims into context.
// Demo tokens are accepted as the fixed demo identity without hitting the
// parser, since they are never issued by the provider.
func Auth(tokens TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			if parts[1] == "demo-token" {
				c.Set("user_id", "demo-user-id")
				c.Set("email", "demo@gearguard.com")
				c.Set("role", "admin")
				c.Set("full_name", "Demo User")
				return next(c)
			}

			claims, err := tokens.ParseAccessToken(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user_id", claims["sub"])
			c.Set("email", claims["email"])
			c.Set("role", claims["role"])
			c.Set("full_name", claims["full_name"])

			return next(c)
		}
	}
}
