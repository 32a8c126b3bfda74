package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
	"github.com/gearguard/maintenance-tracker/internal/core/session"
)

// AuthEntryPoint is where unauthenticated clients are sent.
const AuthEntryPoint = "/auth/login"

// Guard gates protected views on the session store: requests are rejected
// with 503 while the initial session restoration is still running, and with
// 401 (pointing at the auth entry point) when no session is active. The
// guard is a pure function of store state and has no side effects.
func Guard(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if store.Loading() {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session restoration in progress")
			}

			current := store.Current()
			if !current.Active() {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":    "authentication required",
					"redirect": AuthEntryPoint,
				})
			}

			c.Set("user_id", current.User.ID)
			c.Set("email", current.User.Email)
			c.Set("role", current.User.Role)
			c.Set("full_name", current.User.FullName)
			if current.Kind == domain.SessionDemo {
				c.Set("demo", true)
			}

			return next(c)
		}
	}
}
