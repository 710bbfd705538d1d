// Package middleware holds the stub backend's request middleware: session
// cookie validation and role enforcement.
package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/primetrade/product-dashboard/internal/core/domain"
	"github.com/primetrade/product-dashboard/internal/stub/store"
)

// CookieName is the session cookie the backend issues at login.
const CookieName = "session"

// IssueToken mints the HS256 session token embedded in the cookie.
func IssueToken(secret string, ttl time.Duration, u *store.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    string(u.Role),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Session validates the session cookie and injects the resolved user into the
// echo context under "user". The user is re-read from the store so a deleted
// account's cookie dies with it.
func Session(secret string, s *store.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Session expired")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Session expired")
			}

			id, ok := claims["user_id"].(float64)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Session expired")
			}
			user, err := s.GetUser(int(id))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Session expired")
			}

			c.Set("user", user)
			return next(c)
		}
	}
}

// SessionUser extracts the user the Session middleware resolved.
func SessionUser(c echo.Context) (*store.User, bool) {
	u, ok := c.Get("user").(*store.User)
	return u, ok
}

// RequireRole refuses callers whose session role is not in the allowed set.
func RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := SessionUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Session expired")
			}
			if _, ok := allowed[u.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
