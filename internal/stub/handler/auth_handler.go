// Package handler holds the stub backend's echo handlers, one per backend
// capability, answering with the exact envelopes the production API uses.
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/primetrade/product-dashboard/internal/core/domain"
	"github.com/primetrade/product-dashboard/internal/stub/middleware"
	"github.com/primetrade/product-dashboard/internal/stub/store"
)

// AuthHandler serves registration, login, session introspection and logout.
type AuthHandler struct {
	store      *store.Store
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthHandler(s *store.Store, jwtSecret string, sessionTTL time.Duration) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthHandler{store: s, jwtSecret: jwtSecret, sessionTTL: sessionTTL}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=2"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN USER"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionPayload struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func sessionFromUser(u *store.User) sessionPayload {
	return sessionPayload{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)}
}

// Register creates an account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role := domain.Role(req.Role)
	if !role.Valid() {
		role = domain.RoleUser
	}

	if _, err := h.store.CreateUser(req.Name, req.Email, req.Password, role); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": "User registered successfully",
	})
}

// Login authenticates and plants the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		return err
	}

	token, err := middleware.IssueToken(h.jwtSecret, h.sessionTTL, user)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.sessionTTL),
	})

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"data":    map[string]any{"user": sessionFromUser(user)},
	})
}

// CurrentUser reports who the session cookie belongs to.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	user, ok := middleware.SessionUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Session expired")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    sessionFromUser(user),
	})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	return c.JSON(http.StatusOK, map[string]string{"message": "Logout successful"})
}
