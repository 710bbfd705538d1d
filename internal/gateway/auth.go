package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/primetrade/product-dashboard/internal/core/domain"
	"github.com/primetrade/product-dashboard/internal/core/ports"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Name     string      `json:"name"`
	Role     domain.Role `json:"role"`
}

type authEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Data    *struct {
		User *domain.Session `json:"user"`
	} `json:"data"`
}

// Login authenticates with the backend. On success the session cookie lands
// in the client's jar and rides along on every later call.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, string, error) {
	start := time.Now()
	s, msg, err := c.login(ctx, email, password)
	observe("login", start, err)
	return s, msg, err
}

func (c *Client) login(ctx context.Context, email, password string) (*domain.Session, string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, "", err
	}

	var env authEnvelope
	if err := decode(resp, &env); err != nil {
		return nil, "", err
	}

	if env.Error != "" {
		msg := env.Message
		if msg == "" {
			msg = "Login failed."
		}
		return nil, "", &domain.RemoteError{Message: msg}
	}
	if env.Data == nil || env.Data.User == nil {
		return nil, "", domain.ErrMalformedResponse
	}
	return env.Data.User, env.Message, nil
}

// Register creates an account and returns the server's message.
func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (string, error) {
	start := time.Now()
	msg, err := c.register(ctx, in)
	observe("register", start, err)
	return msg, err
}

func (c *Client) register(ctx context.Context, in ports.RegisterInput) (string, error) {
	req := registerRequest{Email: in.Email, Password: in.Password, Name: in.Name, Role: in.Role}
	resp, err := c.do(ctx, http.MethodPost, "/auth/register", req)
	if err != nil {
		return "", err
	}

	var env authEnvelope
	if err := decode(resp, &env); err != nil {
		return "", err
	}

	if env.Error != "" || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "Registration failed."
		}
		return "", &domain.RemoteError{Message: msg}
	}
	return env.Message, nil
}

// CurrentUser asks the backend who the session cookie belongs to. This is
// the only product-dashboard call that inspects the HTTP status: a non-2xx
// answer is a transport-class failure reported as "HTTP <code>".
func (c *Client) CurrentUser(ctx context.Context) (*domain.Session, error) {
	start := time.Now()
	s, err := c.currentUser(ctx)
	observe("current_user", start, err)
	return s, err
}

func (c *Client) currentUser(ctx context.Context) (*domain.Session, error) {
	resp, err := c.do(ctx, http.MethodGet, "/auth/current-user", nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("gateway: current user: HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var env struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    *domain.Session `json:"data"`
	}
	if err := decode(resp, &env); err != nil {
		return nil, err
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "Failed to fetch user"
		}
		return nil, &domain.RemoteError{Message: msg}
	}
	if env.Data == nil {
		return nil, domain.ErrMalformedResponse
	}
	return env.Data, nil
}

// Logout ends the backend session and returns the server's parting message.
func (c *Client) Logout(ctx context.Context) (string, error) {
	start := time.Now()
	msg, err := c.logout(ctx)
	observe("logout", start, err)
	return msg, err
}

func (c *Client) logout(ctx context.Context) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, "/auth/logout", nil)
	if err != nil {
		return "", err
	}

	var env struct {
		Message string `json:"message"`
	}
	if err := decode(resp, &env); err != nil {
		return "", err
	}
	return env.Message, nil
}
