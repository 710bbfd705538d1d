package controller

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/primetrade/product-dashboard/internal/core/domain"
	"github.com/primetrade/product-dashboard/internal/core/ports"
)

// Auth drives the login view (log-in and register modes) and the logout
// action on the catalog header.
type Auth struct {
	gateway  ports.AuthGateway
	nav      ports.Navigator
	notify   ports.Notifier
	log      zerolog.Logger
	validate *validator.Validate

	// onSession receives the identity a successful login returns, so the
	// application can hand it to the views as an explicit read-only value.
	onSession func(*domain.Session)
}

func NewAuth(gateway ports.AuthGateway, nav ports.Navigator, notify ports.Notifier, log zerolog.Logger, onSession func(*domain.Session)) *Auth {
	return &Auth{
		gateway:   gateway,
		nav:       nav,
		notify:    notify,
		log:       log,
		validate:  validator.New(),
		onSession: onSession,
	}
}

// Login submits credentials. A structured rejection shows the server's
// message and stays on the view; a transport failure shows a generic notice.
// Success hands the identity over and navigates to the catalog.
func (a *Auth) Login(ctx context.Context, email, password string) {
	session, message, err := a.gateway.Login(ctx, email, password)
	if err != nil {
		if re := domain.AsRemote(err); re != nil {
			a.notify.Error("Error", re.Error())
			return
		}
		a.log.Warn().Err(err).Msg("login call failed")
		a.notify.Error("Error", "Unexpected server error.")
		return
	}

	if a.onSession != nil {
		a.onSession(session)
	}
	if message == "" {
		message = "Login successful"
	}
	a.notify.Success("Success", message)
	a.nav.Go(ports.Route{Name: ports.RouteCatalog})
}

// Register validates the form fields locally (email, password, and name are
// required), then submits. Success shows a fixed confirmation and navigates
// to the catalog.
func (a *Auth) Register(ctx context.Context, in ports.RegisterInput) {
	if !in.Role.Valid() {
		in.Role = domain.RoleUser
	}
	if err := a.validate.Struct(in); err != nil {
		a.log.Debug().Err(err).Msg("register form rejected")
		a.notify.Error("Error", "Please fill in all required fields.")
		return
	}

	_, err := a.gateway.Register(ctx, in)
	if err != nil {
		if re := domain.AsRemote(err); re != nil {
			a.notify.Error("Error", re.Error())
			return
		}
		a.log.Warn().Err(err).Msg("register call failed")
		a.notify.Error("Error", "Unexpected server error.")
		return
	}

	a.notify.Success("Success", "Registration successful.")
	a.nav.Go(ports.Route{Name: ports.RouteCatalog})
}

// Logout ends the backend session. Only the exact confirmation message moves
// the view to login; anything else is surfaced as a failure and the view
// stays put.
func (a *Auth) Logout(ctx context.Context) {
	message, err := a.gateway.Logout(ctx)
	if err != nil {
		a.log.Warn().Err(err).Msg("logout call failed")
		a.notify.Error("Logout Failed", "")
		return
	}

	if message == "Logout successful" {
		a.nav.Go(ports.Route{Name: ports.RouteLogin})
		return
	}
	if message == "" {
		message = "Logout Failed"
	}
	a.notify.Error(message, "")
}
