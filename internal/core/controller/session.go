// Package controller holds the view controllers of the dashboard: the
// session resolver plus one controller per screen. Each controller owns its
// view-state slice exclusively and talks to the backend only through the
// gateway ports; navigation and notices go through the presentation ports.
package controller

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/primetrade/product-dashboard/internal/core/domain"
	"github.com/primetrade/product-dashboard/internal/core/ports"
)

// ResolutionStatus is the tri-state result of resolving the caller identity.
type ResolutionStatus int

const (
	// ResolutionPending is the state consumers block on while the
	// current-user call is in flight.
	ResolutionPending ResolutionStatus = iota
	// ResolutionReady means the backend confirmed an identity.
	ResolutionReady
	// ResolutionFailed means transport failure or a rejected session.
	// Consumers present Message and force navigation to the login view.
	ResolutionFailed
)

// Resolution is what the session resolver hands to consumers.
type Resolution struct {
	Status   ResolutionStatus
	Identity *domain.Session
	Message  string
}

// SessionResolver asks the backend who the current caller is. Invoked exactly
// once per run; the result is immutable for that run, and there is no caching
// across runs, no background refresh, and no cancellation.
type SessionResolver struct {
	auth ports.AuthGateway
	log  zerolog.Logger
}

func NewSessionResolver(auth ports.AuthGateway, log zerolog.Logger) *SessionResolver {
	return &SessionResolver{auth: auth, log: log}
}

// Resolve performs the single current-user round trip.
func (r *SessionResolver) Resolve(ctx context.Context) Resolution {
	identity, err := r.auth.CurrentUser(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("session resolution failed")
		return Resolution{Status: ResolutionFailed, Message: err.Error()}
	}

	r.log.Info().Int("user_id", identity.ID).Str("role", string(identity.Role)).Msg("session resolved")
	return Resolution{Status: ResolutionReady, Identity: identity}
}
