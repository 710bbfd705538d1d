package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/primetrade/product-dashboard/internal/core/domain"
)

func TestSessionResolver_Ready(t *testing.T) {
	auth := &stubAuthGateway{
		currentFn: func(ctx context.Context) (*domain.Session, error) {
			return adminSession(), nil
		},
	}
	r := NewSessionResolver(auth, zerolog.Nop())

	res := r.Resolve(context.Background())

	if res.Status != ResolutionReady {
		t.Fatalf("expected ResolutionReady, got %v", res.Status)
	}
	if res.Identity == nil || res.Identity.Email != "admin@example.com" {
		t.Fatalf("unexpected identity: %+v", res.Identity)
	}
}

func TestSessionResolver_TransportFailure(t *testing.T) {
	auth := &stubAuthGateway{
		currentFn: func(ctx context.Context) (*domain.Session, error) {
			return nil, errors.New("gateway: current user: HTTP 502: Bad Gateway")
		},
	}
	r := NewSessionResolver(auth, zerolog.Nop())

	res := r.Resolve(context.Background())

	if res.Status != ResolutionFailed {
		t.Fatalf("expected ResolutionFailed, got %v", res.Status)
	}
	if res.Identity != nil {
		t.Fatalf("failed resolution must carry no identity")
	}
	if res.Message == "" {
		t.Fatalf("failed resolution must carry a message")
	}
}

func TestSessionResolver_RejectedBody(t *testing.T) {
	auth := &stubAuthGateway{
		currentFn: func(ctx context.Context) (*domain.Session, error) {
			return nil, &domain.RemoteError{Message: "Failed to fetch user"}
		},
	}
	r := NewSessionResolver(auth, zerolog.Nop())

	res := r.Resolve(context.Background())

	if res.Status != ResolutionFailed {
		t.Fatalf("expected ResolutionFailed, got %v", res.Status)
	}
	if res.Message != "Failed to fetch user" {
		t.Fatalf("expected body message, got %q", res.Message)
	}
}
