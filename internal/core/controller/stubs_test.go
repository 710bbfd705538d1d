package controller

import (
	"context"
	"sync"

	"github.com/primetrade/product-dashboard/internal/core/domain"
	"github.com/primetrade/product-dashboard/internal/core/ports"
)

type stubProductGateway struct {
	listFn   func(ctx context.Context) (ports.ProductList, error)
	createFn func(ctx context.Context, p domain.Product) (domain.Product, string, error)
	updateFn func(ctx context.Context, id int, p domain.Product) (domain.Product, string, error)
	deleteFn func(ctx context.Context, id int) error
}

func (s *stubProductGateway) ListProducts(ctx context.Context) (ports.ProductList, error) {
	return s.listFn(ctx)
}

func (s *stubProductGateway) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, string, error) {
	return s.createFn(ctx, p)
}

func (s *stubProductGateway) UpdateProduct(ctx context.Context, id int, p domain.Product) (domain.Product, string, error) {
	return s.updateFn(ctx, id, p)
}

func (s *stubProductGateway) DeleteProduct(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

type stubAuthGateway struct {
	loginFn    func(ctx context.Context, email, password string) (*domain.Session, string, error)
	registerFn func(ctx context.Context, in ports.RegisterInput) (string, error)
	currentFn  func(ctx context.Context) (*domain.Session, error)
	logoutFn   func(ctx context.Context) (string, error)
}

func (s *stubAuthGateway) Login(ctx context.Context, email, password string) (*domain.Session, string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthGateway) Register(ctx context.Context, in ports.RegisterInput) (string, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthGateway) CurrentUser(ctx context.Context) (*domain.Session, error) {
	return s.currentFn(ctx)
}

func (s *stubAuthGateway) Logout(ctx context.Context) (string, error) {
	return s.logoutFn(ctx)
}

type stubAccountGateway struct {
	listFn   func(ctx context.Context) ([]domain.Account, error)
	deleteFn func(ctx context.Context, id int) error
}

func (s *stubAccountGateway) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.listFn(ctx)
}

func (s *stubAccountGateway) DeleteAccount(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

// recordingNavigator captures every navigation a controller forces.
type recordingNavigator struct {
	mu     sync.Mutex
	routes []ports.Route
}

func (n *recordingNavigator) Go(r ports.Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, r)
}

func (n *recordingNavigator) last() (ports.Route, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.routes) == 0 {
		return ports.Route{}, false
	}
	return n.routes[len(n.routes)-1], true
}

func (n *recordingNavigator) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.routes)
}

type notice struct {
	kind    string
	title   string
	message string
}

// recordingNotifier captures notices and answers confirmations with a canned
// response. Safe for concurrent use: the optimistic-delete path reports from
// a goroutine.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
	confirm bool
}

func (n *recordingNotifier) Success(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{kind: "success", title: title, message: message})
}

func (n *recordingNotifier) Error(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{kind: "error", title: title, message: message})
}

func (n *recordingNotifier) Confirm(title, message string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{kind: "confirm", title: title, message: message})
	return n.confirm
}

func (n *recordingNotifier) byKind(kind string) []notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []notice
	for _, nt := range n.notices {
		if nt.kind == kind {
			out = append(out, nt)
		}
	}
	return out
}

func adminSession() *domain.Session {
	return &domain.Session{ID: 1, Name: "Administrator", Email: "admin@example.com", Role: domain.RoleAdmin}
}

func userSession() *domain.Session {
	return &domain.Session{ID: 2, Name: "Plain User", Email: "user@example.com", Role: domain.RoleUser}
}
