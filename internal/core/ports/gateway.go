package ports

import (
	"context"

	"github.com/primetrade/product-dashboard/internal/core/domain"
)

// ProductList is the result of a list-products call. FromCache reports
// whether the server marked the payload as cache-served; it is display
// metadata only and has no behavioral effect.
type ProductList struct {
	Products  []domain.Product
	FromCache bool
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Name     string `validate:"required,min=2"`
	Role     domain.Role
}

// ProductGateway issues the product CRUD calls. Implementations send the
// session cookie implicitly on every call. Transport failures (server
// unreachable, body undecodable) come back as wrapped plain errors;
// structured rejections come back as *domain.RemoteError; the backend's
// unauthenticated discriminator comes back as domain.ErrUnauthenticated.
type ProductGateway interface {
	ListProducts(ctx context.Context) (ProductList, error)
	CreateProduct(ctx context.Context, p domain.Product) (domain.Product, string, error)
	UpdateProduct(ctx context.Context, id int, p domain.Product) (domain.Product, string, error)
	DeleteProduct(ctx context.Context, id int) error
}

// AuthGateway issues session and account-entry calls.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*domain.Session, string, error)
	Register(ctx context.Context, in RegisterInput) (string, error)
	CurrentUser(ctx context.Context) (*domain.Session, error)
	Logout(ctx context.Context) (string, error)
}

// AccountGateway issues the admin account-management calls.
type AccountGateway interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	DeleteAccount(ctx context.Context, id int) error
}
