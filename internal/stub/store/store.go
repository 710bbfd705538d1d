// Package store is the stub backend's in-memory state. It exists so the
// dashboard can be developed and integration-tested against the real wire
// contract without the production backend; nothing here survives a restart.
package store

import (
	"errors"
	"sort"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/primetrade/product-dashboard/internal/core/domain"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is an account record with its credential hash. The hash never leaves
// the store.
type User struct {
	ID           int
	Name         string
	Email        string
	Role         domain.Role
	PasswordHash []byte
}

// Store holds all stub state behind one mutex. The echo server handles
// requests concurrently, so every accessor locks.
type Store struct {
	mu            sync.Mutex
	users         map[int]*User
	products      map[int]*domain.Product
	nextUserID    int
	nextProductID int

	// listServed marks the product list as cache-warm: the first list after
	// any product mutation reports cache:false, repeats report cache:true.
	listServed bool
}

func New() *Store {
	return &Store{
		users:         make(map[int]*User),
		products:      make(map[int]*domain.Product),
		nextUserID:    1,
		nextProductID: 1,
	}
}

// CreateUser registers an account. The password is bcrypt-hashed before it is
// kept.
func (s *Store) CreateUser(name, email, password string, role domain.Role) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, ErrEmailTaken
		}
	}

	u := &User{
		ID:           s.nextUserID,
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: hash,
	}
	s.nextUserID++
	s.users[u.ID] = u

	clone := *u
	return &clone, nil
}

// Authenticate checks credentials and returns the matching user.
func (s *Store) Authenticate(email, password string) (*User, error) {
	s.mu.Lock()
	var found *User
	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			found = &clone
			break
		}
	}
	s.mu.Unlock()

	if found == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(found.PasswordHash, []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return found, nil
}

// GetUser looks an account up by identifier.
func (s *Store) GetUser(id int) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

// ListUsers returns every account in identifier order.
func (s *Store) ListUsers() []domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Account, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, domain.Account{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DeleteUser removes an account.
func (s *Store) DeleteUser(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	return nil
}

// ListProducts returns the catalog in identifier order plus the cache-served
// flag for this read.
func (s *Store) ListProducts() ([]domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	cached := s.listServed
	s.listServed = true
	return out, cached
}

// CreateProduct assigns the real identifier and stores the record.
func (s *Store) CreateProduct(p domain.Product) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextProductID
	s.nextProductID++
	stored := p
	s.products[p.ID] = &stored
	s.listServed = false
	return p
}

// UpdateProduct replaces the record with identifier id.
func (s *Store) UpdateProduct(id int, p domain.Product) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return domain.Product{}, ErrNotFound
	}
	p.ID = id
	stored := p
	s.products[id] = &stored
	s.listServed = false
	return p, nil
}

// DeleteProduct removes the record with identifier id.
func (s *Store) DeleteProduct(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	s.listServed = false
	return nil
}
