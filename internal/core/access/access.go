// Package access holds the role-based gate consulted before rendering or
// routing to admin-only surfaces. It is a presentation-layer check only; the
// backend re-checks authorization on every call it receives.
package access

import "github.com/primetrade/product-dashboard/internal/core/domain"

// CanManageProducts reports whether s may see create/edit/delete affordances
// on the catalog.
func CanManageProducts(s *domain.Session) bool {
	return s != nil && s.Role == domain.RoleAdmin
}

// CanViewAdmin reports whether s may enter the admin panel.
func CanViewAdmin(s *domain.Session) bool {
	return s != nil && s.Role == domain.RoleAdmin
}
