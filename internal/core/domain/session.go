package domain

// Role is the authorization role carried by a session.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid reports whether r is one of the roles the backend issues.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Session is the caller's resolved identity for the current run. It is
// populated once by the session resolver and read-only afterwards; a new run
// resolves a fresh one. The backend's session cookie is the source of truth;
// nothing here is persisted locally.
type Session struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
