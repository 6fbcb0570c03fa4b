package model

// Roles an authenticated dashboard user can hold.
const (
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
)

// Scope carries the caller's identity and tenant through every layer.
// For anonymous visitors only SiteKey is set.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	SiteKey  string `json:"site_key"`
}

// IsAdmin checks if the scope has admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// IsAuthenticated reports whether the scope belongs to a logged-in user.
func (s Scope) IsAuthenticated() bool {
	return s.UserID != ""
}
