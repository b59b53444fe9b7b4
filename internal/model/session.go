package model

// Role is the fixed set of roles a session can carry.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDoctor Role = "doctor"
	RoleNurse  Role = "nurse"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleNurse:
		return true
	}
	return false
}

// Session is the record representing a logged-in user. It is persisted in
// the session store across requests; absence means anonymous.
type Session struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
}

// Valid enforces the session invariant: a non-absent session always has a
// user ID and a role from the known set.
func (s *Session) Valid() bool {
	return s != nil && s.UserID != "" && s.Role.Valid()
}

// LoginRequest is the credential form posted to /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
