package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleViewer = "viewer"
)

// RedactedPassword replaces the real password field whenever a user record
// leaves the credential store (auth snapshots, API responses, exports).
const RedactedPassword = "[PROTECTED]"

// User is a locally managed application user. Password holds one of three
// credential generations, see Credential.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Salt      string    `json:"salt,omitempty"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	IsActive  bool      `json:"isActive"`
}

// Redacted returns a copy safe to persist in the auth snapshot or return to
// clients: the password is replaced by a placeholder and the salt is dropped.
func (u User) Redacted() User {
	u.Password = RedactedPassword
	u.Salt = ""
	return u
}

// AuthState is the persisted "who is logged in" snapshot. The embedded user
// is always redacted; the invariant is enforced by the authenticator.
type AuthState struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	CurrentUser     *User  `json:"currentUser"`
	SessionToken    string `json:"sessionToken,omitempty"`
}

// Role-based permissions. Total functions: unknown roles simply get nothing.

// CanCreate reports whether the role may create records.
func CanCreate(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}

// CanEdit reports whether the role may edit records. Staff can only add.
func CanEdit(role string) bool {
	return role == RoleAdmin
}

// CanDelete reports whether the role may delete records.
func CanDelete(role string) bool {
	return role == RoleAdmin
}

// CanManageUsers reports whether the role may administer user accounts.
func CanManageUsers(role string) bool {
	return role == RoleAdmin
}
