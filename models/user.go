package models

// Role is a free-text access tag attached to every account.
// Known values are listed below, but any non-empty string is accepted.
type Role string

const (
	// RoleViewer is assigned when registration does not specify a role.
	RoleViewer Role = "viewer"
	// RoleResearcher marks accounts that record observations.
	RoleResearcher Role = "researcher"
	// RoleAdmin marks administrative accounts.
	RoleAdmin Role = "admin"
)

// User represents a dashboard account.
// Password holds whatever representation was persisted: plain text for
// legacy rows, a SHA-256 hex digest, or a bcrypt hash.
type User struct {
	// UserID is the generated unique identifier of the account.
	UserID int64 `json:"id"`

	// Name is the display name shown on the dashboard.
	Name string `json:"name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Password is never serialized.
	Password string `json:"-"`

	// Role is the access tag of the account (e.g. "viewer", "admin").
	Role Role `json:"role"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Researcher is the password-free projection of [User] returned by
// listings and the profile page.
type Researcher struct {
	UserID int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// Researcher drops the credential from u.
func (u User) Researcher() Researcher {
	return Researcher{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
}
