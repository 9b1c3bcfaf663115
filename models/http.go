package models

// Registration carries the fields of the registration form.
// The validate tags encode the account policy; they are checked by the
// service layer, which maps each failing rule to its own error.
type Registration struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"-" validate:"required,min=6"`
	Confirm  string `json:"-" validate:"required,eqfield=Password"`
	Role     Role   `json:"role"`
}

// Credentials carries the fields of the login form.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"-"`
}

// ProfileUpdate carries the "update_info" action of the profile form.
type ProfileUpdate struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// PasswordChange carries the "change_password" action of the profile form.
type PasswordChange struct {
	Current string `json:"-"`
	New     string `json:"-" validate:"min=6"`
	Confirm string `json:"-" validate:"eqfield=New"`
}

// Flash is a one-shot user-facing notice carried across a redirect.
type Flash struct {
	// Category is one of "success", "info", "warning" or "danger".
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Flash categories.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)
