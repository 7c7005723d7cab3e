package dto

// RegisterRequest payload for new accounts. Field names mirror the
// registration form.
type RegisterRequest struct {
	Name     string `json:"user_name"`
	Email    string `json:"user_email"`
	Password string `json:"user_password"`
	Role     string `json:"user_role"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
