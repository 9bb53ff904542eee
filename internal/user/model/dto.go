package model

// RegisterRequest is the body of the register-or-login call.
type RegisterRequest struct {
	Username string `json:"username"`
	PfpURL   string `json:"pfpUrl"`
}

// AuthResponse is returned by register-or-login.
type AuthResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// UpdateAvatarRequest is the body of the avatar update call.
type UpdateAvatarRequest struct {
	PfpURL string `json:"pfpUrl"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	User User `json:"user"`
}
