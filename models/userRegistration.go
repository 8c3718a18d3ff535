package models

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"firstName" binding:"required,max=80"`
	LastName  string `json:"lastName" binding:"required,max=80"`
}

// LoginRequest is the sign-in payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	User      *User  `json:"user"`
}

// ProfileUpdateRequest carries optional profile changes. Nil fields are left untouched.
type ProfileUpdateRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,max=80"`
	LastName  *string `json:"lastName" binding:"omitempty,max=80"`
	Bio       *string `json:"bio" binding:"omitempty,max=1000"`
	AvatarURL *string `json:"avatarUrl" binding:"omitempty,url"`
	IsPublic  *bool   `json:"isPublic"`
}
