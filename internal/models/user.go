package models

import "time"

// UserAccount owns arrival, transfer, and event records as the acting user.
// Permission semantics are deliberately coarse: IsAdmin grants everything,
// any other flag combination grants nothing (see auth.Can).
type UserAccount struct {
	ID            int       `json:"id"`
	Username      string    `json:"username"`
	PasswordHash  string    `json:"-"` // Never expose in JSON
	IsStaff       bool      `json:"is_staff"`
	IsAdmin       bool      `json:"is_admin"`
	CanEncode     bool      `json:"can_encode"`
	Firstname     string    `json:"firstname"`
	MiddleInitial string    `json:"middle_initial"`
	Lastname      string    `json:"lastname"`
	Gender        string    `json:"gender"`
	Position      string    `json:"position"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	ModifiedAt    time.Time `json:"modified_at"`
}

// FullName returns "Firstname Lastname" for display
func (u *UserAccount) FullName() string {
	return u.Firstname + " " + u.Lastname
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token string       `json:"token"`
	User  *UserAccount `json:"user"`
}

// CreateUserRequest represents the request body for creating a user account
type CreateUserRequest struct {
	Username      string `json:"username" validate:"required,max=50"`
	Password      string `json:"password" validate:"required"`
	IsStaff       *bool  `json:"is_staff"`
	IsAdmin       bool   `json:"is_admin"`
	CanEncode     bool   `json:"can_encode"`
	Firstname     string `json:"firstname" validate:"max=200"`
	MiddleInitial string `json:"middle_initial" validate:"max=2"`
	Lastname      string `json:"lastname" validate:"max=200"`
	Gender        string `json:"gender" validate:"max=1"`
	Position      string `json:"position" validate:"max=200"`
}

// UpdateUserRequest represents the request body for updating a user account
type UpdateUserRequest struct {
	Password      string `json:"password,omitempty"` // Optional
	IsStaff       *bool  `json:"is_staff"`
	IsAdmin       *bool  `json:"is_admin"`
	CanEncode     *bool  `json:"can_encode"`
	Firstname     string `json:"firstname" validate:"max=200"`
	MiddleInitial string `json:"middle_initial" validate:"max=2"`
	Lastname      string `json:"lastname" validate:"max=200"`
	Gender        string `json:"gender" validate:"max=1"`
	Position      string `json:"position" validate:"max=200"`
}
