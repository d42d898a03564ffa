package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"` // Ensure email is unique across all users
	PasswordHash string     `json:"-" gorm:"not null"`                 // Store bcrypt hash, ignore for JSON serialization
	DisplayName  string     `json:"display_name" gorm:"size:50;not null"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// RegisterRequest defines the request body for local registration
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"displayName" validate:"required,min=1,max=50"`
}

// LoginRequest defines the request body for local sign-in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	Token       string `json:"token"`
	DisplayName string `json:"displayName"`
}

// UserResponse is the compact user shape embedded in lists
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
}

// ToResponse converts a User to its compact response shape
func (u *User) ToResponse() UserResponse {
	return UserResponse{ID: u.ID, DisplayName: u.DisplayName}
}

// ProfileResponse is returned for a user's public profile page
type ProfileResponse struct {
	UserID      uuid.UUID      `json:"userId"`
	DisplayName string         `json:"displayName"`
	PostCount   int            `json:"postCount"`
	Posts       []PostResponse `json:"posts"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}
