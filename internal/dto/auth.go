package dto

import "time"

// LoginRequest carries login credentials. Username also accepts the
// registered email.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token plus the display fields the
// frontend caches.
type LoginResponse struct {
	Token     string    `json:"accessToken"`
	TokenType string    `json:"tokenType"`
	UserID    string    `json:"userID"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ImageURL  string    `json:"imageURL"`
	CreatedAt time.Time `json:"createdAt"`
}
