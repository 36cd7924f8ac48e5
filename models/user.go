package models

// User carries the credentials exchanged with the authentication endpoints.
// Password is never persisted by the client.
type User struct {
	UserID   string `json:"user_id,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}
