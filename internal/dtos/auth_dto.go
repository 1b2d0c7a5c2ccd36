package dtos

// SessionRequest is the body for issuing a session token.
type SessionRequest struct {
	Email string `json:"email" binding:"required,email"`
}
