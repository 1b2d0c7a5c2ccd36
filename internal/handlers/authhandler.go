package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobnest/jobnest/internal/auth"
	"github.com/jobnest/jobnest/internal/config"
	"github.com/jobnest/jobnest/internal/dtos"
)

type AuthHandler struct {
	Tokens *auth.TokenService
	Config *config.Config
}

func NewAuthHandler(ts *auth.TokenService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Tokens: ts,
		Config: cfg,
	}
}

// IssueToken is the POST /auth/token endpoint: signs a session token for
// the given email and sets it as the session cookie.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dtos.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	token, err := h.Tokens.Issue(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	auth.SetSessionCookie(c, h.Config, token)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout is the POST /auth/logout endpoint. Revocation is client-local:
// the cookie is cleared, nothing is blacklisted server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c, h.Config)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
