package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobnest/jobnest/internal/config"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

// SetSessionCookie writes the session cookie. In production the frontend is
// served from another origin, so the cookie must be Secure with
// SameSite=None; local development runs over plain HTTP and uses Lax.
// Always httpOnly.
func SetSessionCookie(c *gin.Context, cfg *config.Config, token string) {
	secure := cfg.IsProduction()
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(CookieName, token, int(TokenLifetime.Seconds()), "/", "", secure, true)
}

// ClearSessionCookie instructs the client to discard its token. This is the
// whole of revocation: there is no server-side blacklist, and a copied token
// stays valid elsewhere until it expires. Known limitation.
func ClearSessionCookie(c *gin.Context, cfg *config.Config) {
	secure := cfg.IsProduction()
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}
