package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const identityKey = "auth.identity"

// authenticate resolves the session identity from the request cookie. On
// failure it aborts with 401 and reports false; the response never reveals
// whether a resource exists, and no repository is touched.
func authenticate(c *gin.Context, ts *TokenService) (*Identity, bool) {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil, false
	}
	id, err := ts.Verify(raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil, false
	}
	c.Set(identityKey, id)
	return id, true
}

// RequireSession gates an endpoint on a valid session: any request without
// a verifiable token is rejected before it reaches the handler.
func RequireSession(ts *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, ts); !ok {
			return
		}
		c.Next()
	}
}

// RequireOwner gates an owner-scoped endpoint: on top of a valid session,
// the identity email must match the owner email the caller claims via the
// named query parameter. A mismatch is Forbidden, not Unauthorized —
// the credential is fine, the scope is not.
func RequireOwner(ts *TokenService, queryParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := authenticate(c, ts)
		if !ok {
			return
		}
		if c.Query(queryParam) != id.Email {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the identity bound by the guard, or nil when the
// request did not pass through one.
func IdentityFrom(c *gin.Context) *Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*Identity)
	return id
}
