// internal/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/terrazul/terrazul-backend/internal/config"
)

const SessionKey = "cart_session_id"

// CartSession guarantees every caller of the cart routes carries a session
// cookie. A missing or malformed cookie gets a fresh UUID so anonymous
// visitors keep their cart across requests.
func CartSession(cfg *config.CartConfig) gin.HandlerFunc {
	maxAge := cfg.TTLDays * 24 * 60 * 60

	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.CookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
		} else if _, parseErr := uuid.Parse(sessionID); parseErr != nil {
			sessionID = uuid.NewString()
		}

		// Refresh the cookie on every touch so active carts never expire
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.CookieName, sessionID, maxAge, "/", "", false, true)

		c.Set(SessionKey, sessionID)
		c.Next()
	}
}

// GetCartSession returns the session id placed by CartSession.
func GetCartSession(c *gin.Context) string {
	if sessionID, exists := c.Get(SessionKey); exists {
		if id, ok := sessionID.(string); ok {
			return id
		}
	}
	return ""
}
