// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get language from header
		lang := c.GetHeader("Accept-Language")

		// Parse language preference
		if lang != "" {
			// Handle cases like "es-CL,es;q=0.9,en;q=0.8"
			langs := strings.Split(lang, ",")
			if len(langs) > 0 {
				firstLang := strings.TrimSpace(strings.Split(langs[0], ";")[0])
				switch {
				case strings.HasPrefix(firstLang, "es"):
					lang = "es"
				case strings.HasPrefix(firstLang, "en"):
					lang = "en"
				default:
					lang = "es" // Storefront default is Spanish
				}
			}
		} else {
			lang = "es"
		}

		// Set language in context
		c.Set("lang", lang)
		c.Next()
	}
}
