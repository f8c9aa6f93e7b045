package handlers

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// VerifyOrigin rejects state-changing requests whose Origin (or Referer,
// when Origin is absent) names a different host than the request itself.
// Requests carrying neither header pass through.
func VerifyOrigin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" {
			c.Next()
			return
		}

		source := c.GetHeader("Origin")
		if source == "" {
			source = c.GetHeader("Referer")
		}
		if source == "" {
			c.Next()
			return
		}

		parsed, err := url.Parse(source)
		if err != nil || parsed.Host != c.Request.Host {
			RenderForbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
