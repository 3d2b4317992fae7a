package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/positnow_mobile/config"
	"github.com/mmdatafocus/positnow_mobile/models"
	"github.com/mmdatafocus/positnow_mobile/utils"
)

const ginSessionKey = "session"

// SessionMiddleware resolves "Authorization: Bearer <jwt>" to the stored Session and
// puts it in the request context. Requests without a live session stop with 401.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		claim, err := utils.JwtValidate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		sess, err := models.LoadSession(c.Request.Context(), claim.SessionId)
		if err != nil {
			config.LogError(config.GetLogger(), "SessionMiddleware", "LoadSession", "failed to load session", claim.SessionId, err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "service not ready"})
			return
		}
		if sess == nil || sess.Username != claim.Username {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}

		c.Request = c.Request.WithContext(models.WithSession(c.Request.Context(), sess))
		c.Set(ginSessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session SessionMiddleware attached to c.
func CurrentSession(c *gin.Context) *models.Session {
	if v, ok := c.Get(ginSessionKey); ok {
		if sess, ok := v.(*models.Session); ok {
			return sess
		}
	}
	sess, _ := models.SessionFromContext(c.Request.Context())
	return sess
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
