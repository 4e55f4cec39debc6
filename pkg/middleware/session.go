package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "sc_view"
	sessionMaxAge = 24 * 60 * 60
)

// ViewSessionMiddleware pins every browser to a view session id. Pages use it to
// key their last-known-good lists; it carries no identity or authority.
func ViewSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, id, sessionMaxAge, "/", "", false, true)
		}
		c.Set("view_session", id)
		c.Next()
	}
}

func ViewSession(c *gin.Context) string {
	return c.GetString("view_session")
}
