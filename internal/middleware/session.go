// internal/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/rmagrichem/agrichem-backend/internal/utils"
)

const SessionHeader = "X-Session-ID"

// SessionID resolves the opaque cart session id from the request
// header, minting one when the client has none yet. The minted id is
// echoed back so the client can persist it.
func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			generated, err := utils.GenerateSessionID()
			if err == nil {
				sessionID = generated
			} else {
				sessionID = c.ClientIP()
			}
			c.Header(SessionHeader, sessionID)
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}
