package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session_id"

// sessionMiddleware resolves the session cookie. Unknown ids are ignored;
// sessions are only issued by the download and login handlers.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if presented, err := c.Cookie(s.opts.SessionCookie); err == nil {
			if _, ok := s.svc.Sessions().Get(presented); ok {
				c.Set(sessionKey, presented)
			}
		}
		c.Next()
	}
}

func (s *Server) setSessionCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.opts.SessionCookie, id, 0, "/", "", false, true)
}

// bindSession points the request and the browser at id
func (s *Server) bindSession(c *gin.Context, id string) {
	if id == "" || id == sessionID(c) {
		return
	}
	s.setSessionCookie(c, id)
	c.Set(sessionKey, id)
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
