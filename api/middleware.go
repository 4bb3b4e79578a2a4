package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vaberg/holidaze/internal/session"
)

const (
	requestIDKey  = "request_id"
	sessionKey    = "session"
	SessionCookie = "holidaze_session"
	loginPath     = "/login"
)

// RequestID ensures every request carries an id for tracing.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// Logger prints one line per request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		rid, _ := c.Get(requestIDKey)
		log.Printf("[HTTP] request_id=%v method=%s path=%s status=%d latency_ms=%.3f",
			rid,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			float64(time.Since(start).Microseconds())/1000.0,
		)
	}
}

// RequireSession gates authenticated views. Without a valid session the
// request is redirected to the login path before any upstream call.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		sess, err := store.Get(c.Request.Context(), id)
		if err != nil || sess == nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
