package server

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// visitTracking records page views with the tracker. Requests carrying
// "DNT: 1" are skipped. A nil tracker makes this a no-op.
func visitTracking(tracker VisitTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}
		tracker.RecordAsync(c.ClientIP(), c.GetHeader("User-Agent"), c.Request.URL.Path)
		c.Next()
	}
}

// adminAuth checks the bearer token in constant time.
func adminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			log.Printf("Rejected admin request for %s", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin", adminAuth(s.cfg.AdminToken))

	admin.GET("/stats", func(c *gin.Context) {
		if s.tracker == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analytics disabled"})
			return
		}
		stats, err := s.tracker.Stats(c.Request.Context())
		if err != nil {
			log.Printf("Error loading visit stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/sessions", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"live": s.sessions.Len()})
	})
}
