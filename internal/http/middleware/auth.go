// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the bearer-token authentication gate. Every route
// except registration, login, the healthcheck, and operational endpoints sits
// behind it.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clipstream/go-video-backend/internal/auth"
)

// ctxKeyUserID is the Gin context key under which the authenticated user's ID
// is stored. Handlers and downstream middleware read it via c.Get("userID").
const ctxKeyUserID = "userID"

// Auth returns a middleware that requires a valid "Authorization: Bearer"
// token signed with secret. On success it stores the caller's user ID and
// username in the context; on failure it aborts with a 401 envelope.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			unauthorized(c, "missing bearer token")
			return
		}

		claims, err := auth.ParseToken(secret, strings.TrimSpace(token))
		if err != nil {
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ctxKeyUserID, claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// unauthorized writes the standard failure envelope with a 401 status.
func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"statusCode": http.StatusUnauthorized,
		"data":       nil,
		"message":    msg,
		"success":    false,
	})
}
