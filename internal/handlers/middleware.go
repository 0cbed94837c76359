package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = "user_id"
	bearerPrefix = "bearer "
)

// requireUser admits requests carrying a valid bearer token and stores the
// account id under userIDKey.
func (h *Handler) requireUser(c *gin.Context) {
	token, reason := bearerToken(c.GetHeader("Authorization"))
	if reason != "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": reason})
		return
	}

	id, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token rejected"})
		return
	}
	c.Set(userIDKey, id)
	c.Next()
}

func bearerToken(header string) (token, reason string) {
	if header == "" {
		return "", "authorization required"
	}
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", "bearer token required"
	}
	token = strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", "bearer token required"
	}
	return token, ""
}

// currentUser returns the id set by requireUser, or 0 outside the api group.
func currentUser(c *gin.Context) int {
	return c.GetInt(userIDKey)
}

// accessLog writes one debug line per request. The websocket feed is logged
// when it closes.
func (h *Handler) accessLog(c *gin.Context) {
	start := h.now()
	c.Next()
	if h.log == nil {
		return
	}
	h.log.Debugw("http_request",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"latency", h.now().Sub(start),
		"client_ip", c.ClientIP(),
	)
}
