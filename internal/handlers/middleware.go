package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"

	"github.com/gin-gonic/gin"
)

// Gin context keys set by the auth middleware.
const (
	ctxUserID = "userId"
	ctxRole   = "userRole"
)

// corsMiddleware mirrors the portal's wildcard CORS contract and short-circuits
// preflight requests.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// authMiddleware accepts a bearer session token or, as the legacy path, HTTP
// Basic credentials verified against the store. Every non-login request passes
// through here.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	switch parts[0] {
	case "Bearer":
		claims, err := h.services.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)

	case "Basic":
		username, password, ok := decodeBasic(parts[1])
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid Basic credentials",
			})
			return
		}
		u, err := h.services.VerifyBasic(c.Request.Context(), username, password)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid credentials",
			})
			return
		}
		c.Set(ctxUserID, u.ID)
		c.Set(ctxRole, u.Role)

	default:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "unsupported Authorization scheme",
		})
		return
	}

	c.Next()
}

// adminOnly rejects authenticated callers without the admin role.
func (h *Handler) adminOnly(c *gin.Context) {
	if c.GetString(ctxRole) != models.RoleAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}
	c.Next()
}

func (h *Handler) isAdmin(c *gin.Context) bool {
	return c.GetString(ctxRole) == models.RoleAdmin
}

func decodeBasic(encoded string) (username, password string, ok bool) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", false
	}
	creds := strings.SplitN(string(raw), ":", 2)
	if len(creds) != 2 {
		return "", "", false
	}
	return creds[0], creds[1], true
}
