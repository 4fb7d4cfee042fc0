package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// @Summary      Login
// @Description  Accepts JSON credentials or a legacy Basic Authorization header
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "success, token, user"
// @Failure      401  {object}  map[string]interface{}
// @Router       /api/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest

	// Legacy clients send only a Basic header with an empty body.
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Basic ") {
		if u, p, ok := decodeBasic(strings.TrimPrefix(header, "Basic ")); ok {
			req.Username, req.Password = u, p
		}
	}
	if req.Username == "" {
		if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false})
			return
		}
	}

	user, token, err := h.services.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Same answer for unknown user and wrong password.
		if h.log != nil {
			h.log.Infow("login_failed", "username", req.Username)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
	})
}
