package handlers

import (
	"net/http"

	"github.com/paingnyinyikhant1810/noc-members/internal/service"

	"github.com/gin-gonic/gin"
)

type userRequest struct {
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	DisplayName *string `json:"displayName"`
	Role        *string `json:"role"`
}

// @Summary      List user accounts
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "users"
// @Failure      403  {object}  map[string]string
// @Router       /api/users [get]
// @Security     BearerAuth
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		h.serviceError(c, "users_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *Handler) getUser(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	u, err := h.services.Users.Get(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, "users_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *Handler) createUser(c *gin.Context) {
	var req userRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	id, err := h.services.Users.Create(c.Request.Context(), service.UserInput{
		Username:    strOr(req.Username),
		Password:    strOr(req.Password),
		DisplayName: strOr(req.DisplayName),
		Role:        strOr(req.Role),
	})
	if err != nil {
		h.serviceError(c, "users_create_failed", err)
		return
	}
	created(c, id)
}

// updateUser applies present fields only; the password is rehashed only when
// a new one is supplied.
func (h *Handler) updateUser(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var req userRequest
	if _, ok := h.bindPatch(c, &req); !ok {
		return
	}
	err := h.services.Users.Update(c.Request.Context(), id, service.UserPatch{
		Username:    req.Username,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Role:        req.Role,
	})
	if err != nil {
		h.serviceError(c, "users_update_failed", err)
		return
	}
	success(c)
}

// @Summary      Delete a user
// @Description  The reserved admin account is always refused
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.services.Users.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, "users_delete_failed", err)
		return
	}
	success(c)
}
