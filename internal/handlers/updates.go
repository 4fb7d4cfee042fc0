package handlers

import (
	"net/http"

	"github.com/paingnyinyikhant1810/noc-members/internal/repository"
	"github.com/paingnyinyikhant1810/noc-members/internal/service"

	"github.com/gin-gonic/gin"
)

type updateRequest struct {
	Topic   *string `json:"topic"`
	Badge   *string `json:"badge"`
	Message *string `json:"message"`
	Author  *string `json:"author"`
}

// @Summary      List updates
// @Tags         updates
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "updates"
// @Failure      401  {object}  map[string]string
// @Router       /api/updates [get]
// @Security     BearerAuth
func (h *Handler) listUpdates(c *gin.Context) {
	updates, err := h.services.Updates.List(c.Request.Context())
	if err != nil {
		h.serviceError(c, "updates_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updates": updates})
}

func (h *Handler) getUpdate(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	u, err := h.services.Updates.Get(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, "updates_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"update": u})
}

// @Summary      Create update
// @Tags         updates
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "success, id"
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/updates [post]
// @Security     BearerAuth
func (h *Handler) createUpdate(c *gin.Context) {
	var req updateRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	id, err := h.services.Updates.Create(c.Request.Context(), service.UpdateInput{
		Topic:   strOr(req.Topic),
		Badge:   strOr(req.Badge),
		Message: strOr(req.Message),
		Author:  strOr(req.Author),
	})
	if err != nil {
		h.serviceError(c, "updates_create_failed", err)
		return
	}
	created(c, id)
}

func (h *Handler) updateUpdate(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var req updateRequest
	if _, ok := h.bindPatch(c, &req); !ok {
		return
	}
	err := h.services.Updates.Update(c.Request.Context(), id, repository.UpdatePatch{
		Topic:   req.Topic,
		Badge:   req.Badge,
		Message: req.Message,
		Author:  req.Author,
	})
	if err != nil {
		h.serviceError(c, "updates_update_failed", err)
		return
	}
	success(c)
}

func (h *Handler) deleteUpdate(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.services.Updates.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, "updates_delete_failed", err)
		return
	}
	success(c)
}

func strOr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
