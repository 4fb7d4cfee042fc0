package handlers

import (
	"net/http"

	"github.com/paingnyinyikhant1810/noc-members/internal/repository"
	"github.com/paingnyinyikhant1810/noc-members/internal/service"

	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "categories"
// @Failure      401  {object}  map[string]string
// @Router       /api/categories [get]
// @Security     BearerAuth
func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.services.Categories.List(c.Request.Context())
	if err != nil {
		h.serviceError(c, "categories_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) getCategory(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	cat, err := h.services.Categories.Get(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, "categories_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": cat})
}

func (h *Handler) createCategory(c *gin.Context) {
	var req categoryRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	id, err := h.services.Categories.Create(c.Request.Context(), service.CategoryInput{
		Name: strOr(req.Name),
		Icon: strOr(req.Icon),
	})
	if err != nil {
		h.serviceError(c, "categories_create_failed", err)
		return
	}
	created(c, id)
}

func (h *Handler) updateCategory(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var req categoryRequest
	if _, ok := h.bindPatch(c, &req); !ok {
		return
	}
	err := h.services.Categories.Update(c.Request.Context(), id, repository.CategoryPatch{
		Name: req.Name,
		Icon: req.Icon,
	})
	if err != nil {
		h.serviceError(c, "categories_update_failed", err)
		return
	}
	success(c)
}

// @Summary      Delete a category
// @Description  Dependent info cards are removed first
// @Tags         categories
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /api/categories/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteCategory(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.services.Categories.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, "categories_delete_failed", err)
		return
	}
	success(c)
}
