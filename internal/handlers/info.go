package handlers

import (
	"net/http"

	"github.com/paingnyinyikhant1810/noc-members/internal/repository"
	"github.com/paingnyinyikhant1810/noc-members/internal/service"

	"github.com/gin-gonic/gin"
)

type infoCardRequest struct {
	CategoryID  *int    `json:"category_id"`
	Title       *string `json:"title"`
	DisplayType *string `json:"display_type"`
	Icon        *string `json:"icon"`
	Image       *string `json:"image"`
	ImageData   *string `json:"image_data"` // raw base64 upload, inlined server-side
	ImageMime   *string `json:"image_mime"`
	Link        *string `json:"link"`
}

// @Summary      List info cards
// @Tags         info
// @Produce      json
// @Param        category  query  int  false  "Category id"
// @Success      200  {object}  map[string]interface{}  "items"
// @Failure      401  {object}  map[string]string
// @Router       /api/info [get]
// @Security     BearerAuth
func (h *Handler) listInfoCards(c *gin.Context) {
	categoryID, ok := optionalIntQuery(c, "category")
	if !ok {
		return
	}
	cards, err := h.services.Info.List(c.Request.Context(), categoryID)
	if err != nil {
		h.serviceError(c, "info_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": cards})
}

func (h *Handler) getInfoCard(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	card, err := h.services.Info.Get(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, "info_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": card})
}

func (h *Handler) createInfoCard(c *gin.Context) {
	var req infoCardRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	if req.CategoryID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category_id is required"})
		return
	}
	id, err := h.services.Info.Create(c.Request.Context(), service.InfoInput{
		CategoryID:  *req.CategoryID,
		Title:       strOr(req.Title),
		DisplayType: strOr(req.DisplayType),
		Icon:        strOr(req.Icon),
		Image:       strOr(req.Image),
		ImageData:   strOr(req.ImageData),
		ImageMime:   strOr(req.ImageMime),
		Link:        strOr(req.Link),
	})
	if err != nil {
		h.serviceError(c, "info_create_failed", err)
		return
	}
	created(c, id)
}

func (h *Handler) updateInfoCard(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var req infoCardRequest
	if _, ok := h.bindPatch(c, &req); !ok {
		return
	}
	patch := repository.InfoCardPatch{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		DisplayType: req.DisplayType,
		Icon:        req.Icon,
		Image:       req.Image,
		Link:        req.Link,
	}
	err := h.services.Info.Update(c.Request.Context(), id, patch, strOr(req.ImageData), strOr(req.ImageMime))
	if err != nil {
		h.serviceError(c, "info_update_failed", err)
		return
	}
	success(c)
}

func (h *Handler) deleteInfoCard(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.services.Info.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, "info_delete_failed", err)
		return
	}
	success(c)
}
