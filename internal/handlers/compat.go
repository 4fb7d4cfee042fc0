package handlers

import (
	"net/http"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"

	"github.com/gin-gonic/gin"
)

// legacyRequest is the generic {action, table, data/id} body older clients
// still send to POST /api.
type legacyRequest struct {
	Action string         `json:"action"` // save | delete
	Table  string         `json:"table"`
	Data   map[string]any `json:"data"`
	ID     int            `json:"id"`
}

// @Summary      Legacy generic save/delete
// @Description  {action, table, data/id} dispatch; table names are checked against a fixed allowlist before any statement runs
// @Tags         legacy
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api [post]
// @Security     BearerAuth
func (h *Handler) legacyDispatch(c *gin.Context) {
	var req legacyRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	ctx := c.Request.Context()
	switch req.Action {
	case "save":
		id, err := h.services.Compat.Save(ctx, req.Table, req.Data)
		if err != nil {
			h.serviceError(c, "legacy_save_failed", err)
			return
		}
		if id > 0 {
			created(c, id)
			return
		}
		success(c)

	case "delete":
		if req.ID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing id"})
			return
		}
		if err := h.services.Compat.Delete(ctx, req.Table, req.ID); err != nil {
			h.serviceError(c, "legacy_delete_failed", err)
			return
		}
		success(c)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
	}
}

// @Summary      Snapshot of all portal data
// @Description  Users are included only for admin callers
// @Tags         legacy
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/getData [get]
// @Security     BearerAuth
func (h *Handler) getData(c *gin.Context) {
	ctx := c.Request.Context()

	updates, err := h.services.Updates.List(ctx)
	if err != nil {
		h.serviceError(c, "getdata_updates_failed", err)
		return
	}
	categories, err := h.services.Categories.List(ctx)
	if err != nil {
		h.serviceError(c, "getdata_categories_failed", err)
		return
	}
	cards, err := h.services.Info.List(ctx, nil)
	if err != nil {
		h.serviceError(c, "getdata_info_failed", err)
		return
	}
	items, err := h.services.Library.ListItems(ctx)
	if err != nil {
		h.serviceError(c, "getdata_items_failed", err)
		return
	}
	folders, err := h.services.Library.ListFolders(ctx)
	if err != nil {
		h.serviceError(c, "getdata_folders_failed", err)
		return
	}

	users := []models.User{}
	if h.isAdmin(c) {
		users, err = h.services.Users.List(ctx)
		if err != nil {
			h.serviceError(c, "getdata_users_failed", err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"updates":       updates,
		"categories":    categories,
		"infoCards":     cards,
		"learningItems": items,
		"folders":       folders,
		"users":         users,
	})
}
