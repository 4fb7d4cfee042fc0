package handlers

import (
	"net/http"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
	"github.com/paingnyinyikhant1810/noc-members/internal/repository"
	"github.com/paingnyinyikhant1810/noc-members/internal/service"

	"github.com/gin-gonic/gin"
)

type folderRequest struct {
	Name     *string `json:"name"`
	ParentID *int    `json:"parent_id"`
}

// @Summary      List all folders
// @Description  Flat folder set for move dialogs and tree building
// @Tags         folders
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "folders"
// @Failure      401  {object}  map[string]string
// @Router       /api/folders [get]
// @Security     BearerAuth
func (h *Handler) listFolders(c *gin.Context) {
	folders, err := h.services.Library.ListFolders(c.Request.Context())
	if err != nil {
		h.serviceError(c, "folders_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"folders": folders})
}

func (h *Handler) getFolder(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	entry, err := h.services.Library.GetEntry(c.Request.Context(), id, true)
	if err != nil {
		h.serviceError(c, "folders_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"folder": entry})
}

func (h *Handler) createFolder(c *gin.Context) {
	var req folderRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	id, err := h.services.Library.CreateEntry(c.Request.Context(), service.EntryInput{
		Name:     strOr(req.Name),
		Type:     models.EntryTypeFolder,
		FolderID: req.ParentID,
	})
	if err != nil {
		h.serviceError(c, "folders_create_failed", err)
		return
	}
	created(c, id)
}

// updateFolder renames and/or moves a folder; reparenting is validated against
// cycles before any row changes.
func (h *Handler) updateFolder(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var req folderRequest
	keys, ok := h.bindPatch(c, &req)
	if !ok {
		return
	}
	patch := repository.FolderPatch{Name: req.Name}
	if _, present := keys["parent_id"]; present {
		patch.ParentIDSet = true
		patch.ParentID = req.ParentID
	}
	if err := h.services.Library.UpdateFolder(c.Request.Context(), id, patch); err != nil {
		h.serviceError(c, "folders_update_failed", err)
		return
	}
	success(c)
}

// @Summary      Delete a folder subtree
// @Description  Removes the folder, all descendant folders, and their items
// @Tags         folders
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /api/folders/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteFolder(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.services.Library.DeleteFolder(c.Request.Context(), id); err != nil {
		h.serviceError(c, "folders_delete_failed", err)
		return
	}
	success(c)
}
