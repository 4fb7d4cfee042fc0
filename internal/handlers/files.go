package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
	"github.com/paingnyinyikhant1810/noc-members/internal/repository"
	"github.com/paingnyinyikhant1810/noc-members/internal/service"

	"github.com/gin-gonic/gin"
)

type fileRequest struct {
	Name     *string `json:"name"`
	Type     *string `json:"type"`
	Link     *string `json:"link"`
	Content  *string `json:"content"`
	FolderID *int    `json:"folder_id"`
	ParentID *int    `json:"parent_id"`
}

// wantsFolder reports whether the request targets a folder row: a "type"
// query param or body field saying "folder".
func wantsFolder(c *gin.Context, bodyType *string) bool {
	if c.Query("type") == models.EntryTypeFolder {
		return true
	}
	return bodyType != nil && *bodyType == models.EntryTypeFolder
}

// optionalIntQuery parses an optional positive-int query param.
func optionalIntQuery(c *gin.Context, key string) (*int, bool) {
	qs := c.Query(key)
	if qs == "" {
		return nil, true
	}
	v, err := strconv.Atoi(qs)
	if err != nil || v <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key})
		return nil, false
	}
	return &v, true
}

// @Summary      List folder contents
// @Description  Sub-folders and learning items of ?folder= (root when absent)
// @Tags         files
// @Produce      json
// @Param        folder  query  int  false  "Folder id"
// @Success      200  {object}  map[string]interface{}  "items"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/files [get]
// @Security     BearerAuth
func (h *Handler) listFiles(c *gin.Context) {
	folderID, ok := optionalIntQuery(c, "folder")
	if !ok {
		return
	}
	items, err := h.services.Library.ListEntries(c.Request.Context(), folderID)
	if err != nil {
		h.serviceError(c, "files_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) getFile(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	entry, err := h.services.Library.GetEntry(c.Request.Context(), id, wantsFolder(c, nil))
	if err != nil {
		h.serviceError(c, "files_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": entry})
}

// @Summary      Breadcrumb path of a folder
// @Tags         files
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "path"
// @Failure      404  {object}  map[string]string
// @Router       /api/files/{id}/path [get]
// @Security     BearerAuth
func (h *Handler) getFilePath(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	path, err := h.services.Library.FolderPath(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, "files_path_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path})
}

func (h *Handler) createFile(c *gin.Context) {
	var req fileRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	folderID := req.FolderID
	if folderID == nil {
		folderID = req.ParentID
	}
	id, err := h.services.Library.CreateEntry(c.Request.Context(), service.EntryInput{
		Name:     strOr(req.Name),
		Type:     strOr(req.Type),
		Link:     strOr(req.Link),
		Content:  strOr(req.Content),
		FolderID: folderID,
	})
	if err != nil {
		h.serviceError(c, "files_create_failed", err)
		return
	}
	created(c, id)
}

// updateFile partially updates a learning item, or a folder when the request
// says type=folder. For folders the new parent may arrive as parent_id or, in
// the move dialog's dialect, folder_id.
func (h *Handler) updateFile(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var req fileRequest
	keys, ok := h.bindPatch(c, &req)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if wantsFolder(c, req.Type) {
		patch := repository.FolderPatch{Name: req.Name}
		if _, present := keys["parent_id"]; present {
			patch.ParentIDSet = true
			patch.ParentID = req.ParentID
		} else if _, present := keys["folder_id"]; present {
			patch.ParentIDSet = true
			patch.ParentID = req.FolderID
		}
		if err := h.services.Library.UpdateFolder(ctx, id, patch); err != nil {
			h.serviceError(c, "files_update_folder_failed", err)
			return
		}
		success(c)
		return
	}

	patch := repository.ItemPatch{
		Name:    req.Name,
		Type:    req.Type,
		Link:    req.Link,
		Content: req.Content,
	}
	if _, present := keys["folder_id"]; present {
		patch.FolderIDSet = true
		patch.FolderID = req.FolderID
	}
	if err := h.services.Library.UpdateItem(ctx, id, patch); err != nil {
		h.serviceError(c, "files_update_item_failed", err)
		return
	}
	success(c)
}

// deleteFile removes a learning item; with type=folder (or when no item has
// the id) it removes the folder and its whole subtree.
func (h *Handler) deleteFile(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if wantsFolder(c, nil) {
		if err := h.services.Library.DeleteFolder(ctx, id); err != nil {
			h.serviceError(c, "files_delete_folder_failed", err)
			return
		}
		success(c)
		return
	}
	err := h.services.Library.DeleteItem(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		err = h.services.Library.DeleteFolder(ctx, id)
	}
	if err != nil {
		h.serviceError(c, "files_delete_failed", err)
		return
	}
	success(c)
}

// @Summary      Toggle the marked flag of a learning item
// @Tags         files
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "success, marked"
// @Failure      404  {object}  map[string]string
// @Router       /api/files/{id}/mark [post]
// @Security     BearerAuth
func (h *Handler) markFile(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	marked, err := h.services.Library.ToggleMark(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, "files_mark_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "marked": marked})
}
