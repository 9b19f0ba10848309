package handlers

import (
	"net/http"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/storage"

	"github.com/gin-gonic/gin"
)

type ResearchAreaHandler struct {
	store *storage.Storage
}

func NewResearchAreaHandler(store *storage.Storage) *ResearchAreaHandler {
	return &ResearchAreaHandler{store: store}
}

type researchAreaCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	ParentID    *string `json:"parentId"`
	ImageURL    string  `json:"imageUrl"`
	Order       int     `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

type researchAreaUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ParentID    *string `json:"parentId"`
	ImageURL    *string `json:"imageUrl"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

// List returns the taxonomy in display order. Without parameters every area
// is returned; ?parentId=<id> narrows to that area's children and a present
// but empty parentId narrows to the top level.
func (h *ResearchAreaHandler) List(c *gin.Context) {
	if parentID, ok := c.GetQuery("parentId"); ok {
		var filter *string
		if parentID != "" {
			filter = &parentID
		}
		areas, err := h.store.ListResearchAreasByParent(filter)
		if err != nil {
			respondStorageError(c, err, "")
			return
		}
		c.JSON(http.StatusOK, areas)
		return
	}

	areas, err := h.store.ListResearchAreas()
	if err != nil {
		respondStorageError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, areas)
}

func (h *ResearchAreaHandler) Get(c *gin.Context) {
	area, err := h.store.GetResearchArea(c.Param("id"))
	if err != nil {
		respondStorageError(c, err, "Research area not found")
		return
	}
	c.JSON(http.StatusOK, area)
}

func (h *ResearchAreaHandler) Create(c *gin.Context) {
	var req researchAreaCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	area := models.ResearchArea{
		Name:         req.Name,
		Description:  req.Description,
		ParentID:     req.ParentID,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.Order,
		IsActive:     true,
	}
	if req.IsActive != nil {
		area.IsActive = *req.IsActive
	}
	if err := h.store.CreateResearchArea(&area); err != nil {
		respondStorageError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, area)
}

func (h *ResearchAreaHandler) Update(c *gin.Context) {
	var req researchAreaUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ParentID != nil {
		updates["parent_id"] = *req.ParentID
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Order != nil {
		updates["display_order"] = *req.Order
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	area, err := h.store.UpdateResearchArea(c.Param("id"), updates)
	if err != nil {
		respondStorageError(c, err, "Research area not found")
		return
	}

	c.JSON(http.StatusOK, area)
}

func (h *ResearchAreaHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteResearchArea(c.Param("id")); err != nil {
		respondStorageError(c, err, "Research area not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Research area deleted"})
}
