package handlers

import (
	"net/http"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/middleware"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/storage"

	"github.com/gin-gonic/gin"
)

type ResearchProjectHandler struct {
	store *storage.Storage
}

func NewResearchProjectHandler(store *storage.Storage) *ResearchProjectHandler {
	return &ResearchProjectHandler{store: store}
}

type researchProjectCreateRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description" binding:"required"`
	Category       string `json:"category" binding:"required"`
	Date           string `json:"date" binding:"required"`
	LeadResearcher string `json:"leadResearcher" binding:"required"`
	ImageURL       string `json:"imageUrl" binding:"required"`
	Order          int    `json:"order"`
}

type researchProjectUpdateRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	Category       *string `json:"category"`
	Date           *string `json:"date"`
	LeadResearcher *string `json:"leadResearcher"`
	ImageURL       *string `json:"imageUrl"`
	Order          *int    `json:"order"`
}

// List returns every project in display order.
func (h *ResearchProjectHandler) List(c *gin.Context) {
	projects, err := h.store.ListResearchProjects()
	if err != nil {
		respondStorageError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ResearchProjectHandler) Get(c *gin.Context) {
	project, err := h.store.GetResearchProject(c.Param("id"))
	if err != nil {
		respondStorageError(c, err, "Research project not found")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ResearchProjectHandler) Create(c *gin.Context) {
	var req researchProjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user := middleware.CurrentUser(c)

	project := models.ResearchProject{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Date:           req.Date,
		LeadResearcher: req.LeadResearcher,
		ImageURL:       req.ImageURL,
		DisplayOrder:   req.Order,
		AuthorID:       user.ID,
	}
	if err := h.store.CreateResearchProject(&project); err != nil {
		respondStorageError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *ResearchProjectHandler) Update(c *gin.Context) {
	var req researchProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.LeadResearcher != nil {
		updates["lead_researcher"] = *req.LeadResearcher
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Order != nil {
		updates["display_order"] = *req.Order
	}

	project, err := h.store.UpdateResearchProject(c.Param("id"), updates)
	if err != nil {
		respondStorageError(c, err, "Research project not found")
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ResearchProjectHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteResearchProject(c.Param("id")); err != nil {
		respondStorageError(c, err, "Research project not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Research project deleted"})
}
