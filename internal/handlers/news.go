package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/middleware"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/services"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/storage"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/utils"

	"github.com/gin-gonic/gin"
)

const cacheKeyNewsPublished = "news:published"

type NewsHandler struct {
	store    *storage.Storage
	importer *services.FeedImporter
}

func NewNewsHandler(store *storage.Storage) *NewsHandler {
	return &NewsHandler{
		store:    store,
		importer: services.NewFeedImporter(store),
	}
}

type newsCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Summary     string `json:"summary"`
	ImageURL    string `json:"imageUrl"`
	IsPublished *bool  `json:"isPublished"`
}

type newsUpdateRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Summary     *string `json:"summary"`
	ImageURL    *string `json:"imageUrl"`
	IsPublished *bool   `json:"isPublished"`
}

// List returns articles newest first. ?published=true hides drafts,
// ?recent=N caps the result to the latest N.
func (h *NewsHandler) List(c *gin.Context) {
	publishedOnly := c.Query("published") == "true"

	if recentStr, ok := c.GetQuery("recent"); ok {
		news, err := h.store.ListRecentNews(utils.ParseLimit(recentStr, 5), publishedOnly)
		if err != nil {
			respondStorageError(c, err, "")
			return
		}
		c.JSON(http.StatusOK, news)
		return
	}

	if publishedOnly {
		if cached := utils.GetCache().Get(cacheKeyNewsPublished); cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}
	news, err := h.store.ListNews(publishedOnly)
	if err != nil {
		respondStorageError(c, err, "")
		return
	}
	if publishedOnly {
		utils.GetCache().Set(cacheKeyNewsPublished, news, 5*time.Minute)
	}
	c.JSON(http.StatusOK, news)
}

// Get returns one article with its markdown rendered to sanitized HTML.
func (h *NewsHandler) Get(c *gin.Context) {
	news, err := h.store.GetNews(c.Param("id"))
	if err != nil {
		respondStorageError(c, err, "News not found")
		return
	}
	news.ContentHTML = utils.RenderMarkdown(news.Content)
	c.JSON(http.StatusOK, news)
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req newsCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user := middleware.CurrentUser(c)

	news := models.News{
		Title:       req.Title,
		Content:     req.Content,
		Summary:     req.Summary,
		ImageURL:    req.ImageURL,
		IsPublished: true,
		AuthorID:    user.ID,
	}
	if req.IsPublished != nil {
		news.IsPublished = *req.IsPublished
	}
	if err := h.store.CreateNews(&news); err != nil {
		respondStorageError(c, err, "")
		return
	}

	utils.GetCache().Delete(cacheKeyNewsPublished)
	c.JSON(http.StatusCreated, news)
}

func (h *NewsHandler) Update(c *gin.Context) {
	var req newsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Summary != nil {
		updates["summary"] = *req.Summary
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.IsPublished != nil {
		updates["is_published"] = *req.IsPublished
	}

	news, err := h.store.UpdateNews(c.Param("id"), updates)
	if err != nil {
		respondStorageError(c, err, "News not found")
		return
	}

	utils.GetCache().Delete(cacheKeyNewsPublished)
	c.JSON(http.StatusOK, news)
}

func (h *NewsHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteNews(c.Param("id")); err != nil {
		respondStorageError(c, err, "News not found")
		return
	}

	utils.GetCache().Delete(cacheKeyNewsPublished)
	c.JSON(http.StatusOK, gin.H{"message": "News deleted"})
}

type newsImportRequest struct {
	FeedURL string `json:"feedUrl" binding:"required,url"`
	Limit   int    `json:"limit"`
}

// Import pulls an external RSS or Atom feed and stages its items as
// unpublished drafts for review.
func (h *NewsHandler) Import(c *gin.Context) {
	var req newsImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}

	user := middleware.CurrentUser(c)

	created, err := h.importer.ImportFeed(req.FeedURL, req.Limit, user.ID)
	if err != nil {
		log.Printf("feed import from %s failed: %v", req.FeedURL, err)
		respondError(c, http.StatusBadGateway, "Failed to import feed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"imported": len(created),
		"items":    created,
	})
}
