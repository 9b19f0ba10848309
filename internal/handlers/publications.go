package handlers

import (
	"net/http"
	"time"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/middleware"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/storage"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/utils"

	"github.com/gin-gonic/gin"
)

const cacheKeyPublications = "publications:all"

type PublicationHandler struct {
	store *storage.Storage
}

func NewPublicationHandler(store *storage.Storage) *PublicationHandler {
	return &PublicationHandler{store: store}
}

type authorRequest struct {
	Name     string `json:"name" binding:"required"`
	Homepage string `json:"homepage"`
	Order    *int   `json:"order"`
}

type publicationCreateRequest struct {
	Title      string          `json:"title" binding:"required"`
	Journal    string          `json:"journal"`
	Conference string          `json:"conference"`
	Year       int             `json:"year" binding:"required"`
	Type       string          `json:"type" binding:"required,oneof=journal conference"`
	Abstract   string          `json:"abstract" binding:"required"`
	PdfURL     string          `json:"pdfUrl"`
	ImageURL   string          `json:"imageUrl"`
	Order      int             `json:"order"`
	Authors    []authorRequest `json:"authors" binding:"dive"`
}

type publicationUpdateRequest struct {
	Title      *string         `json:"title"`
	Journal    *string         `json:"journal"`
	Conference *string         `json:"conference"`
	Year       *int            `json:"year"`
	Type       *string         `json:"type"`
	Abstract   *string         `json:"abstract"`
	PdfURL     *string         `json:"pdfUrl"`
	ImageURL   *string         `json:"imageUrl"`
	Order      *int            `json:"order"`
	Authors    []authorRequest `json:"authors"`
}

// buildAuthors turns the request author list into rows. Authors keep the
// position they were submitted in unless an explicit order was set.
func buildAuthors(reqs []authorRequest) []models.Author {
	authors := make([]models.Author, 0, len(reqs))
	for i, a := range reqs {
		order := i
		if a.Order != nil {
			order = *a.Order
		}
		authors = append(authors, models.Author{
			Name:         a.Name,
			Homepage:     a.Homepage,
			DisplayOrder: order,
		})
	}
	return authors
}

// List returns publications in display order. ?year=YYYY narrows to one
// year; ?recent=N returns the latest N ordered by year.
func (h *PublicationHandler) List(c *gin.Context) {
	if yearStr, ok := c.GetQuery("year"); ok {
		year := utils.StringToInt(yearStr)
		if year == 0 {
			respondError(c, http.StatusBadRequest, "Invalid year")
			return
		}
		pubs, err := h.store.ListPublicationsByYear(year)
		if err != nil {
			respondStorageError(c, err, "")
			return
		}
		c.JSON(http.StatusOK, pubs)
		return
	}

	if recentStr, ok := c.GetQuery("recent"); ok {
		pubs, err := h.store.ListRecentPublications(utils.ParseLimit(recentStr, 5))
		if err != nil {
			respondStorageError(c, err, "")
			return
		}
		c.JSON(http.StatusOK, pubs)
		return
	}

	if cached := utils.GetCache().Get(cacheKeyPublications); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}
	pubs, err := h.store.ListPublications()
	if err != nil {
		respondStorageError(c, err, "")
		return
	}
	utils.GetCache().Set(cacheKeyPublications, pubs, 5*time.Minute)
	c.JSON(http.StatusOK, pubs)
}

func (h *PublicationHandler) Get(c *gin.Context) {
	pub, err := h.store.GetPublication(c.Param("id"))
	if err != nil {
		respondStorageError(c, err, "Publication not found")
		return
	}
	c.JSON(http.StatusOK, pub)
}

// Create inserts a publication with its author list in one transaction.
func (h *PublicationHandler) Create(c *gin.Context) {
	var req publicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user := middleware.CurrentUser(c)

	pub := models.Publication{
		Title:        req.Title,
		Journal:      req.Journal,
		Conference:   req.Conference,
		Year:         req.Year,
		Type:         models.PublicationType(req.Type),
		Abstract:     req.Abstract,
		PdfURL:       req.PdfURL,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.Order,
		AuthorID:     user.ID,
		Authors:      buildAuthors(req.Authors),
	}
	if err := h.store.CreatePublication(&pub); err != nil {
		respondStorageError(c, err, "")
		return
	}

	utils.GetCache().Delete(cacheKeyPublications)
	c.JSON(http.StatusCreated, pub)
}

// Update applies partial field changes; when an authors array is sent the
// whole author list is replaced.
func (h *PublicationHandler) Update(c *gin.Context) {
	var req publicationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if req.Type != nil && *req.Type != string(models.PublicationTypeJournal) && *req.Type != string(models.PublicationTypeConference) {
		respondError(c, http.StatusBadRequest, "Invalid publication type")
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Journal != nil {
		updates["journal"] = *req.Journal
	}
	if req.Conference != nil {
		updates["conference"] = *req.Conference
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Abstract != nil {
		updates["abstract"] = *req.Abstract
	}
	if req.PdfURL != nil {
		updates["pdf_url"] = *req.PdfURL
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Order != nil {
		updates["display_order"] = *req.Order
	}

	var authors []models.Author
	if req.Authors != nil {
		authors = buildAuthors(req.Authors)
	}

	pub, err := h.store.UpdatePublication(c.Param("id"), updates, authors)
	if err != nil {
		respondStorageError(c, err, "Publication not found")
		return
	}

	utils.GetCache().Delete(cacheKeyPublications)
	c.JSON(http.StatusOK, pub)
}

type publicationOrderRequest struct {
	Order *int `json:"order" binding:"required"`
}

// UpdateOrder moves a publication to a new position in the list.
func (h *PublicationHandler) UpdateOrder(c *gin.Context) {
	var req publicationOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	pub, err := h.store.UpdatePublicationOrder(c.Param("id"), *req.Order)
	if err != nil {
		respondStorageError(c, err, "Publication not found")
		return
	}

	utils.GetCache().Delete(cacheKeyPublications)
	c.JSON(http.StatusOK, pub)
}

// Delete removes a publication and its author rows together.
func (h *PublicationHandler) Delete(c *gin.Context) {
	if err := h.store.DeletePublication(c.Param("id")); err != nil {
		respondStorageError(c, err, "Publication not found")
		return
	}

	utils.GetCache().Delete(cacheKeyPublications)
	c.JSON(http.StatusOK, gin.H{"message": "Publication deleted"})
}
