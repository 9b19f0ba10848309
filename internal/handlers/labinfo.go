package handlers

import (
	"net/http"
	"time"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/storage"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/utils"

	"github.com/gin-gonic/gin"
)

const cacheKeyLabInfo = "labinfo"

type LabInfoHandler struct {
	store *storage.Storage
}

func NewLabInfoHandler(store *storage.Storage) *LabInfoHandler {
	return &LabInfoHandler{store: store}
}

type labInfoRequest struct {
	LabName               string `json:"labName" binding:"required"`
	PrincipalInvestigator string `json:"principalInvestigator" binding:"required"`
	PITitle               string `json:"piTitle" binding:"required"`
	PIEmail               string `json:"piEmail"`
	PIPhone               string `json:"piPhone"`
	PIPhoto               string `json:"piPhoto"`
	PIBio                 string `json:"piBio"`
	Description           string `json:"description"`
	Address               string `json:"address" binding:"required"`
	Latitude              string `json:"latitude"`
	Longitude             string `json:"longitude"`
	Building              string `json:"building"`
	Room                  string `json:"room"`
	University            string `json:"university" binding:"required"`
	Department            string `json:"department" binding:"required"`
	Website               string `json:"website"`
	EstablishedYear       string `json:"establishedYear"`
	ResearchFocus         string `json:"researchFocus"`
	ContactEmail          string `json:"contactEmail" binding:"required,email"`
	ContactPhone          string `json:"contactPhone"`
	OfficeHours           string `json:"officeHours"`
}

// Get returns the lab settings. 404 until an admin saves them once.
func (h *LabInfoHandler) Get(c *gin.Context) {
	if cached := utils.GetCache().Get(cacheKeyLabInfo); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}
	info, err := h.store.GetLabInfo()
	if err != nil {
		respondStorageError(c, err, "Lab info not configured")
		return
	}
	utils.GetCache().Set(cacheKeyLabInfo, info, 10*time.Minute)
	c.JSON(http.StatusOK, info)
}

// Upsert overwrites the whole settings row, creating it on first save.
func (h *LabInfoHandler) Upsert(c *gin.Context) {
	var req labInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	info := models.LabInfo{
		LabName:               req.LabName,
		PrincipalInvestigator: req.PrincipalInvestigator,
		PITitle:               req.PITitle,
		PIEmail:               req.PIEmail,
		PIPhone:               req.PIPhone,
		PIPhoto:               req.PIPhoto,
		PIBio:                 req.PIBio,
		Description:           req.Description,
		Address:               req.Address,
		Latitude:              req.Latitude,
		Longitude:             req.Longitude,
		Building:              req.Building,
		Room:                  req.Room,
		University:            req.University,
		Department:            req.Department,
		Website:               req.Website,
		EstablishedYear:       req.EstablishedYear,
		ResearchFocus:         req.ResearchFocus,
		ContactEmail:          req.ContactEmail,
		ContactPhone:          req.ContactPhone,
		OfficeHours:           req.OfficeHours,
	}
	saved, err := h.store.UpsertLabInfo(&info)
	if err != nil {
		respondStorageError(c, err, "")
		return
	}

	utils.GetCache().Delete(cacheKeyLabInfo)
	c.JSON(http.StatusOK, saved)
}
