package handlers

import (
	"net/http"
	"time"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/storage"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	cacheKeyMembers        = "members:all"
	cacheKeyMembersGrouped = "members:grouped"
)

type MemberHandler struct {
	store *storage.Storage
}

func NewMemberHandler(store *storage.Storage) *MemberHandler {
	return &MemberHandler{store: store}
}

type memberCreateRequest struct {
	Name              string `json:"name" binding:"required"`
	Degree            string `json:"degree" binding:"required"`
	Email             string `json:"email"`
	ImageURL          string `json:"imageUrl"`
	Homepage          string `json:"homepage"`
	JoinedAt          string `json:"joinedAt" binding:"required"`
	Status            string `json:"status"`
	Bio               string `json:"bio"`
	ResearchInterests string `json:"researchInterests"`
	Order             int    `json:"order"`
}

type memberUpdateRequest struct {
	Name              *string `json:"name"`
	Degree            *string `json:"degree"`
	Email             *string `json:"email"`
	ImageURL          *string `json:"imageUrl"`
	Homepage          *string `json:"homepage"`
	JoinedAt          *string `json:"joinedAt"`
	Status            *string `json:"status"`
	Bio               *string `json:"bio"`
	ResearchInterests *string `json:"researchInterests"`
	Order             *int    `json:"order"`
}

// List returns all members ordered by name, or the degree-bucketed members
// page shape when ?grouped=true is set.
func (h *MemberHandler) List(c *gin.Context) {
	if c.Query("grouped") == "true" {
		if cached := utils.GetCache().Get(cacheKeyMembersGrouped); cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}
		grouped, err := h.store.GroupedMembers()
		if err != nil {
			respondStorageError(c, err, "")
			return
		}
		utils.GetCache().Set(cacheKeyMembersGrouped, grouped, 5*time.Minute)
		c.JSON(http.StatusOK, grouped)
		return
	}

	if cached := utils.GetCache().Get(cacheKeyMembers); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}
	members, err := h.store.ListMembers()
	if err != nil {
		respondStorageError(c, err, "")
		return
	}
	utils.GetCache().Set(cacheKeyMembers, members, 5*time.Minute)
	c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) Get(c *gin.Context) {
	member, err := h.store.GetMember(c.Param("id"))
	if err != nil {
		respondStorageError(c, err, "Member not found")
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Create(c *gin.Context) {
	var req memberCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member := models.Member{
		Name:              req.Name,
		Degree:            req.Degree,
		Email:             req.Email,
		ImageURL:          req.ImageURL,
		Homepage:          req.Homepage,
		JoinedAt:          req.JoinedAt,
		Status:            req.Status,
		Bio:               req.Bio,
		ResearchInterests: req.ResearchInterests,
		DisplayOrder:      req.Order,
	}
	if err := h.store.CreateMember(&member); err != nil {
		respondStorageError(c, err, "")
		return
	}

	h.invalidateCache()
	c.JSON(http.StatusCreated, member)
}

func (h *MemberHandler) Update(c *gin.Context) {
	var req memberUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Degree != nil {
		updates["degree"] = *req.Degree
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Homepage != nil {
		updates["homepage"] = *req.Homepage
	}
	if req.JoinedAt != nil {
		updates["joined_at"] = *req.JoinedAt
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.ResearchInterests != nil {
		updates["research_interests"] = *req.ResearchInterests
	}
	if req.Order != nil {
		updates["display_order"] = *req.Order
	}

	member, err := h.store.UpdateMember(c.Param("id"), updates)
	if err != nil {
		respondStorageError(c, err, "Member not found")
		return
	}

	h.invalidateCache()
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteMember(c.Param("id")); err != nil {
		respondStorageError(c, err, "Member not found")
		return
	}

	h.invalidateCache()
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted"})
}

func (h *MemberHandler) invalidateCache() {
	utils.GetCache().Delete(cacheKeyMembers)
	utils.GetCache().Delete(cacheKeyMembersGrouped)
}
