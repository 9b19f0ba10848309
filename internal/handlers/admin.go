package handlers

import (
	"net/http"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/services"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/storage"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	store       *storage.Storage
	mailService *services.MailService
}

func NewAdminHandler(store *storage.Storage, mailService *services.MailService) *AdminHandler {
	return &AdminHandler{
		store:       store,
		mailService: mailService,
	}
}

// PendingUsers lists accounts waiting for approval.
func (h *AdminHandler) PendingUsers(c *gin.Context) {
	users, err := h.store.ListPendingUsers()
	if err != nil {
		respondStorageError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, users)
}

// ApproveUser unlocks an account and notifies its owner by mail.
func (h *AdminHandler) ApproveUser(c *gin.Context) {
	user, err := h.store.ApproveUser(c.Param("id"))
	if err != nil {
		respondStorageError(c, err, "User not found")
		return
	}

	h.mailService.SendApprovalEmail(user.Email, user.FullName())

	c.JSON(http.StatusOK, user)
}

// ContactMessages lists stored contact form submissions, newest first.
func (h *AdminHandler) ContactMessages(c *gin.Context) {
	msgs, err := h.store.ListContactMessages()
	if err != nil {
		respondStorageError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, msgs)
}
