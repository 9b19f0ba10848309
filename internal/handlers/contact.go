package handlers

import (
	"net/http"
	"os"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/services"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/storage"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	store       *storage.Storage
	mailService *services.MailService
}

func NewContactHandler(store *storage.Storage, mailService *services.MailService) *ContactHandler {
	return &ContactHandler{
		store:       store,
		mailService: mailService,
	}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Submit stores a contact form submission and forwards it to the lab
// contact address. The mail leaves in the background; the submission is
// acknowledged as soon as it is stored.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.store.CreateContactMessage(&msg); err != nil {
		respondStorageError(c, err, "")
		return
	}

	h.mailService.SendContactNotification(h.contactAddress(), req.Name, req.Email, req.Subject, req.Message)

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}

// contactAddress prefers the address from the lab settings and falls back
// to the CONTACT_EMAIL environment variable.
func (h *ContactHandler) contactAddress() string {
	if info, err := h.store.GetLabInfo(); err == nil && info.ContactEmail != "" {
		return info.ContactEmail
	}
	return os.Getenv("CONTACT_EMAIL")
}
