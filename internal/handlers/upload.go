package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct{}

func NewUploadHandler() *UploadHandler {
	return &UploadHandler{}
}

// Upload stores an image sent as multipart field "image" and returns its
// public URL under /static/uploads.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "Only image files are allowed")
		return
	}

	if header.Size > 10*1024*1024 {
		respondError(c, http.StatusBadRequest, "Image must be smaller than 10MB")
		return
	}

	result, err := services.StoreImage(file, header)
	if err != nil {
		log.Printf("image upload failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":      result.URL,
		"filename": result.Filename,
	})
}
