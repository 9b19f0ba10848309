package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError writes a JSON error body with the given status.
func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// respondBindError maps a binding failure to 400 with the validator's
// message so the client can show which field was rejected.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"details": err.Error(),
	})
}

// respondStorageError maps storage failures onto the API error shape:
// missing records become 404, anything else is logged and returned as a
// generic 500 so internals never leak to clients.
func respondStorageError(c *gin.Context, err error, notFound string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, notFound)
		return
	}
	log.Printf("storage error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	respondError(c, http.StatusInternalServerError, "Internal server error")
}
