package middleware

import (
	"net/http"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/db"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// SessionUserKey is the session value holding the logged in user's id.
const SessionUserKey = "user_id"

// LoadUser resolves the session into a *models.User and sets it on the
// context. Runs on every request; a missing or stale session just leaves the
// context empty for the gates below to reject.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(SessionUserKey)

		if userID != nil {
			if id, ok := userID.(string); ok {
				var user models.User
				result := db.DB.Where("id = ?", id).First(&user)
				if result.Error == nil {
					c.Set(CheckUserKey, &user)
				}
			}
		}
		c.Next()
	}
}

// AuthRequired rejects requests that carry no valid session.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

// AdminRequired rejects requests whose session user is not an administrator.
// Must run behind AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the session user loaded by LoadUser, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if val, exists := c.Get(CheckUserKey); exists {
		if user, ok := val.(*models.User); ok {
			return user
		}
	}
	return nil
}
