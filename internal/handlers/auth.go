package handlers

import (
	"net/http"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/middleware"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/storage"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	store *storage.Storage
}

func NewAuthHandler(store *storage.Storage) *AuthHandler {
	return &AuthHandler{store: store}
}

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account. It starts unapproved; an admin has to
// approve it before login works.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if len(req.Password) < 6 {
		respondError(c, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	if _, err := h.store.GetUserByEmail(req.Email); err == nil {
		respondError(c, http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		respondStorageError(c, err, "")
		return
	}

	user := models.User{
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := h.store.CreateUser(&user); err != nil {
		respondStorageError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login checks the credentials and opens a session. Unknown email, wrong
// password and unapproved account all get the same answer so the response
// does not reveal which accounts exist.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.store.GetUserByEmail(req.Email)
	if err != nil || !utils.CheckPasswordHash(req.Password, user.Password) || !user.IsApproved {
		respondError(c, http.StatusUnauthorized, "Invalid credentials or account not approved")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		respondStorageError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout destroys the server side session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{MaxAge: -1, Path: "/"})
	if err := session.Save(); err != nil {
		respondStorageError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// CurrentUser returns the account behind the session cookie.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	c.JSON(http.StatusOK, user)
}
