package router

import (
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/handlers"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/middleware"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/services"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/storage"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, store *storage.Storage) {
	// Handlers
	mailService := services.NewMailService()
	authHandler := handlers.NewAuthHandler(store)
	adminHandler := handlers.NewAdminHandler(store, mailService)
	memberHandler := handlers.NewMemberHandler(store)
	publicationHandler := handlers.NewPublicationHandler(store)
	researchAreaHandler := handlers.NewResearchAreaHandler(store)
	researchProjectHandler := handlers.NewResearchProjectHandler(store)
	newsHandler := handlers.NewNewsHandler(store)
	labInfoHandler := handlers.NewLabInfoHandler(store)
	contactHandler := handlers.NewContactHandler(store, mailService)
	uploadHandler := handlers.NewUploadHandler()
	seoHandler := handlers.NewSEOHandler(store)

	// Uploaded images
	r.Static("/static/uploads", services.UploadDir())

	// Crawlers and feed readers
	r.GET("/robots.txt", seoHandler.RobotsTxt)
	r.GET("/feed.xml", seoHandler.RSSFeed)

	api := r.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/user", authHandler.CurrentUser)

	api.GET("/members", memberHandler.List)
	api.GET("/members/:id", memberHandler.Get)
	api.GET("/publications", publicationHandler.List)
	api.GET("/publications/:id", publicationHandler.Get)
	api.GET("/research-areas", researchAreaHandler.List)
	api.GET("/research-areas/:id", researchAreaHandler.Get)
	api.GET("/research-projects", researchProjectHandler.List)
	api.GET("/research-projects/:id", researchProjectHandler.Get)
	api.GET("/news", newsHandler.List)
	api.GET("/news/:id", newsHandler.Get)
	api.GET("/lab-info", labInfoHandler.Get)
	api.POST("/contact", contactHandler.Submit)

	// Approved accounts only
	authorized := api.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/members", memberHandler.Create)
		authorized.PUT("/members/:id", memberHandler.Update)

		authorized.POST("/publications", publicationHandler.Create)
		authorized.PUT("/publications/:id", publicationHandler.Update)
		authorized.PUT("/publications/:id/order", publicationHandler.UpdateOrder)
		authorized.DELETE("/publications/:id", publicationHandler.Delete)

		authorized.POST("/research-areas", researchAreaHandler.Create)
		authorized.PUT("/research-areas/:id", researchAreaHandler.Update)

		authorized.POST("/research-projects", researchProjectHandler.Create)
		authorized.PUT("/research-projects/:id", researchProjectHandler.Update)

		authorized.POST("/news", newsHandler.Create)
		authorized.PUT("/news/:id", newsHandler.Update)
		authorized.DELETE("/news/:id", newsHandler.Delete)

		authorized.POST("/upload", uploadHandler.Upload)
	}

	// Administrators only
	admin := api.Group("/")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.DELETE("/members/:id", memberHandler.Delete)
		admin.DELETE("/research-areas/:id", researchAreaHandler.Delete)
		admin.DELETE("/research-projects/:id", researchProjectHandler.Delete)
		admin.PUT("/lab-info", labInfoHandler.Upsert)
		admin.POST("/news/import", newsHandler.Import)

		admin.GET("/admin/pending-users", adminHandler.PendingUsers)
		admin.POST("/admin/approve-user/:id", adminHandler.ApproveUser)
		admin.GET("/admin/contact-messages", adminHandler.ContactMessages)
	}
}
