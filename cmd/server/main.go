package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/db"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/middleware"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/router"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// The client app runs on its own origin during development
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = clientOrigins()
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// Sessions live in the database so a restart does not log everyone out
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := gormsessions.NewStore(db.DB, true, []byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("gilab_session", store))

	// Middleware
	r.Use(middleware.LoadUser())

	router.RegisterRoutes(r, storage.New(db.DB))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("GILab server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// clientOrigins returns the origins allowed to call the API with
// credentials. CLIENT_ORIGINS is a comma separated list; the default covers
// the Vite dev server.
func clientOrigins() []string {
	if origins := os.Getenv("CLIENT_ORIGINS"); origins != "" {
		return strings.Split(origins, ",")
	}
	return []string{"http://localhost:5173"}
}
