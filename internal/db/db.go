package db

import (
	"log"
	"os"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/utils"
	"github.com/google/uuid"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=gilab port=5432 sslmode=disable TimeZone=Asia/Seoul"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	Migrate(DB)

	// Seed the first admin account when configured
	seedAdmin()
}

// Migrate runs the automigration for every model. Split out from Init so
// tests can run it against their own database handle.
func Migrate(database *gorm.DB) {
	err := database.AutoMigrate(
		&models.User{},
		&models.Publication{},
		&models.Author{},
		&models.Member{},
		&models.ResearchArea{},
		&models.ResearchProject{},
		&models.News{},
		&models.LabInfo{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")
}

// seedAdmin creates the bootstrap admin from ADMIN_EMAIL and ADMIN_PASSWORD.
// Without it a fresh deployment has nobody who can approve accounts. Skipped
// when the variables are unset or the user already exists.
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("Admin account already seeded, skipping")
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		ID:         uuid.New().String(),
		Email:      email,
		Password:   hash,
		FirstName:  "Lab",
		LastName:   "Admin",
		IsApproved: true,
		IsAdmin:    true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to create admin account %s: %v", email, err)
		return
	}
	log.Printf("Admin account %s created", email)
}
