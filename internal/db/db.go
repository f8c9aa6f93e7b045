package db

import (
	"log"
	"yatube/internal/config"
	"yatube/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := config.Get().DatabaseURL

	var err error
	// TranslateError maps driver errors onto gorm.ErrDuplicatedKey /
	// ErrCheckConstraintViolated, which the follow service relies on.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedGroups()
}

// Migrate creates the schema, including the follow table's composite unique
// index and its user_id <> author_id check constraint.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
}

// seedGroups creates the initial topic groups. Groups have no management UI,
// so a fresh database gets a fixed set and an existing one is left alone.
func seedGroups() {
	var count int64
	DB.Model(&models.Group{}).Count(&count)
	if count > 0 {
		log.Println("Groups already seeded, skipping")
		return
	}

	groups := []models.Group{
		{Title: "Tech", Slug: "tech", Description: "Programming, hardware and everything in between"},
		{Title: "Travel", Slug: "travel", Description: "Trip reports and travel notes"},
		{Title: "Books", Slug: "books", Description: "Reading lists and reviews"},
		{Title: "Off-topic", Slug: "off-topic", Description: "Anything that fits nowhere else"},
	}

	for _, group := range groups {
		if err := DB.Create(&group).Error; err != nil {
			log.Printf("Failed to create group %s: %v", group.Slug, err)
		}
	}
	log.Println("Initial groups created successfully")
}
