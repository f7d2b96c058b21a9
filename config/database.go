package config

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bffgym/pos-be/models"
)

var DB *gorm.DB

// ConnectDatabase opens the local SQLite file. The POS runs on a single
// front-desk device, so durability is a file next to the binary rather
// than a networked database.
func ConnectDatabase() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "bff-pos.db"
	}

	database, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to open local database:", err)
	}

	DB = database

	// Auto migrate the schema
	err = DB.AutoMigrate(
		&models.Staff{},
		&models.SessionSlot{},
		&models.KVRecord{},
	)
	if err != nil {
		log.Fatal("Failed to migrate local database:", err)
	}

	log.Printf("Local database ready at %s", path)
}
