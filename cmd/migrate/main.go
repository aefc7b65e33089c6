package main

import (
	"log"
	"os"

	"virtual-classroom-be/internal/model"
	"virtual-classroom-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: extensions gen_random_uuid depends on
	log.Println("Step 1: Setting up extensions...")
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")
	models := []interface{}{
		&model.User{},
		&model.StaffId{},
		&model.ClassSession{},
		&model.Message{},
		&model.Notification{},
		&model.Assignment{},
		&model.Submission{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizAttempt{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Constraints AutoMigrate cannot express. The partial unique index
	// backs the at-most-one-active-session invariant at the database
	// level.
	log.Println("Step 3: Creating partial unique index...")
	indexSQL := `CREATE UNIQUE INDEX IF NOT EXISTS idx_sessions_one_active
		ON class_sessions (class_name, subject) WHERE is_active;`
	if err := db.Exec(indexSQL).Error; err != nil {
		log.Fatalf("Error: Failed to create index: %v", err)
	}

	log.Println("Success: Database migration completed via GORM.")
}
