package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"virtual-classroom-be/internal/model"
	"virtual-classroom-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal(red("Error: DB_CONNECTION_STRING is not set"))
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal(red("Error: Failed to connect to database: "), err)
	}

	seedStaffIds(db)
	seedDemoUsers(db)

	fmt.Println(green("Seeding completed."))
}

func seedStaffIds(db *gorm.DB) {
	fmt.Println("Seeding staff ids...")

	codes := []string{"STF001", "STF002", "STF003", "STF004", "STF005"}
	for _, code := range codes {
		var existing model.StaffId
		if err := db.Where("code = ?", code).First(&existing).Error; err == nil {
			fmt.Printf("%s staff id %s already exists, skipping\n", yellow("skip:"), code)
			continue
		}

		if err := db.Create(&model.StaffId{Code: code}).Error; err != nil {
			fmt.Printf("%s failed to create staff id %s: %v\n", red("error:"), code, err)
			continue
		}
		fmt.Printf("%s staff id %s\n", green("created:"), code)
	}
}

func seedDemoUsers(db *gorm.DB) {
	fmt.Println("Seeding demo users...")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(red("Error: failed to hash demo password: "), err)
	}

	users := []model.User{
		{Username: "mr_okafor", Email: "okafor@school.edu", PasswordHash: string(hash), Role: "teacher", StaffId: "STF001", CreatedAt: time.Now()},
		{Username: "amina", Email: "amina@school.edu", PasswordHash: string(hash), Role: "student", ClassName: "SS1A", CreatedAt: time.Now()},
		{Username: "tunde", Email: "tunde@school.edu", PasswordHash: string(hash), Role: "student", ClassName: "SS1A", CreatedAt: time.Now()},
		{Username: "chiamaka", Email: "chiamaka@school.edu", PasswordHash: string(hash), Role: "student", ClassName: "SS1B", CreatedAt: time.Now()},
	}

	for _, user := range users {
		var existing model.User
		if err := db.Where("username = ?", user.Username).First(&existing).Error; err == nil {
			fmt.Printf("%s user %s already exists, skipping\n", yellow("skip:"), user.Username)
			continue
		}

		if err := db.Create(&user).Error; err != nil {
			fmt.Printf("%s failed to create user %s: %v\n", red("error:"), user.Username, err)
			continue
		}
		fmt.Printf("%s user %s (%s)\n", green("created:"), user.Username, user.Role)
	}

	// The demo teacher consumed STF001.
	db.Model(&model.StaffId{}).Where("code = ?", "STF001").Update("is_used", true)
}
