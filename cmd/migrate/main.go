package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"parley-chat/config"
	"parley-chat/internal/repository"
	"parley-chat/pkg/database"

	"gorm.io/gorm"
)

const usage = `
Parley Chat - Database CLI Tool

Usage:
  migrate [command]

Commands:
  up          Run schema migrations
  status      Show database connection status
  seed        Seed the database with demo users and a shared room

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go seed
`

func main() {
	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)

	cfg := config.LoadConfig()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	switch command {
	case "up":
		runMigrationsUp(db)
	case "status":
		showStatus(db)
	case "seed":
		runSeed(db)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func runMigrationsUp(db *gorm.DB) {
	log.Println("Running migrations...")

	if err := repository.InitSchema(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully!")
}

func showStatus(db *gorm.DB) {
	log.Println("Checking database status...")

	if err := database.Ping(db); err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Database connection: OK")

	tables := []string{"users", "auth_tokens", "chat_rooms", "chat_room_members", "messages", "message_recipients"}
	for _, table := range tables {
		if db.Migrator().HasTable(table) {
			var count int64
			_ = db.Table(table).Count(&count).Error
			log.Printf("Table %-20s exists (%d rows)", table, count)
		} else {
			log.Printf("Table %-20s does not exist", table)
		}
	}
}

func runSeed(db *gorm.DB) {
	log.Println("Seeding database...")

	if err := repository.InitSchema(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	result, err := database.Seed(db, nil)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seed Summary:")
	log.Printf("   - Users: %d", len(result.Users))
	log.Printf("   - Room: %s", result.Room.Name)
	log.Printf("   - Messages: %d", len(result.Messages))
	log.Println("Seeding completed!")
}
