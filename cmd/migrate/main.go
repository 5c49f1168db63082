package main

import (
	"log"
	"os"

	"legal-ai-be/internal/model"
	"legal-ai-be/pkg/database"

	"github.com/fatih/color"
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
	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting GORM Migration...")

	// 3. Extensions GORM AutoMigrate cannot create itself
	color.Yellow("Step 1: Setting up extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Red("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate all models
	color.Yellow("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Conversation{},
		&model.Message{},
		&model.ConstitutionArticle{},
		&model.TurnReceipt{},
		&model.OutboxEvent{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Migration failed: %v", err)
		os.Exit(1)
	}

	// 5. ANN index for the corpus; AutoMigrate does not manage vector indexes
	color.Yellow("Step 3: Ensuring vector index...")
	indexSQL := `CREATE INDEX IF NOT EXISTS idx_constitution_articles_embedding
		ON constitution_articles USING hnsw (embedding vector_cosine_ops);`
	if err := db.Exec(indexSQL).Error; err != nil {
		color.Red("Warn: Failed to create vector index: %v", err)
	}

	color.Green("Migration completed successfully.")
}
