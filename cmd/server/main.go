package main

import (
	"log"

	"github.com/nitishdmn/trivia-api/internal/config"
	"github.com/nitishdmn/trivia-api/internal/database"
	"github.com/nitishdmn/trivia-api/internal/handlers"

	_ "github.com/nitishdmn/trivia-api/docs"

	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Trivia API
// @version         1.0
// @description     CRUD API backing the trivia game: categories, questions, search, pagination, and random quiz selection.
// @host            localhost:8080
// @BasePath        /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using environment")
	}
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	r := handlers.Router(db)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
