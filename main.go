package main

import (
	"log"

	"coderfest/config"
	"coderfest/database"
	"coderfest/handlers/files"
	v1 "coderfest/routes/v1"
	"coderfest/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Coder Fest Registration API
// @version 1.0
// @description Registration backend for the Coder Fest 2025 hackathon: team submissions, payment proof storage and the admin dashboard.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	config.Init()
	database.InitRedis()

	store := services.NewProofStore()
	if err := store.Init(); err != nil {
		log.Fatal("failed to initialize proof storage: ", err)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientUrl},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	v1.Register(r)
	files.RegisterRoutes(r)

	log.Printf("Starting %s on :%s", config.ServiceName, config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
