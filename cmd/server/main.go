package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/danielmahler1/f25-cisc474-individual/config"
	"github.com/danielmahler1/f25-cisc474-individual/middleware"
	"github.com/danielmahler1/f25-cisc474-individual/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	r := gin.Default()
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	routes.SetupRouter(r, db)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
