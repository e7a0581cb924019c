package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/danielmahler1/f25-cisc474-individual/config"
	"github.com/danielmahler1/f25-cisc474-individual/seed"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	db, err := config.Connect(config.Load())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}
