package main

import (
	"context"
	"log"
	"time"

	"github.com/wate11/HyMatch-project/internal/config"
	dbpostgres "github.com/wate11/HyMatch-project/internal/database/postgres"
	"github.com/wate11/HyMatch-project/internal/database/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Database.Configured() {
		log.Fatal("no database configured; set DB_HOST, DB_NAME and DB_USER")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("close error: %v", err)
		}
	}()

	runner := seeder.Runner{
		Seeders: []seeder.Seeder{
			seeder.SchemaSeeder{},
			seeder.JobsSeeder{},
		},
		Logger: log.Default(),
	}
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Println("seed complete")
}
