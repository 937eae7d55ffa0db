package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/strokeapp/stroke-backend/config"
	"github.com/strokeapp/stroke-backend/internal/routes"
	"github.com/strokeapp/stroke-backend/pkg/storage/mongodb"
	"github.com/strokeapp/stroke-backend/pkg/storage/mysql"
	"github.com/strokeapp/stroke-backend/ws"
)

func main() {
	cfg := config.LoadConfig()
	ctx := context.Background()

	db, err := mysql.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MySQL: %v", err)
	}
	defer db.Close()
	log.Println("Connected to MySQL.")

	mongoClient, err := mongodb.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Printf("MongoDB disconnect: %v", err)
		}
	}()
	log.Println("Connected to MongoDB.")

	predictions := mongodb.PredictionCollection(mongoClient, cfg)

	hub := ws.NewHub()
	go hub.Run()

	e := echo.New()
	routes.Init(e, db, predictions, hub)

	log.Printf("Server listening on port %s...", cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
