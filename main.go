package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"journey-backend/config"
	"journey-backend/controllers/admins"
	"journey-backend/controllers/authentication"
	"journey-backend/controllers/recommendations"
	"journey-backend/controllers/roadmaps"
	"journey-backend/loggers"
	"journey-backend/routes"
	"journey-backend/services"
	"journey-backend/storage"
)

func init() {
	// A missing .env is fine in deployed environments.
	if err := godotenv.Load(); err != nil {
		os.Stderr.WriteString("warning: .env file not loaded\n")
	}
	loggers.Init()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		loggers.Logger.Fatalf("configuration error: %v", err)
	}

	db, err := config.ConnectMongo(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		loggers.Logger.Fatalf("database error: %v", err)
	}
	loggers.Logger.Info("connected to MongoDB")

	store := storage.New(db)
	aiClient := services.NewAIClient(cfg.AIAPIKey, cfg.AIModel, cfg.AITemperature, cfg.AIMaxTokens)
	locks := services.NewUserLocks()
	jwtSecret := []byte(cfg.JWTSecret)

	authHandler := &authentication.Handler{Store: store, JWTSecret: jwtSecret}
	roadmapHandler := &roadmaps.Handler{Store: store, AI: aiClient, Locks: locks}
	recHandler := &recommendations.Handler{Store: store, AI: aiClient, Locks: locks}
	adminHandler := &admins.Handler{Store: store}

	r := gin.New()
	r.Use(gin.Recovery())
	routes.Setup(r, authHandler, roadmapHandler, recHandler, adminHandler, jwtSecret)

	corsHandler := cors.New(cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	loggers.Logger.Infof("server listening on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, corsHandler); err != nil {
		loggers.Logger.Fatalf("server error: %v", err)
	}
}
