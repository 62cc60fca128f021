package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	httpapi "fairway-backend/internal/api/http"
	"fairway-backend/internal/config"
	"fairway-backend/internal/logger"
	"fairway-backend/internal/repository/firestoredb"
	"fairway-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Fairway Admin Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Firebase configuration", "project_id", cfg.Firebase.ProjectID)

	// Initialize Firestore
	ctx := context.Background()
	client, err := firestoredb.NewClient(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		logger.Error("Failed to connect to Firestore", "error", err)
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer client.Close()
	logger.Info("Firestore connection established")

	store := firestoredb.NewStore(client)

	// Initialize Email Service (optional)
	var emailSvc service.EmailService
	if cfg.Email.SendGridAPIKey != "" {
		emailSvc = service.NewEmailService(
			cfg.Email.SendGridAPIKey,
			cfg.Email.FromEmail,
			cfg.Email.FromName,
			cfg.Email.AdminEmail,
		)
		logger.Info("Email notifications enabled", "admin_email", cfg.Email.AdminEmail)
	} else {
		logger.Info("Email notifications disabled (no sendgrid api key)")
	}

	// Initialize Services
	adminSvc := service.NewAdminService(store, emailSvc)
	catalogSvc := service.NewCatalogService(store)

	// Initialize Handlers
	adminHandler := httpapi.NewAdminHandler(adminSvc, cfg.Workflow.PageSize)
	catalogHandler := httpapi.NewCatalogHandler(catalogSvc, cfg.Workflow.PageSize)

	router := httpapi.NewRouter(adminHandler, catalogHandler)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
