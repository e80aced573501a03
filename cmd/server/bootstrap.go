package main

import (
	"time"

	"github.com/draftwise/draftwise/internal/config"
	"github.com/draftwise/draftwise/internal/handlers"
	"github.com/draftwise/draftwise/internal/models"
	"github.com/draftwise/draftwise/internal/services"
	"github.com/draftwise/draftwise/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the
// application.
type appServices struct {
	cfg             *config.Config
	healthHandler   *handlers.HealthHandler
	statsHandler    *handlers.StatsHandler
	emailHandler    *handlers.EmailHandler
	categoryHandler *handlers.CategoryHandler
	templateHandler *handlers.TemplateHandler
}

// bootstrap initializes all application dependencies: database, provider
// client, services, handlers. The database must connect here; a missing
// LLM credential only fails the first process-email request.
func bootstrap(cfg *config.Config) *appServices {
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.SeedDefaultData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	provider := services.NewOpenAIProvider(&cfg.OpenAI)
	emailService := services.NewEmailService(provider, time.Duration(cfg.OpenAI.TimeoutSeconds)*time.Second)

	db := models.GetDB()
	return &appServices{
		cfg:             cfg,
		healthHandler:   handlers.NewHealthHandler(),
		statsHandler:    handlers.NewStatsHandler(db),
		emailHandler:    handlers.NewEmailHandler(emailService),
		categoryHandler: handlers.NewCategoryHandler(db),
		templateHandler: handlers.NewTemplateHandler(db),
	}
}
