package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/rs/cors"

	"sanas-actions-backend/internal/actions"
	"sanas-actions-backend/internal/ai"
	"sanas-actions-backend/internal/analytics"
	"sanas-actions-backend/internal/config"
	"sanas-actions-backend/internal/db"
	"sanas-actions-backend/internal/jira"
	"sanas-actions-backend/internal/settings"
	"sanas-actions-backend/internal/slack"
)

const serviceName = "Sanas Action Items Tracker API"

func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg.ConnString())
	if err != nil {
		log.Fatal("❌ Failed to connect DB:", err)
	}
	defer database.Close()

	if err := db.InitSchema(context.Background(), database); err != nil {
		log.Fatal("❌ Failed to init schema:", err)
	}

	log.Println("✅ Connected to PostgreSQL!")

	aiClient := ai.New(cfg.AnthropicKey, cfg.ClaudeModel)
	jiraSvc := jira.New(cfg.JiraBaseURL, cfg.JiraEmail, cfg.JiraToken)
	slackSvc := slack.New(cfg.SlackBotToken)

	registry := actions.NewRegistry()
	extractor := actions.NewExtractor(aiClient)
	actionsHandler := actions.NewHandler(database, extractor, registry, jiraSvc, slackSvc)

	mux := http.NewServeMux()

	// Health + service info
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": serviceName,
		})
	})
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"service": serviceName,
			"version": "1.0.0",
			"health":  "/health",
		})
	})

	// ----- ACTIONS API -----
	mux.HandleFunc("POST /api/actions/extract", actionsHandler.Extract)
	mux.HandleFunc("POST /api/actions/extract-file", actionsHandler.ExtractFile)
	mux.HandleFunc("POST /api/actions/tickets", actionsHandler.CreateTickets)

	// ----- NOTIFICATIONS API -----
	mux.HandleFunc("POST /api/notifications/send", actionsHandler.SendNotification)
	mux.HandleFunc("POST /api/notifications/reminders", actionsHandler.SendReminders)

	// ----- SETTINGS & TEAM API -----
	mux.HandleFunc("GET /api/settings", settings.GetSettingsHandler(database))
	mux.HandleFunc("PUT /api/settings", settings.UpdateSettingsHandler(database))
	mux.HandleFunc("GET /api/team", settings.ListMembersHandler(database))
	mux.HandleFunc("POST /api/team", settings.CreateMemberHandler(database))
	mux.HandleFunc("GET /api/team/{id}", settings.GetMemberHandler(database))
	mux.HandleFunc("PATCH /api/team/{id}", settings.UpdateMemberHandler(database))
	mux.HandleFunc("DELETE /api/team/{id}", settings.DeleteMemberHandler(database))
	mux.HandleFunc("GET /api/integrations/status", settings.IntegrationStatusHandler(cfg))

	// ----- ANALYTICS API -----
	mux.HandleFunc("GET /api/analytics", analytics.GetAnalyticsHandler(database))

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	log.Println("🚀 API server is running on :8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}
