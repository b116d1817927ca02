// Package main is the entry point for the nutrition-service application.
//
// @title           Nutrition Service API
// @version         1.0.0
// @description     API for analyzing free-text meal descriptions into macronutrient totals.
//
//	The service extracts food items with quantities and units from natural
//	language, resolves them against a food database, and returns per-item
//	macros plus aggregated totals.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/nutrivision/nutrition-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Analysis
// @tag.description Meal text analysis operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/nutrivision/nutrition-service/config"
	"github.com/nutrivision/nutrition-service/internal/app"
)

func main() {
	// Optional .env for local development; env vars win in deployment
	_ = godotenv.Load()

	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
