// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/nutrivision/nutrition-service/config"
	"github.com/nutrivision/nutrition-service/internal/circuitbreaker"
	"github.com/nutrivision/nutrition-service/internal/repository"
	"github.com/nutrivision/nutrition-service/internal/service"
)

// ServiceComponents holds the analysis pipeline components.
type ServiceComponents struct {
	Analyzer               service.TextAnalyzer
	FoodDataCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeServices wires the analysis pipeline: the nutrient resolver with
// its food data backends and cache, the entity recognizer, and the analyzer.
func InitializeServices(cfg config.Config) *ServiceComponents {
	components := &ServiceComponents{}

	// Built-in food table is always available as the fallback backend.
	fallback := repository.NewMockFoodRepository()

	// Live food data backend, wrapped in a circuit breaker so outages
	// degrade to the fallback table instead of failing analyses.
	var live repository.FoodDataRepositoryInterface
	if cfg.FoodData.Enabled && cfg.FoodData.APIKey != "" {
		foodCB := circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: cfg.FoodData.CircuitBreakerFailureThreshold,
			SuccessThreshold: cfg.FoodData.CircuitBreakerSuccessThreshold,
			Timeout:          cfg.FoodData.CircuitBreakerTimeout,
			Name:             "food-data-api",
		})
		foodRepo := repository.NewFoodDataRepository(cfg.FoodData)
		live = repository.NewFoodDataRepositoryWithCircuitBreaker(foodRepo, foodCB)
		components.FoodDataCircuitBreaker = foodCB
		log.Info().Str("base_url", cfg.FoodData.BaseURL).Msg("Live food data backend enabled")
	} else {
		log.Info().Msg("Live food data backend disabled, using built-in food table")
	}

	resolutionCache := service.NewResolutionCache(cfg.Cache.Size, cfg.Cache.TTL)

	resolver := service.NewNutrientResolver(live, fallback, resolutionCache, service.ResolverOptions{
		SearchLimit:   cfg.FoodData.SearchLimit,
		Workers:       cfg.Resolver.Workers,
		MinMatchRatio: cfg.Resolver.MinMatchRatio,
	})

	var recognizer service.EntityRecognizer = service.NoopRecognizer{}
	if cfg.Recognizer.Enabled {
		recognizer = service.NewHTTPRecognizer(cfg.Recognizer.URL, cfg.Recognizer.Timeout)
		log.Info().Str("url", cfg.Recognizer.URL).Msg("Entity recognizer enabled")
	}

	components.Analyzer = service.NewAnalyzerService(recognizer, resolver)
	return components
}
