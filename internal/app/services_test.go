//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nutrivision/nutrition-service/config"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		validate func(*testing.T, *ServiceComponents)
	}{
		{
			name: "creates analyzer with default config",
			cfg: config.Config{
				Cache: config.CacheConfig{
					Size: 0,
					TTL:  0,
				},
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Analyzer)
				assert.Nil(t, components.FoodDataCircuitBreaker)
			},
		},
		{
			name: "creates analyzer with cache enabled",
			cfg: config.Config{
				Cache: config.CacheConfig{
					Size: 1000,
					TTL:  5 * time.Minute,
				},
				Resolver: config.ResolverConfig{
					Workers:       4,
					MinMatchRatio: 0.3,
				},
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Analyzer)
			},
		},
		{
			name: "creates circuit breaker when live food data enabled",
			cfg: config.Config{
				FoodData: config.FoodDataConfig{
					Enabled:                        true,
					APIKey:                         "test-key",
					BaseURL:                        "https://api.nal.usda.gov/fdc/v1",
					Timeout:                        time.Second,
					SearchLimit:                    5,
					CircuitBreakerFailureThreshold: 3,
					CircuitBreakerSuccessThreshold: 1,
					CircuitBreakerTimeout:          time.Second,
				},
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Analyzer)
				assert.NotNil(t, components.FoodDataCircuitBreaker)
			},
		},
		{
			name: "no circuit breaker when API key missing",
			cfg: config.Config{
				FoodData: config.FoodDataConfig{
					Enabled: true,
					APIKey:  "",
				},
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.Nil(t, components.FoodDataCircuitBreaker)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeServices(tt.cfg)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}

func TestServiceComponents_Analyzer(t *testing.T) {
	components := InitializeServices(config.Config{
		Cache: config.CacheConfig{
			Size: 100,
			TTL:  time.Minute,
		},
		Resolver: config.ResolverConfig{
			Workers:       2,
			MinMatchRatio: 0.3,
		},
	})

	assert.NotNil(t, components.Analyzer)

	// The wired pipeline resolves against the built-in food table
	result := components.Analyzer.Analyze(context.Background(), "200 g chicken breast")
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "chicken breast", result.Items[0].Item.Ingredient)
	assert.False(t, result.Items[0].Resolution.Failed())
	assert.Greater(t, result.Totals.Calories, 0.0)
}
