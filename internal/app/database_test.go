//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nutrivision/nutrition-service/config"
)

func TestInitializeDatabase(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
		want func(*testing.T, *DatabaseComponents)
	}{
		{
			name: "disabled database returns nil",
			cfg: config.DatabaseConfig{
				Enabled: false,
			},
			want: func(t *testing.T, components *DatabaseComponents) {
				assert.Nil(t, components)
			},
		},
		{
			name: "malformed URI returns nil instead of failing startup",
			cfg: config.DatabaseConfig{
				Enabled:      true,
				URI:          "not-a-mongodb-uri",
				DatabaseName: "nutrition_service",
				LogsTTL:      24 * time.Hour,
			},
			want: func(t *testing.T, components *DatabaseComponents) {
				assert.Nil(t, components)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeDatabase(tt.cfg)
			if tt.want != nil {
				tt.want(t, components)
			}
		})
	}
}
